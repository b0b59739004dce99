/*
Package result provides a type for computations that may fail, in the
tradition of Elm's Result. A Result[T] either carries a value of type T
(Ok) or the error that prevented its computation (Err).

Clients deconstruct a Result with switch-based pattern matching:

    var v T
    var e error
    switch m := r.Match(); m {
    case m.Ok(&v):
        …               // v holds the value
    case m.Err(&e):
        …               // e holds the error
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import (
	"github.com/npillmayer/natural/maybe"
)

// Result is the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps the value of a successful computation.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps the error of a failed computation.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// WithDefault returns the wrapped value, or def for an Err.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// ToMaybe drops the error information, keeping only the presence of a
// value.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	case m.Err(&e):
	}
	return maybe.Nothing[T]()
}

// FromMaybe turns an absent value into err.
func FromMaybe[T any](x maybe.Maybe[T], err error) Result[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Ok(v)
	case m.Nothing():
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients pattern-match on the two cases of a Result.
// Exactly one of Ok and Err compares equal to the Matcher itself, moving
// the value resp. the error into its argument.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
