/*
Package natural implements persistent (immutable) arbitrary-precision
natural numbers.

A Natural is represented as a chain of binary digits, least-significant
digit first. Arithmetic is defined recursively on this representation and
never mutates an existing number: every operation builds its result from
new nodes and the sub-structure of its operands. Sub-structures may
therefore be shared by arbitrarily many numbers, which makes copies cheap
and makes all operations safe for concurrent use without locking.

Numbers of value 0 and 1 are canonical singletons, comparable by identity.
All construction paths route through a single canonicalizing constructor,
so no representation ever carries spurious digit structure at the bottom
of the chain.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package natural

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'natural.core'.
func tracer() tracing.Trace {
	return tracing.Select("natural.core")
}
