package natural

import (
	"github.com/npillmayer/natural/maybe"
)

// Compare returns -1, 0 or +1 depending on whether x is numerically
// smaller than, equal to, or greater than y (as bytes.Compare does).
//
// The recursion walks to the most-significant end first: tails are compared
// before heads, and heads only ever break a tie between equal tails. An
// unequal tail comparison decides the result regardless of the heads,
// because a difference one digit position up always outweighs a single
// unit bit. This shortcut relies on both chains being canonical.
func (x Natural) Compare(y Natural) int {
	return cmp(x.ref(), y.ref())
}

func cmp(x, y *node) int {
	if x == y { // covers zero vs. zero and shared sub-structure
		return 0
	}
	if x == zeroNode {
		return -1
	}
	if y == zeroNode {
		return 1
	}
	if c := cmp(x.tail, y.tail); c != 0 {
		return c
	}
	if x.head == y.head {
		return 0
	}
	if x.head == ZeroBit {
		return -1
	}
	return 1
}

// Equal returns true iff x and y denote the same number. Equality is
// structural, not reference-based, so it is suitable for naturals arriving
// from independent computations.
func (x Natural) Equal(y Natural) bool {
	return x.Compare(y) == 0
}

// Less returns true iff x < y.
func (x Natural) Less(y Natural) bool {
	return x.Compare(y) < 0
}

// Compare extends Natural.Compare to absent operands: Nothing sorts below
// every concrete value and equals itself. The extension is a total order
// and never fails, which keeps degenerate comparisons against a missing
// operand well-defined.
func Compare(mx, my maybe.Maybe[Natural]) int {
	var x, y Natural
	xAbsent, yAbsent := true, true
	switch m := mx.Match(); m {
	case m.Just(&x):
		xAbsent = false
	case m.Nothing():
	}
	switch m := my.Match(); m {
	case m.Just(&y):
		yAbsent = false
	case m.Nothing():
	}
	switch {
	case xAbsent && yAbsent:
		return 0
	case xAbsent:
		return -1
	case yAbsent:
		return 1
	}
	return x.Compare(y)
}
