package natural

import (
	"fmt"

	"github.com/npillmayer/natural/result"
)

// Add returns the sum x + y as a new Natural, leaving both operands
// untouched.
func (x Natural) Add(y Natural) Natural {
	tracer().Debugf("add %s + %s", x, y)
	return Natural{n: add(x.ref(), y.ref())}
}

// add recurses over bit-pairs. The carry of a 1+1 digit pair is not
// tracked in a variable but folded into the tail sum as an extra unit.
// Each call strictly shortens at least one chain, bottoming out at zero.
func add(x, y *node) *node {
	if x == zeroNode {
		return y
	}
	if y == zeroNode {
		return x
	}
	if x.head == OneBit && y.head == OneBit {
		// 1 + 1 ⇒ carry one unit into the tail sum, head drops to 0
		return makeNode(add(add(x.tail, y.tail), oneNode), ZeroBit)
	}
	head := x.head
	if head == ZeroBit {
		head = y.head
	}
	return makeNode(add(x.tail, y.tail), head)
}

// Subtract returns the difference x - y. Subtraction is defined for
// non-negative results only; the caller guarantees x ≥ y. Violating the
// precondition makes the recursion reach "zero minus non-zero", which
// panics. Use SubtractChecked when x ≥ y cannot be guaranteed.
func (x Natural) Subtract(y Natural) Natural {
	tracer().Debugf("subtract %s - %s", x, y)
	return Natural{n: sub(x.ref(), y.ref())}
}

func sub(x, y *node) *node {
	if x == y {
		return zeroNode
	}
	if y == zeroNode {
		return x
	}
	assertThat(x != zeroNode, "underflow: cannot subtract %s from 0", Natural{n: y})
	switch {
	case x.head == y.head:
		return makeNode(sub(x.tail, y.tail), ZeroBit)
	case x.head == OneBit: // 1 - 0
		return makeNode(sub(x.tail, y.tail), OneBit)
	default: // 0 - 1 ⇒ borrow one unit from the tail
		return makeNode(sub(sub(x.tail, oneNode), y.tail), OneBit)
	}
}

// SubtractChecked is a non-panicking variant of Subtract for callers that
// cannot guarantee x ≥ y. It returns Err on underflow.
func (x Natural) SubtractChecked(y Natural) result.Result[Natural] {
	if x.Compare(y) < 0 {
		return result.Err[Natural](fmt.Errorf("natural: underflow: %s - %s", x, y))
	}
	return result.Ok(x.Subtract(y))
}

// Multiply returns the product x · y, computed as binary long
// multiplication by recursion on y.
func (x Natural) Multiply(y Natural) Natural {
	tracer().Debugf("multiply %s * %s", x, y)
	return Natural{n: mul(x.ref(), y.ref())}
}

func mul(x, y *node) *node {
	if x == zeroNode || y == zeroNode {
		return zeroNode
	}
	if x == oneNode {
		return y
	}
	if y == oneNode {
		return x
	}
	if x.head == ZeroBit { // x = 2·x' ⇒ shift the sub-product left
		return makeNode(mul(x.tail, y), ZeroBit)
	}
	if y.head == ZeroBit {
		return makeNode(mul(x, y.tail), ZeroBit)
	}
	return add(makeNode(mul(x, y.tail), ZeroBit), x)
}

// Power returns x^y. The exponent's own digit chain drives a
// square-and-multiply recursion, giving recursion depth logarithmic in y.
// Power(x, Zero) is One for every x, including Zero.
func (x Natural) Power(y Natural) Natural {
	tracer().Debugf("power %s ^ %s", x, y)
	return Natural{n: pow(x.ref(), y.ref())}
}

func pow(x, y *node) *node {
	if y == zeroNode {
		return oneNode
	}
	p := pow(x, y.tail)
	p = mul(p, p)
	if y.head == OneBit {
		p = mul(p, x)
	}
	return p
}

// Increment returns nat + 1.
func (nat Natural) Increment() Natural {
	return nat.Add(One)
}

// Decrement returns nat - 1; it panics for nat = 0, as Subtract does.
func (nat Natural) Decrement() Natural {
	return nat.Subtract(One)
}
