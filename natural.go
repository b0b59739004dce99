package natural

import (
	"fmt"
	"strings"
)

// node is one digit of the binary chain, least-significant digit first.
// tail links to the more-significant remainder of the number; it is nil
// only inside the canonical zero node.
type node struct {
	tail *node
	head Bit
}

// Canonical singletons for the values 0 and 1. Every construction path that
// reduces to one of these values ends up at exactly these two nodes, so
// comparing against them by identity is sound. No other node ever has
// zeroNode as its tail.
var zeroNode = &node{head: ZeroBit}
var oneNode = &node{tail: zeroNode, head: OneBit}

// Natural is an immutable arbitrary-precision natural number. The zero
// value of the type is usable as the number 0, i.e. this is legal:
//
//     var n natural.Natural
//     n = n.Add(natural.One)      // n == 1
//
// Naturals are persistent: operations return new incarnations and never
// modify their operands, sharing digit structure between results where
// possible.
type Natural struct {
	n *node
}

// Zero and One are the canonical smallest naturals.
var Zero = Natural{n: zeroNode}
var One = Natural{n: oneNode}

// ref unwraps a Natural to its digit chain, mapping the zero value of the
// type onto the canonical zero node.
func (nat Natural) ref() *node {
	if nat.n == nil {
		return zeroNode
	}
	return nat.n
}

// makeNode is the canonicalizing constructor and the single chokepoint for
// building multi-digit chains. A tail identical to the canonical zero
// collapses the new node to one of the two singletons, which keeps chains
// free of spurious trailing structure.
func makeNode(tail *node, head Bit) *node {
	if tail == zeroNode {
		if head == ZeroBit {
			return zeroNode
		}
		return oneNode
	}
	return &node{tail: tail, head: head}
}

// --- API -------------------------------------------------------------------

// IsZero returns true iff nat is 0.
func (nat Natural) IsZero() bool {
	return nat.ref() == zeroNode
}

// IsOne returns true iff nat is 1.
func (nat Natural) IsOne() bool {
	return nat.ref() == oneNode
}

// FromInt converts a built-in unsigned integer to a Natural.
func FromInt(k uint64) Natural {
	return Natural{n: fromInt(k)}
}

func fromInt(k uint64) *node {
	if k == 0 {
		return zeroNode
	}
	return makeNode(fromInt(k>>1), Bit(k&1))
}

// AsInt returns the integer value of nat. It is intended for display and
// for round-trips in tests; callers must know that the value fits into 64
// bits, larger values wrap silently. Arithmetic stays on the digit chain
// and never goes through AsInt.
func (nat Natural) AsInt() uint64 {
	return asInt(nat.ref())
}

func asInt(n *node) uint64 {
	if n == zeroNode {
		return 0
	}
	return asInt(n.tail)<<1 + uint64(n.head)
}

// BitLen returns the number of digits in the chain, i.e. the length of the
// value's binary representation. BitLen(0) is 0.
func (nat Natural) BitLen() int {
	length := 0
	for n := nat.ref(); n != zeroNode; n = n.tail {
		length++
	}
	return length
}

// String renders the binary digits of nat, most-significant bit first.
// 5 renders as "101", zero renders as "0".
func (nat Natural) String() string {
	n := nat.ref()
	if n == zeroNode {
		return "0"
	}
	sb := strings.Builder{}
	msbFirst(&sb, n)
	return sb.String()
}

func msbFirst(sb *strings.Builder, n *node) {
	if n == zeroNode {
		return
	}
	msbFirst(sb, n.tail)
	sb.WriteString(n.head.String())
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("natural: "+msg, msgargs...)
		panic(msg)
	}
}
