package natmap

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node together with an index into the
// node's items resp. children.
type slot[T any] struct {
	node  *xnode[T]
	index int
}

func (s slot[T]) String() string {
	return strconv.Itoa(s.index) + "@" + s.node.String()
}

func (s slot[T]) item() xitem[T] {
	return s.node.items[s.index]
}

// items returns a slice of items contained in s.node. If s is an empty slot
// (no node contained), a valid zero-length slice is returned (i.e., making
// it safe to call `s.items()` for empty slots).
func (s slot[T]) items() []xitem[T] {
	if s.node == nil {
		return []xitem[T]{}
	}
	return s.node.items
}

func (s slot[T]) len() int {
	if s.node == nil {
		return 0
	}
	return len(s.node.items)
}

func (s slot[T]) underfull(lowWaterMark uint) bool {
	if s.node == nil {
		return true
	}
	return s.node.underfull(lowWaterMark)
}

func (s slot[T]) leftSibling(child slot[T]) slot[T] {
	if s.node == nil || len(s.node.children) == 0 || s.index == 0 {
		return slot[T]{}
	}
	assertThat(s.index <= len(s.node.children), "internal inconsistency: item index overflow")
	lsib := s.node.children[s.index-1]
	tracer().Debugf("left sibling of %s = %s, index in parent is %d", child, lsib, s.index-1)
	return slot[T]{node: lsib, index: len(lsib.items)}
}

func (s slot[T]) rightSibling(child slot[T]) slot[T] {
	if s.node == nil || len(s.node.children) == 0 || s.index >= len(s.node.children)-1 {
		return slot[T]{}
	}
	rsib := s.node.children[s.index+1]
	tracer().Debugf("right sibling of %s = %s, index in parent is %d", child, rsib, s.index+1)
	return slot[T]{node: rsib, index: len(rsib.items)}
}

// mergeinfo is an ad-hoc tuple for merging tree nodes. It points to the
// parent node, together with its two child nodes to be merged.
type mergeinfo[T any] struct {
	parent slot[T]
	left   slot[T]
	right  slot[T]
}

// siblings2 returns child and a sibling (either left or right) as a
// correctly ordered pair. If child is an only child, a pair with an empty
// right sibling will be returned. The parent's index is adjusted to address
// the item separating the pair.
func (s slot[T]) siblings2(child slot[T]) mergeinfo[T] {
	assertThat(!s.node.isLeaf(), "attempt to find siblings for leaf")
	assertThat(s.index < len(s.node.children), "internal inconsistency: child index overflow")
	mi := mergeinfo[T]{parent: s}
	sbl := s.leftSibling(child)
	if sbl.node != nil {
		mi.left, mi.right = sbl, child
		mi.parent.index--
	} else { // no left sibling available
		sbl = s.rightSibling(child)
		mi.left, mi.right = child, sbl
	}
	assertThat(mi.left.node != nil, "sibling-pair needs to have non-empty left sibling")
	return mi
}

// --- Path ------------------------------------------------------------------

// slotPath is a path through the tree, from the root down to a slot in some
// node.
type slotPath[T any] []slot[T]

func (path slotPath[T]) String() string {
	sb := strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[T]) last() slot[T] {
	if len(path) == 0 {
		return slot[T]{}
	}
	return path[len(path)-1]
}

// foldR folds f over path from right to left, i.e. from the leaf level
// upwards.
func (path slotPath[T]) foldR(f func(slot[T], slot[T]) slot[T], zero slot[T]) slot[T] {
	if len(path) == 0 {
		return zero
	}
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

func (path slotPath[T]) dropLast() slotPath[T] {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}
