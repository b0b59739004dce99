package natmap

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables
  holding clones of nodes.

- We use a programming-style reminiscent of functional programming (see the
  fold over slot-paths during re-balancing) where it makes things easier to
  understand.

- A new modified incarnation of a map always is reflected by a new map.root.

*/

import (
	"github.com/npillmayer/natural"
)

const defaultLowWaterMark uint = 3
const defaultHighWaterMark uint = defaultLowWaterMark * 2

// props holds the configurable parameters of a map, independently of the
// map's value type.
type props struct {
	lowWaterMark  uint // minimum number of items per node
	highWaterMark uint // maximum number of items per node
}

var defaultProps = props{
	lowWaterMark:  defaultLowWaterMark,
	highWaterMark: defaultHighWaterMark,
}

// Map is a persistent sorted map with Natural keys and values of type T.
// An empty instance is usable as an empty map, i.e. this is legal:
//
//     m := natmap.Map[string]{}.With(natural.One, "unity")
//
// returning a map containing the single key ⟨1⟩ associated with "unity".
type Map[T any] struct {
	props
	root  *xnode[T]
	depth uint
}

// Immutable constructs a map with options, if you need any.
// Use it like this:
//
//     m := natmap.Immutable[string](natmap.Degree(16))
//     m = m.With(natural.FromInt(42), "Galaxy")
//     value, found := m.Find(natural.FromInt(42))   // returns "Galaxy"
//
func Immutable[T any](opts ...Option) Map[T] {
	m := Map[T]{props: defaultProps}
	for _, option := range opts {
		m.props = option.config(m.props)
	}
	return m
}

// Option is a type to help initializing maps at creation time.
type Option struct {
	config func(props) props
}

// Degree is an option to set the minimum number of children a node in the
// underlying tree owns. The lower bound for the degree is 3.
func Degree(n int) Option {
	return Option{config: func(p props) props {
		low := max(2, n-1)
		p.lowWaterMark = uint(low)
		p.highWaterMark = p.lowWaterMark * 2
		return p
	}}
}

// --- API -------------------------------------------------------------------

// Find locates a key in a map, if present, and returns the value associated
// with the key. If key is not found, the zero value for type T will be
// returned, together with found=false.
func (m Map[T]) Find(key natural.Natural) (T, bool) {
	var found bool
	var path slotPath[T] = make([]slot[T], m.depth)
	if found, path = m.findKeyAndPath(key, path); found {
		return path.last().item().value, true
	}
	var none T
	return none, false
}

// With returns a copy of a map with key inserted, associated with value.
// If an entry for key is already present, the associated value will be
// replaced (in a new incarnation of the map, nevertheless).
func (m Map[T]) With(key natural.Natural, value T) Map[T] {
	if m.highWaterMark == 0 { // usage of zero value Map[T]{}
		m.props = defaultProps
	}
	var path slotPath[T] = make([]slot[T], m.depth)
	var found bool
	if found, path = m.findKeyAndPath(key, path); found {
		return m.replacing(key, value, path) // copy with replaced value
	}
	tracer().Debugf("insert: slot path = %s", path)
	item := xitem[T]{key: key, value: value}
	if m.root == nil { // virgin map => insert first node and return
		return m.shallowCloneWithRoot(xnode[T]{}.withInsertedItem(item, 0)).withDepth(1)
	}
	leafSlot := path.last()
	assertThat(leafSlot.node.isLeaf(), "attempt to insert item at non-leaf")
	cow := leafSlot.node.withInsertedItem(item, leafSlot.index) // copy-on-write
	tracer().Debugf("insert: created copy of (leaf + key@%d) = %s", leafSlot.index, cow.String())
	newRoot := path.dropLast().foldR(splitAndClone[T](m.highWaterMark),
		slot[T]{node: &cow, index: leafSlot.index},
	)
	tracer().Debugf("insert: new root = %s", newRoot)
	if newRoot.node.overfull(m.highWaterMark) {
		newRoot = xnode[T]{}.splitChild(newRoot)
		m.depth++ // miss-use of m for intermediate storage of new depth
	}
	return m.shallowCloneWithRoot(*newRoot.node)
}

// WithDeleted returns a copy of a map with key deleted, if present, together
// with its associated value. If key is not found, m is returned unchanged.
func (m Map[T]) WithDeleted(key natural.Natural) Map[T] {
	if m.highWaterMark == 0 {
		m.props = defaultProps
	}
	var path slotPath[T] = make([]slot[T], m.depth)
	var found bool
	if found, path = m.findKeyAndPath(key, path); !found {
		return m // no need for modification
	}
	tracer().Debugf("deletion: slot path = %s", path)
	del := path.last()
	var leafSlot slot[T]
	if del.node.isLeaf() {
		cow := del.node.withDeletedItem(del.index) // copy-on-write
		leafSlot = slot[T]{node: &cow, index: del.index}
	} else { // for inner node:
		// swap item with rightmost item of left subtree or leftmost item of right subtree
		cow := del.node.clone()                                         // cow is clone of inner node
		path[len(path)-1].node = &cow                                   // remember clone in path
		leafItem, leafPath := path.last().stealPredOrSucc(path, m.lowWaterMark)
		cow.items[del.index] = leafItem                                 // insert stolen item
		l := leafPath.last()                                            //
		cowLeaf := l.node.withDeletedItem(l.index)                      // remove stolen item from leaf
		path = leafPath                                                 // continue with path from root to leaf
		leafSlot = slot[T]{node: &cowLeaf, index: l.index}              // leaf to start balancing
	}
	// balance from leaf-node upwards, starting at the leaf where we deleted an item
	newRoot := path.dropLast().foldR(balance[T](m.lowWaterMark),
		leafSlot,
	)
	tracer().Debugf("deletion: new root = %s", newRoot)
	newMap := m.shallowCloneWithRoot(*newRoot.node)
	switch { // catch border cases where root is empty after deletion
	case newRoot.len() == 0 && !newRoot.node.isLeaf():
		newMap.root = newRoot.node.children[0]
		newMap.depth--
	case newRoot.len() == 0 && newRoot.node.isLeaf():
		newMap.root = nil
		newMap.depth = 0
	}
	return newMap
}

// Keys returns the keys of the map in ascending numeric order.
func (m Map[T]) Keys() []natural.Natural {
	var keys []natural.Natural
	var walk func(node *xnode[T])
	walk = func(node *xnode[T]) {
		if node == nil {
			return
		}
		if node.isLeaf() {
			for _, item := range node.items {
				keys = append(keys, item.key)
			}
			return
		}
		for i, item := range node.items {
			walk(node.children[i])
			keys = append(keys, item.key)
		}
		walk(node.children[len(node.items)])
	}
	walk(m.root)
	return keys
}

// --- Folding functions -----------------------------------------------------

// splitAndClone returns a fold function which splits an overfull child on
// the way up, cloning the seam otherwise.
func splitAndClone[T any](highWaterMark uint) func(slot[T], slot[T]) slot[T] {
	return func(parent, child slot[T]) slot[T] {
		tracer().Debugf("split&propagate: parent = %s, child = %s", parent, child)
		if child.node.overfull(highWaterMark) {
			return parent.node.splitChild(child)
		}
		return cloneSeam(parent, child)
	}
}

// cloneSeam clones a parent node and hooks in a modified child.
func cloneSeam[T any](parent, child slot[T]) slot[T] {
	tracer().Debugf("seam: parent = %s, child = %s", parent, child)
	cowParent := parent.node.clone()
	cowParent.children[parent.index] = child.node
	return slot[T]{node: &cowParent, index: parent.index}
}

// balance returns a fold function which re-balances an underfull child on
// the way up, cloning the seam otherwise.
func balance[T any](lowWaterMark uint) func(slot[T], slot[T]) slot[T] {
	return func(parent, child slot[T]) slot[T] {
		tracer().Debugf("balance: parent = %s, child = %s", parent, child)
		if child.node.underfull(lowWaterMark) {
			return parent.balance(child, lowWaterMark)
		}
		return cloneSeam(parent, child)
	}
}
