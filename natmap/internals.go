package natmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/natural"
)

// xitem is a key together with its associated value.
type xitem[T any] struct {
	key   natural.Natural
	value T
}

// xnode is a node of the B-tree. A nil children-slice marks a leaf.
type xnode[T any] struct {
	items    []xitem[T]
	children []*xnode[T]
}

func (node *xnode[T]) isLeaf() bool {
	return len(node.children) == 0
}

func (node *xnode[T]) overfull(highWaterMark uint) bool {
	return uint(len(node.items)) > highWaterMark
}

func (node *xnode[T]) underfull(lowWaterMark uint) bool {
	return uint(len(node.items)) < lowWaterMark
}

func (node *xnode[T]) String() string {
	if node == nil {
		return "⟨⟩"
	}
	sb := strings.Builder{}
	sb.WriteRune('⟨')
	for i, item := range node.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(item.key.String())
	}
	sb.WriteRune('⟩')
	return sb.String()
}

// findSlot locates key within node, or the slot where key would have to be
// inserted.
func (node *xnode[T]) findSlot(key natural.Natural) (bool, int) {
	items, itemcnt := node.items, len(node.items)
	slotinx := sort.Search(itemcnt, func(i int) bool {
		return items[i].key.Compare(key) >= 0 // smallest i for which this is true
	})
	return slotinx < itemcnt && items[slotinx].key.Equal(key), slotinx
}

// --- Copy-on-write node modification ---------------------------------------

func (node xnode[T]) clone() xnode[T] {
	return node.cloneWithCapacity(0)
}

// cloneWithCapacity creates a copy of node, with the capacity of the item
// slice grown to at least cap.
func (node xnode[T]) cloneWithCapacity(cap int) xnode[T] {
	cow := xnode[T]{}
	if cap < len(node.items) {
		cap = len(node.items)
	}
	cap = ceiling(cap)
	cow.items = make([]xitem[T], len(node.items), cap)
	copy(cow.items, node.items)
	if !node.isLeaf() {
		cow.children = make([]*xnode[T], len(node.children), cap+1)
		copy(cow.children, node.children)
	}
	return cow
}

// slice copies a sub-range of node's items, together with the corresponding
// child links, into a new node. to = -1 selects the end of the items.
func (node xnode[T]) slice(from, to int) xnode[T] {
	if to < 0 {
		to = len(node.items)
	}
	cow := xnode[T]{items: make([]xitem[T], to-from, ceiling(to-from))}
	copy(cow.items, node.items[from:to])
	if !node.isLeaf() {
		cow.children = make([]*xnode[T], to-from+1, ceiling(to-from)+1)
		copy(cow.children, node.children[from:to+1])
	}
	return cow
}

// asNonLeaf equips a leaf with (empty) child links; inner nodes are returned
// unchanged.
func (node xnode[T]) asNonLeaf() xnode[T] {
	if !node.isLeaf() {
		return node
	}
	node.children = make([]*xnode[T], len(node.items)+1)
	return node
}

func (node xnode[T]) withReplacedValue(item xitem[T], at int) xnode[T] {
	assertThat(at < len(node.items), "given item index out of range: %d ≥ %d", at, len(node.items))
	cow := node.clone()
	cow.items[at].value = item.value
	return cow
}

// withInsertedItem inserts item at position `at`, shifting trailing items to
// the right. For inner nodes an unset child link is inserted at position
// `at` as well, to be hooked up by the caller.
func (node xnode[T]) withInsertedItem(item xitem[T], at int) xnode[T] {
	assertThat(at <= len(node.items), "given item index out of range: %d > %d", at, len(node.items))
	cow := node.cloneWithCapacity(len(node.items) + 1) // change-on-write behaviour requires copying
	cow.items = append(cow.items, xitem[T]{})
	copy(cow.items[at+1:], cow.items[at:])
	cow.items[at] = item
	if !cow.isLeaf() {
		cow.children = append(cow.children, nil)
		copy(cow.children[at+1:], cow.children[at:])
		cow.children[at] = nil
	}
	return cow
}

// withDeletedItem deletes the item at position `at`, together with the child
// link left of it.
func (node xnode[T]) withDeletedItem(at int) xnode[T] {
	assertThat(at < len(node.items), "given item index out of range: %d ≥ %d", at, len(node.items))
	cow := node.clone()
	cow.items = append(cow.items[:at], cow.items[at+1:]...)
	if !cow.isLeaf() {
		cow.children = append(cow.children[:at], cow.children[at+1:]...)
	}
	return cow
}

// withCutRight cuts off the rightmost item of a node, returning a copy of
// node, the cut item and, for inner nodes, the item's right child link.
func (node xnode[T]) withCutRight() (xnode[T], xitem[T], *xnode[T]) {
	assertThat(len(node.items) > 0, "attempt to cut right item from empty node")
	cow := node.clone()
	item := cow.items[len(cow.items)-1]
	cow.items = cow.items[:len(cow.items)-1]
	var rnode *xnode[T]
	if !cow.isLeaf() {
		rnode = cow.children[len(cow.children)-1]
		cow.children = cow.children[:len(cow.children)-1]
	}
	return cow, item, rnode
}

// withCutLeft cuts off the leftmost item of a node, returning a copy of
// node, the cut item and, for inner nodes, the item's left child link.
func (node xnode[T]) withCutLeft() (xnode[T], xitem[T], *xnode[T]) {
	assertThat(len(node.items) > 0, "attempt to cut left item from empty node")
	cow := node.clone()
	item := cow.items[0]
	cow.items = cow.items[1:]
	var lnode *xnode[T]
	if !cow.isLeaf() {
		lnode = cow.children[0]
		cow.children = cow.children[1:]
	}
	return cow, item, lnode
}

// --- Insertion internals ---------------------------------------------------

func (m Map[T]) findKeyAndPath(key natural.Natural, pathBuf slotPath[T]) (found bool, path slotPath[T]) {
	path = pathBuf[:0] // we track the path to the key's slot
	if m.root == nil {
		return
	}
	var index int
	var node *xnode[T] = m.root // walking nodes, start search at the top
	for !node.isLeaf() {
		tracer().Debugf("node = %v", node)
		found, index = node.findSlot(key)
		path = append(path, slot[T]{node: node, index: index})
		if found {
			return // we have an exact match
		}
		node = node.children[index]
	}
	tracer().Debugf("node = %v", node)
	found, index = node.findSlot(key)
	path = append(path, slot[T]{node: node, index: index})
	tracer().Debugf("slot path for key=%v -> %s", key, path)
	return
}

func (m Map[T]) replacing(key natural.Natural, value T, path slotPath[T]) (newMap Map[T]) {
	assertThat(len(path) > 0, "cannot replace item without path")
	tracer().Debugf("natmap.With: slot path = %s", path)
	hit := path.last() // slot where key lives
	item := xitem[T]{key: key, value: value}
	cow := hit.node.withReplacedValue(item, hit.index)
	newRoot := path.dropLast().foldR(cloneSeam[T], slot[T]{node: &cow, index: hit.index})
	tracer().Debugf("replace: top = %s", newRoot)
	return m.shallowCloneWithRoot(*newRoot.node)
}

// splitChild splits an overfull child node, distributing its items onto two
// new siblings and lifting the median item into node.
// Returns a modified copy of node with 2 new children, where the left one
// substitutes a child of node.
//
// It's legal to pass in xnode[T]{} as node (in order to create a new root).
//
func (node xnode[T]) splitChild(s slot[T]) slot[T] {
	child := s.node
	half := len(child.items) / 2
	medianItem := child.items[half]
	siblingL := child.slice(0, half)
	siblingR := child.slice(half+1, -1)
	found, index := node.findSlot(medianItem.key)
	assertThat(!found, "internal inconsistency: child has same key as parent (during split)")
	cow := node.withInsertedItem(medianItem, index).asNonLeaf()
	cow.children[index] = &siblingL
	cow.children[index+1] = &siblingR
	return slot[T]{node: &cow, index: index}
}

// --- Deletion internals ----------------------------------------------------

// stealPredOrSucc locates the replacement for an item deleted from an inner
// node: the rightmost item of the item's left subtree, or the leftmost item
// of the right subtree if the latter has items to spare and the former has
// not. The path is extended down to the leaf holding the replacement.
func (s slot[T]) stealPredOrSucc(path slotPath[T], lowWaterMark uint) (xitem[T], slotPath[T]) {
	assertThat(!s.node.isLeaf(), "attempt to steal a replacement item from a leaf")
	left := s.node.children[s.index]
	right := s.node.children[s.index+1]
	if uint(len(right.items)) > lowWaterMark && uint(len(left.items)) <= lowWaterMark {
		// steal successor, i.e. the leftmost item of the right subtree
		path[len(path)-1].index = s.index + 1
		node := right
		for !node.isLeaf() {
			path = append(path, slot[T]{node: node, index: 0})
			node = node.children[0]
		}
		return node.items[0], append(path, slot[T]{node: node, index: 0})
	}
	// steal predecessor, i.e. the rightmost item of the left subtree
	node := left
	for !node.isLeaf() {
		path = append(path, slot[T]{node: node, index: len(node.children) - 1})
		node = node.children[len(node.children)-1]
	}
	return node.items[len(node.items)-1], append(path, slot[T]{node: node, index: len(node.items) - 1})
}

// balance re-distributes items between an underfull child and one of its
// siblings, stealing an item from a sibling if one has items to spare,
// merging with a sibling otherwise.
func (parent slot[T]) balance(child slot[T], lowWaterMark uint) slot[T] {
	assertThat(len(parent.node.children) > 0, "attempt to balance parent w/ zero children")
	if !parent.leftSibling(child).underfull(lowWaterMark + 1) {
		// steal item from left sibling ⇒ rotate right
		return parent.rotateRight(parent.leftSibling(child), child)
	} else if !parent.rightSibling(child).underfull(lowWaterMark + 1) {
		// steal item from right sibling ⇒ rotate left
		return parent.rotateLeft(child, parent.rightSibling(child))
	}
	// steal item from parent and merge child with a sibling
	return merge(parent.siblings2(child))
}

// merge steals an item from the parent and merges child with a sibling.
// Returns a new parent which may be underfull or even empty (in case of the
// parent being the root).
func merge[T any](mi mergeinfo[T]) slot[T] {
	parent := mi.parent
	assertThat(parent.len() > 0, "attempt to extract an item from an empty parent node")
	cow := parent.node.withDeletedItem(parent.index)
	newParent := slot[T]{node: &cow, index: parent.index}
	lsbl, rsbl := mi.left, mi.right // rsbl may be slot[T]{}, i.e. empty
	cowch := lsbl.node.cloneWithCapacity(lsbl.len() + rsbl.len() + 1)
	cowch.items = append(cowch.items, parent.item())
	cowch.items = append(cowch.items, rsbl.items()...)
	if !cowch.isLeaf() && rsbl.len() > 0 {
		cowch.children = append(cowch.children, rsbl.node.children...)
		assertThat(len(cowch.children) == len(cowch.items)+1, "merged node has inconsistent fan-out")
	}
	cow.children[parent.index] = &cowch // link new parent to merged child
	return newParent
}

// rotateRight steals the rightmost item of the left sibling: the item
// separating lsbl and child in the parent moves down into child, the stolen
// item replaces it.
func (parent slot[T]) rotateRight(lsbl, child slot[T]) slot[T] {
	sep := parent.index - 1 // item separating lsbl and child
	assertThat(sep >= 0, "attempt to rotate right without a left sibling")
	cow := parent.node.clone()
	cowlsbl, stolen, grandChild := lsbl.node.withCutRight()
	sepItem := cow.items[sep]
	cow.items[sep] = stolen
	cowchild := child.node.withInsertedItem(sepItem, 0)
	if !cowchild.isLeaf() {
		cowchild.children[0] = grandChild
	}
	cow.children[sep] = &cowlsbl
	cow.children[sep+1] = &cowchild
	return slot[T]{node: &cow, index: parent.index}
}

// rotateLeft steals the leftmost item of the right sibling: the item
// separating child and rsbl in the parent moves down into child, the stolen
// item replaces it.
func (parent slot[T]) rotateLeft(child, rsbl slot[T]) slot[T] {
	sep := parent.index // item separating child and rsbl
	cow := parent.node.clone()
	cowrsbl, stolen, grandChild := rsbl.node.withCutLeft()
	cowchild := child.node.clone()
	cowchild.items = append(cowchild.items, cow.items[sep])
	if !cowchild.isLeaf() {
		cowchild.children = append(cowchild.children, grandChild)
	}
	cow.items[sep] = stolen
	cow.children[sep] = &cowchild
	cow.children[sep+1] = &cowrsbl
	return slot[T]{node: &cow, index: parent.index}
}

// --- Map bookkeeping -------------------------------------------------------

func (m Map[T]) shallowCloneWithRoot(node xnode[T]) Map[T] {
	m.root = &node
	return m
}

func (m Map[T]) withDepth(d uint) Map[T] {
	m.depth = d
	return m
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("natmap: "+msg, msgargs...)
		panic(msg)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ceiling rounds n up to an even number, for slice capacities.
func ceiling(n int) int {
	return ((n + 1) >> 1) << 1
}
