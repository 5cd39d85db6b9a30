package btree

import "bytes"

/*
A node holds data items in strictly increasing key order and, unless it is a
leaf, one child pointer more than it has items. The item count bounds are
derived from the tree's minimum degree, which is a runtime parameter, so the
thresholds are passed in by the tree engine rather than kept on the node.
*/
type node struct {
	items    []*item
	children []*node
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

/*
If a data item with the given key is found in node n, return its index i.
Else, return the index j where the key would have resided if it was present
in the node. Basically, the lower bound of the key in the node -- this
coincides with the position of the child pointer to follow, so we can
continue the traversal down the tree when the returned boolean is false.
*/
func (n *node) search(key []byte) (int, bool) {
	low, high := 0, len(n.items)
	var mid int
	for low < high {
		mid = (low + high) / 2
		cmp := bytes.Compare(key, n.items[mid].key)
		switch {
		case cmp > 0:
			low = mid + 1
		case cmp < 0:
			high = mid
		case cmp == 0:
			return mid, true
		}
	}
	return low, false
}

// helper method to insert a data item at an arbitrary position of a node
func (n *node) insertItemAt(pos int, it *item) {
	n.items = append(n.items, nil)
	if pos < len(n.items)-1 {
		copy(n.items[pos+1:], n.items[pos:])
	}
	n.items[pos] = it
}

// helper method to insert a child pointer at an arbitrary position of a node
func (n *node) insertChildAt(pos int, child *node) {
	n.children = append(n.children, nil)
	if pos < len(n.children)-1 {
		copy(n.children[pos+1:], n.children[pos:])
	}
	n.children[pos] = child
}

// helper method to remove and return the data item at an arbitrary position
func (n *node) removeItemAt(pos int) *item {
	removed := n.items[pos]
	copy(n.items[pos:], n.items[pos+1:])
	n.items[len(n.items)-1] = nil // clear to allow GC
	n.items = n.items[:len(n.items)-1]
	return removed
}

// helper method to remove and return the child pointer at an arbitrary position
func (n *node) removeChildAt(pos int) *node {
	removed := n.children[pos]
	copy(n.children[pos:], n.children[pos+1:])
	n.children[len(n.children)-1] = nil // clear to allow GC
	n.children = n.children[:len(n.children)-1]
	return removed
}

/*
we split as soon as we reach the parent of a child that is already full.
split() returns the middle item and the newly created node, so the caller
can link them into the parent. mid is the index of the item to promote,
always minItems for this tree.
Note: this doesn't include splitting the root node. For that check
splitRoot() in tree.go.
*/
func (n *node) split(mid int) (*item, *node) {
	midItem := n.items[mid]

	// Create a new node and move the upper half of the items (and, except
	// for leaf nodes, the child pointers) from the current node into it.
	newNode := &node{}
	newNode.items = append(newNode.items, n.items[mid+1:]...)
	if !n.isLeaf() {
		newNode.children = append(newNode.children, n.children[mid+1:]...)
	}

	// Drop the moved items and child pointers from the current node.
	for i := mid; i < len(n.items); i++ {
		n.items[i] = nil // clear to allow GC
	}
	n.items = n.items[:mid]
	if !n.isLeaf() {
		for i := mid + 1; i < len(n.children); i++ {
			n.children[i] = nil
		}
		n.children = n.children[:mid+1]
	}

	return midItem, newNode
}

/*
Returned value is true if we performed an insertion. If the key already
exists, we just update its value and return false.
The algo starts traversing the tree from its root, recursively calling
insert() until it reaches a leaf node suitable for insertion. A full child
is split before we descend into it, so a split never propagates upward.
*/
func (n *node) insert(it *item, maxItems int) bool {
	pos, found := n.search(it.key)

	// The data item already exists, so just update its value.
	if found {
		n.items[pos] = it
		return false
	}

	// If we reach a leaf node, it has sufficient space for the new item.
	if n.isLeaf() {
		n.insertItemAt(pos, it)
		return true
	}

	// If the next node on the traversal path is already full, split it.
	if len(n.children[pos].items) >= maxItems {
		midItem, newNode := n.children[pos].split(maxItems / 2)
		n.insertItemAt(pos, midItem)
		n.insertChildAt(pos+1, newNode)

		// We may need to change direction after promoting the middle item
		// to the parent, depending on its key.
		switch cmp := bytes.Compare(it.key, n.items[pos].key); {
		case cmp < 0:
			// The key we are looking for is still smaller than the key of
			// the middle item that we took from the child, so we can
			// continue following the same direction.
		case cmp > 0:
			// The middle item that we took from the child has a key that is
			// smaller than the one we are looking for, so we need to change
			// our direction.
			pos++
		default:
			// The middle item that we took from the child is the item we
			// are inserting, so just update its value.
			n.items[pos] = it
			return false
		}
	}

	// Continue with the insertion process.
	return n.children[pos].insert(it, maxItems)
}

/*
delete removes the item holding key from the subtree rooted at n and returns
it, or nil if the key is not present. Before descending into a child sitting
at minItems the child is filled, so every recursive step only ever touches
the current node and its immediate children.
*/
func (n *node) delete(key []byte, minItems int) *item {
	pos, found := n.search(key)

	if found {
		if n.isLeaf() {
			return n.removeItemAt(pos)
		}
		return n.removeFromInternal(pos, minItems)
	}

	if n.isLeaf() {
		return nil
	}

	// Top up the child we are about to descend into if it cannot afford to
	// lose an item.
	if len(n.children[pos].items) <= minItems {
		n.fillChildAt(pos, minItems)
		// Filling the last child may merge it into its left sibling, in
		// which case the subtree we want now lives one position earlier.
		if pos > len(n.items) {
			pos--
		}
	}

	return n.children[pos].delete(key, minItems)
}

/*
removeFromInternal removes the item at position pos of an internal node.
The item is replaced by its in-order predecessor or successor when the
corresponding child can spare an item; otherwise the two children are merged
around it and the deletion is pushed down into the merged node.
*/
func (n *node) removeFromInternal(pos, minItems int) *item {
	removed := n.items[pos]
	left, right := n.children[pos], n.children[pos+1]

	switch {
	case len(left.items) > minItems:
		pred := left.findMax()
		n.items[pos] = pred
		left.delete(pred.key, minItems)
	case len(right.items) > minItems:
		succ := right.findMin()
		n.items[pos] = succ
		right.delete(succ.key, minItems)
	default:
		// Both children sit at the minimum, so merging them with the
		// separating item yields a single maximally filled node holding
		// the key we want to remove.
		n.mergeChildAt(pos)
		left.delete(removed.key, minItems)
	}
	return removed
}

// findMin follows the leftmost child chain down to a leaf and returns the
// smallest item of the subtree.
func (n *node) findMin() *item {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n.items[0]
}

// findMax follows the rightmost child chain down to a leaf and returns the
// largest item of the subtree.
func (n *node) findMax() *item {
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n.items[len(n.items)-1]
}

/*
fillChildAt tops up a child sitting at minItems before the delete descent
enters it: borrow an item from a sibling with spare capacity through the
separating item in the parent, or, when neither sibling can spare one, merge
the child with a sibling and pull the separating item down.
*/
func (n *node) fillChildAt(pos, minItems int) {
	switch {
	case pos > 0 && len(n.children[pos-1].items) > minItems:
		n.borrowFromLeft(pos)
	case pos < len(n.children)-1 && len(n.children[pos+1].items) > minItems:
		n.borrowFromRight(pos)
	case pos < len(n.children)-1:
		n.mergeChildAt(pos)
	default:
		n.mergeChildAt(pos - 1)
	}
}

// borrowFromLeft rotates the largest item of the left sibling through the
// parent into the front of child pos, carrying the sibling's last child
// pointer along for internal nodes.
func (n *node) borrowFromLeft(pos int) {
	child, sibling := n.children[pos], n.children[pos-1]

	child.insertItemAt(0, n.items[pos-1])
	n.items[pos-1] = sibling.removeItemAt(len(sibling.items) - 1)
	if !sibling.isLeaf() {
		child.insertChildAt(0, sibling.removeChildAt(len(sibling.children)-1))
	}
}

// borrowFromRight rotates the smallest item of the right sibling through the
// parent onto the end of child pos, carrying the sibling's first child
// pointer along for internal nodes.
func (n *node) borrowFromRight(pos int) {
	child, sibling := n.children[pos], n.children[pos+1]

	child.insertItemAt(len(child.items), n.items[pos])
	n.items[pos] = sibling.removeItemAt(0)
	if !sibling.isLeaf() {
		child.insertChildAt(len(child.children), sibling.removeChildAt(0))
	}
}

/*
mergeChildAt combines child pos, the separating item, and child pos+1 into a
single node at position pos. The caller guarantees both children sit at
minItems, so the merged node never exceeds the maximum item count.
*/
func (n *node) mergeChildAt(pos int) {
	child, sibling := n.children[pos], n.children[pos+1]

	child.items = append(child.items, n.removeItemAt(pos))
	child.items = append(child.items, sibling.items...)
	child.children = append(child.children, sibling.children...)
	n.removeChildAt(pos + 1)
}

/*
ascend emits child[0], item[0], child[1], item[1], ..., child[k] in order,
calling fn for every item. It returns false as soon as fn does, which stops
the walk early.
*/
func (n *node) ascend(fn func(it *item) bool) bool {
	for pos, it := range n.items {
		if !n.isLeaf() {
			if !n.children[pos].ascend(fn) {
				return false
			}
		}
		if !fn(it) {
			return false
		}
	}
	if !n.isLeaf() {
		return n.children[len(n.children)-1].ascend(fn)
	}
	return true
}
