package btree

import (
	"errors"
	"fmt"
)

// ErrInvalidDegree is returned by New when the requested minimum degree is
// too small to form a valid B-tree.
var ErrInvalidDegree = errors.New("btree: minimum degree must be at least 2")

/*
Btree keeps a pointer to the root node of the tree plus the minimum degree
picked at construction time.
A tree is made up of nodes. Each node contains data items.
*/
type Btree struct {
	root   *node
	degree int
	length int
}

// New returns an empty B-tree with the given minimum degree. A node of the
// resulting tree holds at most 2*degree-1 items and, unless it is a leaf,
// at most 2*degree children.
func New(degree int) (*Btree, error) {
	if degree < 2 {
		return nil, ErrInvalidDegree
	}
	return &Btree{degree: degree}, nil
}

// maxItems is the largest number of items a single node may hold (2t-1).
func (t *Btree) maxItems() int {
	return 2*t.degree - 1
}

// minItems is the smallest number of items a non-root node may hold (t-1).
func (t *Btree) minItems() int {
	return t.degree - 1
}

// Degree returns the minimum degree the tree was constructed with.
func (t *Btree) Degree() int {
	return t.degree
}

// Len returns the number of keys currently stored in the tree.
func (t *Btree) Len() int {
	return t.length
}

// Find searches the entire tree and returns the value stored under key.
func (t *Btree) Find(key []byte) ([]byte, error) {
	for next := t.root; next != nil; {
		pos, found := next.search(key)
		if found {
			return next.items[pos].val, nil
		}
		if next.isLeaf() {
			break
		}
		next = next.children[pos]
	}
	return nil, fmt.Errorf("key %s not found", key)
}

// Has reports whether key is present in the tree.
func (t *Btree) Has(key []byte) bool {
	_, err := t.Find(key)
	return err == nil
}

/*
Create a new root node.
The existing root then becomes the new root's left child.
The node created by splitting the existing root becomes the right child.
This is the only place where the tree grows in height.
*/
func (t *Btree) splitRoot() {
	newRoot := &node{}
	midItem, newNode := t.root.split(t.minItems())
	newRoot.insertItemAt(0, midItem)
	newRoot.insertChildAt(0, t.root)
	newRoot.insertChildAt(1, newNode)
	t.root = newRoot
}

// Insert stores val under key. Inserting a key that is already present
// overwrites its value and leaves the set of keys unchanged.
func (t *Btree) Insert(key, val []byte) {
	it := &item{key, val}

	// The tree is empty, so initialize a new node.
	if t.root == nil {
		t.root = &node{}
	}

	// The tree root is full, so perform a split on the root.
	if len(t.root.items) >= t.maxItems() {
		t.splitRoot()
	}

	// Begin insertion.
	if t.root.insert(it, t.maxItems()) {
		t.length++
	}
}

/*
Delete removes key from the tree and reports whether it was present.
Membership is checked with a read-only search first, so deleting an absent
key leaves the tree untouched: no node is filled or merged along the way.
*/
func (t *Btree) Delete(key []byte) bool {
	if t.root == nil || !t.Has(key) {
		return false
	}

	deleted := t.root.delete(key, t.minItems())

	// A merge may leave the root without items. Its sole child, if it has
	// one, becomes the new root, shrinking the tree by one level.
	if len(t.root.items) == 0 {
		if t.root.isLeaf() {
			t.root = nil
		} else {
			t.root = t.root.children[0]
		}
	}

	if deleted != nil {
		t.length--
		return true
	}
	return false
}

// Min returns the smallest key in the tree. The boolean is false when the
// tree is empty.
func (t *Btree) Min() ([]byte, bool) {
	if t.root == nil || len(t.root.items) == 0 {
		return nil, false
	}
	return t.root.findMin().key, true
}

// Max returns the largest key in the tree. The boolean is false when the
// tree is empty.
func (t *Btree) Max() ([]byte, bool) {
	if t.root == nil || len(t.root.items) == 0 {
		return nil, false
	}
	return t.root.findMax().key, true
}

// Ascend calls fn for every key-value pair in ascending key order until fn
// returns false. The walk starts from the root on every call; no cursor is
// retained between calls.
func (t *Btree) Ascend(fn func(key, val []byte) bool) {
	if t.root == nil {
		return
	}
	t.root.ascend(func(it *item) bool {
		return fn(it.key, it.val)
	})
}

// Keys returns every key in the tree in ascending order.
func (t *Btree) Keys() [][]byte {
	keys := make([][]byte, 0, t.length)
	t.Ascend(func(key, _ []byte) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (t *Btree) String() string {
	return fmt.Sprintf("Btree(degree=%d, keys=%d)", t.degree, t.length)
}
