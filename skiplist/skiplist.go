// Package skiplist implements an ordered key-value map as a probabilistic
// skip list. It is self-contained and serves as an in-repo comparison point
// for the B-tree in the benchmark suite.
package skiplist

import (
	"bytes"
	"math"
	"math/rand/v2"
)

const (
	MaxHeight = 16
	p         = 0.5
)

var probabilities [MaxHeight]uint32

type node struct {
	key   []byte
	val   []byte
	tower [MaxHeight]*node
}

type SkipList struct {
	head   *node // starting head node
	height int   // current height
}

func init() {
	probability := 1.0

	for level := 0; level < MaxHeight; level++ {
		probabilities[level] = uint32(probability * float64(math.MaxUint32))
		probability *= p
	}
}

func randomHeight() int {
	seed := rand.Uint32()

	height := 1
	for height < MaxHeight && seed <= probabilities[height] {
		height++
	}

	return height
}

func NewSkipList() *SkipList {
	return &SkipList{
		head:   &node{},
		height: 1,
	}
}

/*
search descends from the top level towards the bottom, recording in journey
the rightmost node strictly before key on each level. The returned node is
the match, or nil when the key is absent.
*/
func (sl *SkipList) search(key []byte) (*node, [MaxHeight]*node) {
	var next *node
	var journey [MaxHeight]*node

	prev := sl.head
	for level := sl.height - 1; level >= 0; level-- {
		for next = prev.tower[level]; next != nil; next = prev.tower[level] {
			// key <= next.key
			if bytes.Compare(key, next.key) <= 0 {
				break
			}
			// key > next.key
			prev = next
		}
		journey[level] = prev
	}

	if next != nil && bytes.Equal(key, next.key) {
		return next, journey
	}
	return nil, journey
}

func (sl *SkipList) Get(key []byte) ([]byte, bool) {
	n, _ := sl.search(key)

	if n != nil {
		return n.val, true
	}
	return nil, false
}

func (sl *SkipList) Insert(key, val []byte) {
	n, journey := sl.search(key)

	// update value of existing key
	if n != nil {
		n.val = val
		return
	}

	height := randomHeight()
	newNode := &node{
		key: key,
		val: val,
	}

	// bottom to top level
	for level := 0; level < height; level++ {
		prev := journey[level]
		if prev == nil {
			// prev is nil when we extend the height of the list; the
			// journey array has no entry for those levels.
			prev = sl.head
		}
		newNode.tower[level] = prev.tower[level]
		prev.tower[level] = newNode
	}

	if height > sl.height {
		sl.height = height
	}
}

func (sl *SkipList) shrink() {
	for level := sl.height - 1; level >= 0; level-- {
		if sl.head.tower[level] == nil {
			sl.height--
		} else {
			break
		}
	}
}

func (sl *SkipList) Delete(key []byte) bool {
	n, journey := sl.search(key)

	// no such key exists
	if n == nil {
		return false
	}

	// bottom to top level
	for level := 0; level < sl.height; level++ {
		prev := journey[level]

		if prev.tower[level] != n {
			break
		}

		prev.tower[level] = n.tower[level]
		n.tower[level] = nil
	}

	// shrink the height if the removed node was the only one residing on a
	// particular level of the skip list.
	sl.shrink()
	return true
}

// Min returns the smallest key in the list. The boolean is false when the
// list is empty.
func (sl *SkipList) Min() ([]byte, bool) {
	n := sl.head.tower[0]
	if n == nil {
		return nil, false
	}
	return n.key, true
}

// Ascend calls fn for every key-value pair in ascending key order until fn
// returns false.
func (sl *SkipList) Ascend(fn func(key, val []byte) bool) {
	for n := sl.head.tower[0]; n != nil; n = n.tower[0] {
		if !fn(n.key, n.val) {
			return
		}
	}
}
