package skiplist

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

func key(i int) []byte {
	return []byte(fmt.Sprintf("%04d", i))
}

func TestEmptyList(t *testing.T) {
	sl := NewSkipList()
	if _, found := sl.Get(key(1)); found {
		t.Fatal("Get on empty list reported a key")
	}
	if _, found := sl.Min(); found {
		t.Fatal("Min on empty list reported a key")
	}
	if sl.Delete(key(1)) {
		t.Fatal("Delete on empty list reported success")
	}
}

func TestInsertGetDelete(t *testing.T) {
	sl := NewSkipList()
	const size = 500

	for _, v := range rand.Perm(size) {
		sl.Insert(key(v), []byte(fmt.Sprintf("val-%d", v)))
	}
	for i := 0; i < size; i++ {
		got, found := sl.Get(key(i))
		if !found {
			t.Fatalf("Get(%s) missed", key(i))
		}
		if want := fmt.Sprintf("val-%d", i); string(got) != want {
			t.Fatalf("Get(%s) = %s, want %s", key(i), got, want)
		}
	}

	for _, v := range rand.Perm(size) {
		if !sl.Delete(key(v)) {
			t.Fatalf("Delete(%s) reported absence", key(v))
		}
		if _, found := sl.Get(key(v)); found {
			t.Fatalf("key %s still present after deletion", key(v))
		}
	}
	if _, found := sl.Min(); found {
		t.Fatal("Min reported a key after deleting every entry")
	}
	if sl.height > 1 {
		t.Fatalf("height = %d after deleting every key", sl.height)
	}
}

func TestInsertOverwritesExistingKey(t *testing.T) {
	sl := NewSkipList()
	sl.Insert(key(1), []byte("old"))
	sl.Insert(key(1), []byte("new"))

	got, found := sl.Get(key(1))
	if !found || string(got) != "new" {
		t.Fatalf("Get = %s, want new", got)
	}

	var count int
	sl.Ascend(func(_, _ []byte) bool {
		count++
		return true
	})
	if count != 1 {
		t.Fatalf("list holds %d entries after overwrite, want 1", count)
	}
}

func TestAscendOrdered(t *testing.T) {
	sl := NewSkipList()
	const size = 300
	for _, v := range rand.Perm(size) {
		sl.Insert(key(v), []byte("x"))
	}

	var prev []byte
	var count int
	sl.Ascend(func(k, _ []byte) bool {
		if prev != nil && bytes.Compare(prev, k) >= 0 {
			t.Fatalf("out of order: %s then %s", prev, k)
		}
		prev = append(prev[:0], k...)
		count++
		return true
	})
	if count != size {
		t.Fatalf("visited %d entries, want %d", count, size)
	}

	min, found := sl.Min()
	if !found || !bytes.Equal(min, key(0)) {
		t.Fatalf("Min = %s, want %s", min, key(0))
	}
}
