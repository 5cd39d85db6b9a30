package benchmarks

import (
	"testing"

	"github.com/cockroachdb/pebble"

	"github.com/jalusw/datastructures-algorithms/btree"
	"github.com/jalusw/datastructures-algorithms/skiplist"
)

const (
	lookupTreeSize = 1 << 16
	btreeDegree    = 32
)

func BenchmarkBtreeInsert(b *testing.B) {
	w := NewWorkload(b.N)
	tree, err := btree.New(btreeDegree)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(w.Keys[i], w.Values[i])
	}
}

func BenchmarkBtreeFind(b *testing.B) {
	w := NewWorkload(lookupTreeSize)
	tree, err := btree.New(btreeDegree)
	if err != nil {
		b.Fatal(err)
	}
	for i := range w.Keys {
		tree.Insert(w.Keys[i], w.Values[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.Find(w.Keys[i%lookupTreeSize]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSkipListInsert(b *testing.B) {
	w := NewWorkload(b.N)
	sl := skiplist.NewSkipList()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sl.Insert(w.Keys[i], w.Values[i])
	}
}

func BenchmarkSkipListGet(b *testing.B) {
	w := NewWorkload(lookupTreeSize)
	sl := skiplist.NewSkipList()
	for i := range w.Keys {
		sl.Insert(w.Keys[i], w.Values[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := sl.Get(w.Keys[i%lookupTreeSize]); !found {
			b.Fatal("lookup missed")
		}
	}
}

func openPebble(b *testing.B) *pebble.DB {
	b.Helper()
	db, err := pebble.Open(b.TempDir(), &pebble.Options{})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() {
		if err := db.Close(); err != nil {
			b.Fatal(err)
		}
	})
	return db
}

func BenchmarkPebbleSet(b *testing.B) {
	w := NewWorkload(b.N)
	db := openPebble(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := db.Set(w.Keys[i], w.Values[i], pebble.NoSync); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPebbleGet(b *testing.B) {
	w := NewWorkload(lookupTreeSize)
	db := openPebble(b)
	for i := range w.Keys {
		if err := db.Set(w.Keys[i], w.Values[i], pebble.NoSync); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		val, closer, err := db.Get(w.Keys[i%lookupTreeSize])
		if err != nil {
			b.Fatal(err)
		}
		_ = val
		if err := closer.Close(); err != nil {
			b.Fatal(err)
		}
	}
}
