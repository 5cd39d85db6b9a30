package snapshot

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/jalusw/datastructures-algorithms/btree"
)

func buildTree(t *testing.T, degree, size int) *btree.Btree {
	t.Helper()
	tree, err := btree.New(degree)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range rand.Perm(size) {
		tree.Insert([]byte(fmt.Sprintf("%05d", v)), []byte(fmt.Sprintf("val-%d", v)))
	}
	return tree
}

func TestRoundTrip(t *testing.T) {
	tree := buildTree(t, 3, 1000)

	var buf bytes.Buffer
	if err := Write(&buf, tree); err != nil {
		t.Fatalf("Write: %v", err)
	}

	restored, err := Read(&buf, tree.Degree())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if restored.Len() != tree.Len() {
		t.Fatalf("restored %d keys, want %d", restored.Len(), tree.Len())
	}
	want := tree.Keys()
	got := restored.Keys()
	for i := range want {
		if !bytes.Equal(want[i], got[i]) {
			t.Fatalf("key %d: got %s, want %s", i, got[i], want[i])
		}
		wantVal, _ := tree.Find(want[i])
		gotVal, err := restored.Find(want[i])
		if err != nil {
			t.Fatalf("Find(%s) after restore: %v", want[i], err)
		}
		if !bytes.Equal(wantVal, gotVal) {
			t.Fatalf("value for %s: got %s, want %s", want[i], gotVal, wantVal)
		}
	}
}

func TestRoundTripEmptyTree(t *testing.T) {
	tree, err := btree.New(2)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, tree); err != nil {
		t.Fatalf("Write: %v", err)
	}
	restored, err := Read(&buf, 2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if restored.Len() != 0 {
		t.Fatalf("restored %d keys from an empty snapshot", restored.Len())
	}
}

func TestReadRejectsInvalidDegree(t *testing.T) {
	if _, err := Read(bytes.NewReader(nil), 1); err == nil {
		t.Fatal("Read accepted an invalid degree")
	}
}

func TestReadTruncatedStream(t *testing.T) {
	tree := buildTree(t, 2, 50)

	var buf bytes.Buffer
	if err := Write(&buf, tree); err != nil {
		t.Fatalf("Write: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]
	if _, err := Read(bytes.NewReader(truncated), 2); err == nil {
		t.Fatal("Read succeeded on a truncated stream")
	}
}
