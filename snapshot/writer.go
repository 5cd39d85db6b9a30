// Package snapshot dumps a B-tree to a flat, snappy-compressed stream of
// ordered key-value records and rebuilds trees from such streams. It is an
// export codec, not a page store: the stream carries no node boundaries and
// makes no durability guarantees.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/golang/snappy"

	"github.com/jalusw/datastructures-algorithms/btree"
)

// Writer encodes ordered key-value records into a snappy-compressed stream.
type Writer struct {
	sw  *snappy.Writer
	buf *bytes.Buffer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		sw:  snappy.NewBufferedWriter(w),
		buf: bytes.NewBuffer(make([]byte, 0, 1024)),
	}
}

// use a byte slice as an in-mem staging area for framing a single record
func (w *Writer) scratchBuf(needed int) []byte {
	available := w.buf.Available()
	if needed > available {
		w.buf.Grow(needed)
	}
	buf := w.buf.AvailableBuffer()
	return buf[:needed]
}

// writeRecord frames one pair as uvarint(keyLen) uvarint(valLen) key val,
// so keys and values of any length only spend the minimal amount of space
// on their length prefixes.
func (w *Writer) writeRecord(key, val []byte) error {
	keyLen, valLen := len(key), len(val)
	needed := 2*binary.MaxVarintLen64 + keyLen + valLen
	buf := w.scratchBuf(needed)

	n := binary.PutUvarint(buf, uint64(keyLen))
	n += binary.PutUvarint(buf[n:], uint64(valLen))
	copy(buf[n:], key)
	copy(buf[n+keyLen:], val)

	_, err := w.sw.Write(buf[:n+keyLen+valLen])
	return err
}

// WriteTree streams every pair of the tree in ascending key order.
func (w *Writer) WriteTree(t *btree.Btree) error {
	var err error
	t.Ascend(func(key, val []byte) bool {
		err = w.writeRecord(key, val)
		return err == nil
	})
	return err
}

// Close flushes the compressed stream. The underlying writer is left open.
func (w *Writer) Close() error {
	return w.sw.Close()
}

// Write dumps the tree's pairs to w in ascending key order.
func Write(w io.Writer, t *btree.Btree) error {
	sw := NewWriter(w)
	if err := sw.WriteTree(t); err != nil {
		return err
	}
	return sw.Close()
}
