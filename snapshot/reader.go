package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/snappy"

	"github.com/jalusw/datastructures-algorithms/btree"
)

// Read rebuilds a tree with the given minimum degree from a stream produced
// by Write. Records arrive in ascending key order, so re-inserting them
// reproduces the original key set exactly.
func Read(r io.Reader, degree int) (*btree.Btree, error) {
	tree, err := btree.New(degree)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(snappy.NewReader(r))
	for {
		keyLen, err := binary.ReadUvarint(br)
		if err == io.EOF {
			return tree, nil
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot: reading key length: %w", err)
		}
		valLen, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, fmt.Errorf("snapshot: reading value length: %w", err)
		}

		key := make([]byte, keyLen)
		if _, err := io.ReadFull(br, key); err != nil {
			return nil, fmt.Errorf("snapshot: reading key: %w", err)
		}
		val := make([]byte, valLen)
		if _, err := io.ReadFull(br, val); err != nil {
			return nil, fmt.Errorf("snapshot: reading value: %w", err)
		}
		tree.Insert(key, val)
	}
}
