package btree

/*
data item in a node.
key uniquely identifies a data item and is used for sorting them.
val contains the actual data.
*/
type item struct {
	key []byte
	val []byte
}
