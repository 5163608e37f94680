package amphora

import (
	"encoding/binary"
	"fmt"
)

// MaxAliasLen is the maximum length of a file alias in bytes.
const MaxAliasLen = 255

const (
	// nodeOverhead is the fixed part of a filenode record: the alias
	// length byte, the content size, the first block pointer and the
	// usage flag.
	nodeOverhead = 1 + 8 + 8 + 1

	// nodeSize is the full on-disk size of a single filenode record.
	nodeSize = MaxAliasLen + nodeOverhead

	// countPrefixSize is the width of the record count prefix of the
	// filenode table region.
	countPrefixSize = 8
)

// FileNode is a single record of the filenode table. An unused
// record has Used unset and FirstBlock equal to NoBlock.
type FileNode struct {
	// Alias buffer. Only the first AliasLen bytes are meaningful.
	Alias [MaxAliasLen]byte

	// AliasLen is the meaningful length of Alias.
	AliasLen uint8

	// Size is the content length in bytes.
	Size uint64

	// FirstBlock is the index of the first data block of the content
	// chain, or NoBlock if the record is unused.
	FirstBlock uint64

	// Used reports whether the record describes a stored file.
	Used bool
}

// AliasString returns the alias as a string.
func (n FileNode) AliasString() string {
	return string(n.Alias[:n.AliasLen])
}

func (n *FileNode) setAlias(alias string) {
	n.Alias = [MaxAliasLen]byte{}
	copy(n.Alias[:], alias)
	n.AliasLen = uint8(len(alias))
}

func (n *FileNode) clear() {
	*n = FileNode{FirstBlock: NoBlock}
}

func (n FileNode) marshalTo(buf []byte) {
	copy(buf[:MaxAliasLen], n.Alias[:])
	buf[MaxAliasLen] = n.AliasLen
	binary.LittleEndian.PutUint64(buf[MaxAliasLen+1:], n.Size)
	binary.LittleEndian.PutUint64(buf[MaxAliasLen+9:], n.FirstBlock)

	if n.Used {
		buf[MaxAliasLen+17] = 1
	} else {
		buf[MaxAliasLen+17] = 0
	}
}

func unmarshalNode(buf []byte) (n FileNode) {
	copy(n.Alias[:], buf[:MaxAliasLen])
	n.AliasLen = buf[MaxAliasLen]
	n.Size = binary.LittleEndian.Uint64(buf[MaxAliasLen+1:])
	n.FirstBlock = binary.LittleEndian.Uint64(buf[MaxAliasLen+9:])
	n.Used = buf[MaxAliasLen+17] != 0

	return
}

// marshalTable encodes the whole filenode table with its leading
// record count.
func marshalTable(nodes []FileNode) []byte {
	buf := make([]byte, countPrefixSize+len(nodes)*nodeSize)

	binary.LittleEndian.PutUint64(buf, uint64(len(nodes)))

	for i := range nodes {
		nodes[i].marshalTo(buf[countPrefixSize+i*nodeSize:])
	}

	return buf
}

// unmarshalTable decodes the filenode table region. The stored record
// count must match the capacity the container was formatted with.
func unmarshalTable(buf []byte, capacity uint64) ([]FileNode, error) {
	count := binary.LittleEndian.Uint64(buf)
	if count != capacity {
		return nil, fmt.Errorf("%w: expected %d records, got %d", ErrCorruptTable, capacity, count)
	}

	nodes := make([]FileNode, capacity)
	for i := range nodes {
		nodes[i] = unmarshalNode(buf[countPrefixSize+i*nodeSize:])
	}

	return nodes, nil
}

// findNode returns the index of the used record with the given alias,
// or -1 if there is none.
func findNode(nodes []FileNode, alias string) int {
	for i := range nodes {
		if nodes[i].Used && nodes[i].AliasString() == alias {
			return i
		}
	}

	return -1
}

// findFreeSlot returns the index of the first unused record, or -1 if
// the table is full.
func findFreeSlot(nodes []FileNode) int {
	for i := range nodes {
		if !nodes[i].Used {
			return i
		}
	}

	return -1
}
