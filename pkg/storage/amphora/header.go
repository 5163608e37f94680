package amphora

import (
	"encoding/binary"
)

// currentVersion is the supported version of the container format.
const currentVersion = 1

// headerSize is the on-disk size of the container header in bytes:
// a 32-bit version followed by seven 64-bit layout fields.
const headerSize = 4 + 7*8

// Header is the fixed-size descriptor placed at the very beginning
// of the container file. It pins the geometry the container was
// formatted with; all other offsets are derived from it.
//
// All integers of the container format are little-endian.
type Header struct {
	// Version of the container format.
	Version uint32

	// TotalSize is the size of the whole container file in bytes.
	TotalSize uint64

	// BlockSize is the full size of a single data block in bytes,
	// the trailing chain pointer included.
	BlockSize uint64

	// TableOffset is the byte offset of the filenode table region.
	TableOffset uint64

	// TableCapacity is the number of filenode records in the table.
	TableCapacity uint64

	// BitmapOffset is the byte offset of the block bitmap region.
	BitmapOffset uint64

	// DataOffset is the byte offset of the data block region.
	DataOffset uint64

	// BlockCount is the number of addressable data blocks.
	BlockCount uint64
}

// UsableBlockSize returns the content capacity of a single data
// block, the trailing chain pointer excluded.
func (h Header) UsableBlockSize() uint64 {
	return h.BlockSize - pointerSize
}

func (h Header) marshal() []byte {
	buf := make([]byte, headerSize)

	binary.LittleEndian.PutUint32(buf[0:], h.Version)
	binary.LittleEndian.PutUint64(buf[4:], h.TotalSize)
	binary.LittleEndian.PutUint64(buf[12:], h.BlockSize)
	binary.LittleEndian.PutUint64(buf[20:], h.TableOffset)
	binary.LittleEndian.PutUint64(buf[28:], h.TableCapacity)
	binary.LittleEndian.PutUint64(buf[36:], h.BitmapOffset)
	binary.LittleEndian.PutUint64(buf[44:], h.DataOffset)
	binary.LittleEndian.PutUint64(buf[52:], h.BlockCount)

	return buf
}

func unmarshalHeader(buf []byte) Header {
	return Header{
		Version:       binary.LittleEndian.Uint32(buf[0:]),
		TotalSize:     binary.LittleEndian.Uint64(buf[4:]),
		BlockSize:     binary.LittleEndian.Uint64(buf[12:]),
		TableOffset:   binary.LittleEndian.Uint64(buf[20:]),
		TableCapacity: binary.LittleEndian.Uint64(buf[28:]),
		BitmapOffset:  binary.LittleEndian.Uint64(buf[36:]),
		DataOffset:    binary.LittleEndian.Uint64(buf[44:]),
		BlockCount:    binary.LittleEndian.Uint64(buf[52:]),
	}
}
