package amphora

import (
	"fmt"
)

// tableSpan returns the byte length of the filenode table region:
// the 64-bit record count prefix followed by fixed-width records.
func tableSpan(capacity, maxAliasLen uint64) uint64 {
	return countPrefixSize + capacity*(maxAliasLen+nodeOverhead)
}

// calculateLayout derives the container Header for the given
// geometry. The regions follow each other without gaps: header,
// filenode table, block bitmap, data blocks.
//
// The bitmap region is sized for a first-pass block count estimate
// that ignores the metadata regions, so only the final BlockCount
// bits of it are meaningful.
func calculateLayout(totalSize, blockSize, tableCapacity, maxAliasLen uint64) (Header, error) {
	if blockSize <= pointerSize {
		return Header{}, fmt.Errorf("%w: block size %d does not fit a chain pointer", ErrInvalidLayout, blockSize)
	}

	tableOffset := uint64(headerSize)
	bitmapOffset := tableOffset + tableSpan(tableCapacity, maxAliasLen)

	estimate := totalSize / blockSize
	dataOffset := bitmapOffset + (estimate+7)/8

	if dataOffset >= totalSize {
		return Header{}, fmt.Errorf("%w: no room left for data blocks", ErrInvalidLayout)
	}

	blocks := (totalSize - dataOffset) / blockSize
	if blocks == 0 {
		return Header{}, fmt.Errorf("%w: no room left for data blocks", ErrInvalidLayout)
	}

	return Header{
		Version:       currentVersion,
		TotalSize:     totalSize,
		BlockSize:     blockSize,
		TableOffset:   tableOffset,
		TableCapacity: tableCapacity,
		BitmapOffset:  bitmapOffset,
		DataOffset:    dataOffset,
		BlockCount:    blocks,
	}, nil
}
