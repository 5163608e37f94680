package amphora

import (
	"encoding/binary"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// pointerSize is the width of the chain pointer trailing every data
// block.
const pointerSize = 8

// NoBlock is the reserved block pointer value marking the end of a
// block chain. A filenode whose FirstBlock is NoBlock owns no blocks.
const NoBlock = ^uint64(0)

func (a *Amphora) blockOffset(index uint64) int64 {
	return int64(a.hdr.DataOffset + index*a.hdr.BlockSize)
}

func (a *Amphora) readBlock(index uint64, buf []byte) error {
	_, err := a.file.ReadAt(buf, a.blockOffset(index))
	if err != nil {
		return fmt.Errorf("could not read block %d: %w", index, err)
	}

	return nil
}

func (a *Amphora) writeBlock(index uint64, buf []byte) error {
	_, err := a.file.WriteAt(buf, a.blockOffset(index))
	if err != nil {
		return fmt.Errorf("could not write block %d: %w", index, err)
	}

	return nil
}

func nextPointer(block []byte) uint64 {
	return binary.LittleEndian.Uint64(block[len(block)-pointerSize:])
}

func setNextPointer(block []byte, next uint64) {
	binary.LittleEndian.PutUint64(block[len(block)-pointerSize:], next)
}

// writeChain fills the given blocks with content read from src and
// links them into a chain in slice order. The tail of the last block
// is zeroed and its pointer is set to NoBlock.
//
// The bitmap and the filenode table are not touched.
func (a *Amphora) writeChain(blocks []uint64, src io.Reader, size uint64) error {
	buf := make([]byte, a.hdr.BlockSize)
	usable := a.hdr.UsableBlockSize()
	remaining := size

	for i, index := range blocks {
		chunk := usable
		if remaining < chunk {
			chunk = remaining
		}

		if _, err := io.ReadFull(src, buf[:chunk]); err != nil {
			return fmt.Errorf("could not read content for block %d: %w", index, err)
		}

		for j := chunk; j < usable; j++ {
			buf[j] = 0
		}

		next := NoBlock
		if i+1 < len(blocks) {
			next = blocks[i+1]
		}
		setNextPointer(buf, next)

		if err := a.writeBlock(index, buf); err != nil {
			return err
		}

		remaining -= chunk
	}

	return nil
}

// collectChain walks the chain starting at first and returns the
// visited block indices in chain order.
//
// The walk is best-effort: a pointer leaving the data region, an
// unreadable block or a chain longer than the whole data region stops
// it. The second value is false if the walk stopped early.
func (a *Amphora) collectChain(first uint64) ([]uint64, bool) {
	var indices []uint64

	buf := make([]byte, a.hdr.BlockSize)
	cur := first

	for cur != NoBlock {
		if cur >= a.hdr.BlockCount {
			a.log.Warn("block pointer out of data region, chain walk stopped",
				zap.Uint64("block", cur),
			)

			return indices, false
		}

		if uint64(len(indices)) >= a.hdr.BlockCount {
			a.log.Warn("block chain does not terminate, chain walk stopped")

			return indices, false
		}

		if err := a.readBlock(cur, buf); err != nil {
			a.log.Warn("could not read chained block, chain walk stopped",
				zap.Uint64("block", cur),
				zap.Error(err),
			)

			return indices, false
		}

		indices = append(indices, cur)
		cur = nextPointer(buf)
	}

	return indices, true
}
