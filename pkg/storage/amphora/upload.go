package amphora

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// UploadPrm groups the parameters of Upload operation.
type UploadPrm struct {
	// Alias to store the file under. Must be non-empty and at most
	// MaxAliasLen bytes long.
	Alias string

	// Size is the exact content length in bytes. Must be positive.
	Size uint64

	// From is the source of exactly Size bytes of content.
	From io.Reader
}

// UploadRes groups the resulting values of Upload operation.
type UploadRes struct {
	// FirstBlock is the index of the first data block of the stored
	// chain.
	FirstBlock uint64

	// Blocks is the number of data blocks occupied by the file.
	Blocks uint64
}

// Upload stores a new file in the container under the given alias.
// The content is cut into chained data blocks taken from the
// lowest-indexed free blocks; the filenode table and the block bitmap
// are persisted before return.
//
// Returns ErrInvalidAlias if the alias is empty or too long.
// Returns ErrAliasExists if the alias is already stored.
// Returns ErrEmptyContent if prm.Size is zero.
// Returns ErrNoSpace if there are not enough free data blocks.
// Returns ErrTableFull if there is no free filenode slot.
// On any of these errors the container state is left unchanged.
func (a *Amphora) Upload(prm UploadPrm) (UploadRes, error) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	if len(prm.Alias) == 0 || len(prm.Alias) > MaxAliasLen {
		return UploadRes{}, fmt.Errorf("%w: %d bytes", ErrInvalidAlias, len(prm.Alias))
	}

	if findNode(a.table, prm.Alias) >= 0 {
		return UploadRes{}, fmt.Errorf("%w: %q", ErrAliasExists, prm.Alias)
	}

	if prm.Size == 0 {
		return UploadRes{}, ErrEmptyContent
	}

	needed := a.blocksNeeded(prm.Size)

	blocks, ok := a.bitmap.collectFree(needed)
	if !ok {
		return UploadRes{}, fmt.Errorf("%w: need %d, have %d", ErrNoSpace, needed, a.bitmap.freeCount())
	}

	slot := findFreeSlot(a.table)
	if slot < 0 {
		return UploadRes{}, fmt.Errorf("%w: all %d slots are occupied", ErrTableFull, a.hdr.TableCapacity)
	}

	if err := a.writeChain(blocks, prm.From, prm.Size); err != nil {
		return UploadRes{}, err
	}

	if err := a.file.Sync(); err != nil {
		return UploadRes{}, fmt.Errorf("could not sync data blocks: %w", err)
	}

	for _, index := range blocks {
		a.bitmap.markUsed(index)
	}

	node := &a.table[slot]
	node.setAlias(prm.Alias)
	node.Size = prm.Size
	node.FirstBlock = blocks[0]
	node.Used = true

	a.incSize(prm.Size)

	if err := a.writeMeta(); err != nil {
		return UploadRes{}, err
	}

	a.log.Info("file uploaded",
		zap.String("alias", prm.Alias),
		zap.Uint64("size", prm.Size),
		zap.Uint64("blocks", needed),
		zap.Uint64("first block", blocks[0]),
	)

	if a.metrics != nil {
		a.metrics.IncUploads()
	}
	a.updateUsageMetrics()

	return UploadRes{
		FirstBlock: blocks[0],
		Blocks:     needed,
	}, nil
}
