package amphora

import (
	"fmt"

	"go.uber.org/zap"
)

// DeletePrm groups the parameters of Delete operation.
type DeletePrm struct {
	// Alias of the stored file.
	Alias string
}

// DeleteRes groups the resulting values of Delete operation.
type DeleteRes struct {
	// FreedBlocks is the number of data blocks returned to the free
	// pool.
	FreedBlocks uint64
}

// Delete removes the stored file and returns its data blocks to the
// free pool. Block contents are not wiped.
//
// The chain walk is best-effort: if a pointer leaves the data region,
// the walk stops, the blocks collected so far are freed and the
// operation still succeeds.
//
// Returns ErrFileNotFound if the alias is not stored.
func (a *Amphora) Delete(prm DeletePrm) (DeleteRes, error) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	pos := findNode(a.table, prm.Alias)
	if pos < 0 {
		return DeleteRes{}, fmt.Errorf("%w: %q", ErrFileNotFound, prm.Alias)
	}

	node := &a.table[pos]

	indices, clean := a.collectChain(node.FirstBlock)
	if !clean {
		a.log.Warn("incomplete block chain, freeing collected blocks only",
			zap.String("alias", prm.Alias),
			zap.Int("blocks", len(indices)),
		)
	}

	for _, index := range indices {
		a.bitmap.markFree(index)
	}

	a.decSize(node.Size)
	node.clear()

	if err := a.writeMeta(); err != nil {
		return DeleteRes{}, err
	}

	a.log.Info("file deleted",
		zap.String("alias", prm.Alias),
		zap.Int("freed blocks", len(indices)),
	)

	if a.metrics != nil {
		a.metrics.IncDeletes()
	}
	a.updateUsageMetrics()

	return DeleteRes{
		FreedBlocks: uint64(len(indices)),
	}, nil
}
