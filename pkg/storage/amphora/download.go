package amphora

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// DownloadPrm groups the parameters of Download operation.
type DownloadPrm struct {
	// Alias of the stored file.
	Alias string

	// To is the destination of the file content.
	To io.Writer
}

// DownloadRes groups the resulting values of Download operation.
type DownloadRes struct {
	// Size is the number of content bytes written to the destination.
	Size uint64
}

// Download streams the content of the stored file to prm.To. Exactly
// the stored number of bytes is written, the padding of the last
// block is never exposed.
//
// Returns ErrFileNotFound if the alias is not stored.
// Returns ErrCorruptChain if the block chain ends or leaves the data
// region before the whole content is read.
func (a *Amphora) Download(prm DownloadPrm) (DownloadRes, error) {
	a.mtx.RLock()
	defer a.mtx.RUnlock()

	pos := findNode(a.table, prm.Alias)
	if pos < 0 {
		return DownloadRes{}, fmt.Errorf("%w: %q", ErrFileNotFound, prm.Alias)
	}

	node := a.table[pos]

	buf := make([]byte, a.hdr.BlockSize)
	usable := a.hdr.UsableBlockSize()

	remaining := node.Size
	cur := node.FirstBlock

	for remaining > 0 {
		if cur == NoBlock {
			return DownloadRes{}, fmt.Errorf("%w: chain of %q ended %d bytes early",
				ErrCorruptChain, prm.Alias, remaining)
		}

		if cur >= a.hdr.BlockCount {
			return DownloadRes{}, fmt.Errorf("%w: pointer %d is out of the data region",
				ErrCorruptChain, cur)
		}

		if err := a.readBlock(cur, buf); err != nil {
			return DownloadRes{}, err
		}

		chunk := usable
		if remaining < chunk {
			chunk = remaining
		}

		if _, err := prm.To.Write(buf[:chunk]); err != nil {
			return DownloadRes{}, fmt.Errorf("could not write content: %w", err)
		}

		remaining -= chunk
		cur = nextPointer(buf)
	}

	a.log.Debug("file downloaded",
		zap.String("alias", prm.Alias),
		zap.Uint64("size", node.Size),
	)

	if a.metrics != nil {
		a.metrics.IncDownloads()
	}

	return DownloadRes{
		Size: node.Size,
	}, nil
}
