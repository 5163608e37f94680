package amphora

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Open opens the container file at the configured path with the
// configured permissions.
//
// If the file does not exist then it will be created automatically.
func (a *Amphora) Open() error {
	a.log.Debug("opening container file",
		zap.String("path", a.path),
		zap.Stringer("permissions", a.perm),
	)

	var err error

	a.file, err = os.OpenFile(a.path, os.O_RDWR|os.O_CREATE, a.perm)
	if err != nil {
		return fmt.Errorf("could not open container file: %w", err)
	}

	return nil
}

// Init reads the container header and loads the filenode table and
// the block bitmap into memory.
//
// If the header is missing or does not match the configured geometry,
// the container is formatted from scratch and all previously stored
// files are discarded.
func (a *Amphora) Init() error {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	want, err := calculateLayout(a.containerSize, a.blockSize, a.tableCapacity, MaxAliasLen)
	if err != nil {
		return err
	}

	buf := make([]byte, headerSize)

	n, err := a.file.ReadAt(buf, 0)
	if err != nil {
		if errors.Is(err, io.EOF) {
			a.log.Debug("container header missing, formatting",
				zap.Int("header bytes", n),
			)

			return a.format(want)
		}

		return fmt.Errorf("could not read container header: %w", err)
	}

	stored := unmarshalHeader(buf)
	if stored != want {
		a.log.Warn("container header mismatch, formatting",
			zap.Uint32("stored version", stored.Version),
			zap.Uint64("stored total size", stored.TotalSize),
			zap.Uint64("stored block size", stored.BlockSize),
		)

		return a.format(want)
	}

	return a.load(want)
}

// Reset formats the container with the configured geometry and
// discards all stored files.
func (a *Amphora) Reset() error {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	hdr, err := calculateLayout(a.containerSize, a.blockSize, a.tableCapacity, MaxAliasLen)
	if err != nil {
		return err
	}

	return a.format(hdr)
}

// Close syncs and releases the container file.
func (a *Amphora) Close() error {
	a.log.Debug("closing container file",
		zap.String("path", a.path),
	)

	return a.file.Close()
}

// format writes a fresh container of the given layout over the
// backing file. The data region is not touched: nothing references
// its contents after the metadata is reset.
func (a *Amphora) format(hdr Header) error {
	st, err := a.file.Stat()
	if err != nil {
		return fmt.Errorf("could not stat container file: %w", err)
	}

	if uint64(st.Size()) < hdr.TotalSize {
		if err := preallocate(a.file, int64(hdr.TotalSize)); err != nil {
			return fmt.Errorf("could not preallocate container file: %w", err)
		}
	}

	a.hdr = hdr
	a.table = make([]FileNode, hdr.TableCapacity)

	for i := range a.table {
		a.table[i].clear()
	}

	a.bitmap = newBitmap(hdr.BlockCount)
	a.filled.Store(0)

	if _, err := a.file.WriteAt(hdr.marshal(), 0); err != nil {
		return fmt.Errorf("could not write container header: %w", err)
	}

	if err := a.writeMeta(); err != nil {
		return err
	}

	a.log.Info("container formatted",
		zap.Uint64("total size", hdr.TotalSize),
		zap.Uint64("block size", hdr.BlockSize),
		zap.Uint64("blocks", hdr.BlockCount),
		zap.Uint64("slots", hdr.TableCapacity),
	)

	a.updateUsageMetrics()

	return nil
}

// load reads the filenode table and the block bitmap of a container
// whose header already matched the given layout.
func (a *Amphora) load(hdr Header) error {
	a.hdr = hdr

	tbuf := make([]byte, tableSpan(hdr.TableCapacity, MaxAliasLen))

	if _, err := a.file.ReadAt(tbuf, int64(hdr.TableOffset)); err != nil {
		return fmt.Errorf("could not read filenode table: %w", err)
	}

	table, err := unmarshalTable(tbuf, hdr.TableCapacity)
	if err != nil {
		return err
	}

	bbuf := make([]byte, hdr.DataOffset-hdr.BitmapOffset)

	if _, err := a.file.ReadAt(bbuf, int64(hdr.BitmapOffset)); err != nil {
		return fmt.Errorf("could not read block bitmap: %w", err)
	}

	a.table = table
	a.bitmap = unmarshalBitmap(bbuf, hdr.BlockCount)

	var files, stored uint64

	for i := range table {
		if table[i].Used {
			files++
			stored += table[i].Size
		}
	}

	a.filled.Store(stored)

	a.log.Debug("container loaded",
		zap.Uint64("files", files),
		zap.Uint64("free blocks", a.bitmap.freeCount()),
	)

	a.updateUsageMetrics()

	return nil
}

// writeMeta persists the filenode table and the block bitmap and
// flushes the file.
func (a *Amphora) writeMeta() error {
	if _, err := a.file.WriteAt(marshalTable(a.table), int64(a.hdr.TableOffset)); err != nil {
		return fmt.Errorf("could not write filenode table: %w", err)
	}

	bitmapSize := a.hdr.DataOffset - a.hdr.BitmapOffset

	if _, err := a.file.WriteAt(a.bitmap.marshal(bitmapSize), int64(a.hdr.BitmapOffset)); err != nil {
		return fmt.Errorf("could not write block bitmap: %w", err)
	}

	if err := a.file.Sync(); err != nil {
		return fmt.Errorf("could not sync container file: %w", err)
	}

	return nil
}
