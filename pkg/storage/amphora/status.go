package amphora

// Status groups usage information of an opened container.
type Status struct {
	// Path to the backing file.
	Path string

	// Header is the active layout descriptor.
	Header Header

	// Files is the number of stored files.
	Files uint64

	// FreeBlocks is the number of unoccupied data blocks.
	FreeBlocks uint64

	// StoredBytes is the total content length of all stored files.
	StoredBytes uint64

	// Capacity is the total content capacity of the data region in
	// bytes.
	Capacity uint64
}

// Status returns the current usage information of the container.
func (a *Amphora) Status() Status {
	a.mtx.RLock()
	defer a.mtx.RUnlock()

	var files uint64

	for i := range a.table {
		if a.table[i].Used {
			files++
		}
	}

	return Status{
		Path:        a.path,
		Header:      a.hdr,
		Files:       files,
		FreeBlocks:  a.bitmap.freeCount(),
		StoredBytes: a.filled.Load(),
		Capacity:    a.hdr.BlockCount * a.hdr.UsableBlockSize(),
	}
}
