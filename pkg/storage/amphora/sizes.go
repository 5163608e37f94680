package amphora

func (a *Amphora) incSize(sz uint64) {
	a.filled.Add(sz)
}

func (a *Amphora) decSize(sz uint64) {
	a.filled.Add(^(sz - 1))
}

// blocksNeeded returns the number of data blocks required to store
// content of the given size.
func (a *Amphora) blocksNeeded(size uint64) uint64 {
	usable := a.hdr.UsableBlockSize()

	return (size + usable - 1) / usable
}
