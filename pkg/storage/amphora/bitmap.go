package amphora

// bitmap tracks data block availability in memory. An element set to
// true means the block is free.
type bitmap []bool

func newBitmap(blocks uint64) bitmap {
	b := make(bitmap, blocks)
	for i := range b {
		b[i] = true
	}

	return b
}

// collectFree returns the indices of the first n free blocks in
// ascending order. The second value is false if there are fewer than
// n free blocks.
func (b bitmap) collectFree(n uint64) ([]uint64, bool) {
	res := make([]uint64, 0, n)

	for i := 0; i < len(b) && uint64(len(res)) < n; i++ {
		if b[i] {
			res = append(res, uint64(i))
		}
	}

	return res, uint64(len(res)) == n
}

func (b bitmap) freeCount() (n uint64) {
	for i := range b {
		if b[i] {
			n++
		}
	}

	return
}

func (b bitmap) markUsed(index uint64) {
	b[index] = false
}

func (b bitmap) markFree(index uint64) {
	b[index] = true
}

// marshal packs the bitmap into its on-disk form of the given region
// size. Bits are laid out LSB-first within each byte, a set bit
// meaning the block is used.
func (b bitmap) marshal(size uint64) []byte {
	buf := make([]byte, size)

	for i := range b {
		if !b[i] {
			buf[i/8] |= 1 << (i % 8)
		}
	}

	return buf
}

func unmarshalBitmap(buf []byte, blocks uint64) bitmap {
	b := make(bitmap, blocks)

	for i := uint64(0); i < blocks; i++ {
		b[i] = buf[i/8]&(1<<(i%8)) == 0
	}

	return b
}
