package amphora

// Entry is a single element of the container listing.
type Entry struct {
	// Alias the file is stored under.
	Alias string

	// Size is the content length in bytes.
	Size uint64
}

// List returns the stored files in filenode slot order. The listing
// itself does not change the container state.
func (a *Amphora) List() []Entry {
	a.mtx.RLock()
	defer a.mtx.RUnlock()

	res := make([]Entry, 0, len(a.table))

	for i := range a.table {
		if a.table[i].Used {
			res = append(res, Entry{
				Alias: a.table[i].AliasString(),
				Size:  a.table[i].Size,
			})
		}
	}

	return res
}
