package amphora

import (
	"fmt"
)

// InspectPrm groups the parameters of Inspect operation.
type InspectPrm struct {
	// Alias of the stored file.
	Alias string
}

// InspectRes groups the resulting values of Inspect operation.
type InspectRes struct {
	// Slot is the filenode table index the file occupies.
	Slot uint64

	// Node is a copy of the stored filenode record.
	Node FileNode

	// Chain lists the indices of the file data blocks in chain order.
	Chain []uint64

	// Complete reports whether Chain covers the whole block chain. It
	// is false when the walk stopped at a pointer leaving the data
	// region.
	Complete bool
}

// Slots returns a copy of the whole filenode table, unused records
// included.
func (a *Amphora) Slots() []FileNode {
	a.mtx.RLock()
	defer a.mtx.RUnlock()

	res := make([]FileNode, len(a.table))
	copy(res, a.table)

	return res
}

// Inspect reports placement details of the stored file.
//
// Returns ErrFileNotFound if the alias is not stored.
func (a *Amphora) Inspect(prm InspectPrm) (InspectRes, error) {
	a.mtx.RLock()
	defer a.mtx.RUnlock()

	pos := findNode(a.table, prm.Alias)
	if pos < 0 {
		return InspectRes{}, fmt.Errorf("%w: %q", ErrFileNotFound, prm.Alias)
	}

	node := a.table[pos]
	chain, complete := a.collectChain(node.FirstBlock)

	return InspectRes{
		Slot:     uint64(pos),
		Node:     node,
		Chain:    chain,
		Complete: complete,
	}, nil
}
