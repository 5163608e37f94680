package amphora

// MetricRegister tracks usage and operation statistics of the
// container.
type MetricRegister interface {
	// SetUsage records the current number of stored files, free data
	// blocks and the total content length in bytes.
	SetUsage(files, freeBlocks, storedBytes uint64)

	// IncUploads increments the counter of successful uploads.
	IncUploads()

	// IncDownloads increments the counter of successful downloads.
	IncDownloads()

	// IncDeletes increments the counter of successful deletions.
	IncDeletes()
}

// updateUsageMetrics pushes the current usage to the metric register
// if there is one. Must be called with the container lock held.
func (a *Amphora) updateUsageMetrics() {
	if a.metrics == nil {
		return
	}

	var files uint64

	for i := range a.table {
		if a.table[i].Used {
			files++
		}
	}

	a.metrics.SetUsage(files, a.bitmap.freeCount(), a.filled.Load())
}
