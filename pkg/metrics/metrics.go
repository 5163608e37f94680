package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "amphora"

const containerSubsystem = "container"

// ContainerMetrics exposes usage and operation statistics of a
// container via the prometheus registry.
type ContainerMetrics struct {
	files       prometheus.Gauge
	freeBlocks  prometheus.Gauge
	storedBytes prometheus.Gauge

	uploads   prometheus.Counter
	downloads prometheus.Counter
	deletes   prometheus.Counter
}

// NewContainerMetrics creates and registers container collectors.
func NewContainerMetrics() *ContainerMetrics {
	m := &ContainerMetrics{
		files: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: containerSubsystem,
			Name:      "files",
			Help:      "Number of files stored in the container",
		}),
		freeBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: containerSubsystem,
			Name:      "free_blocks",
			Help:      "Number of unoccupied data blocks",
		}),
		storedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: containerSubsystem,
			Name:      "stored_bytes",
			Help:      "Total content length of all stored files",
		}),
		uploads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: containerSubsystem,
			Name:      "uploads_total",
			Help:      "Number of successful upload operations",
		}),
		downloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: containerSubsystem,
			Name:      "downloads_total",
			Help:      "Number of successful download operations",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: containerSubsystem,
			Name:      "deletes_total",
			Help:      "Number of successful delete operations",
		}),
	}

	m.register()

	return m
}

func (m *ContainerMetrics) register() {
	prometheus.MustRegister(m.files)
	prometheus.MustRegister(m.freeBlocks)
	prometheus.MustRegister(m.storedBytes)
	prometheus.MustRegister(m.uploads)
	prometheus.MustRegister(m.downloads)
	prometheus.MustRegister(m.deletes)
}

// SetUsage records the current number of stored files, free data
// blocks and stored content bytes.
func (m *ContainerMetrics) SetUsage(files, freeBlocks, storedBytes uint64) {
	m.files.Set(float64(files))
	m.freeBlocks.Set(float64(freeBlocks))
	m.storedBytes.Set(float64(storedBytes))
}

// IncUploads increments the counter of successful uploads.
func (m *ContainerMetrics) IncUploads() {
	m.uploads.Inc()
}

// IncDownloads increments the counter of successful downloads.
func (m *ContainerMetrics) IncDownloads() {
	m.downloads.Inc()
}

// IncDeletes increments the counter of successful deletions.
func (m *ContainerMetrics) IncDeletes() {
	m.deletes.Inc()
}
