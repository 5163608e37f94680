package amphora

import (
	"io/fs"
	"os"
	"sync"

	"github.com/amphora-fs/amphora/pkg/util/logger"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Default container geometry.
const (
	// DefaultContainerSize is the default size of the container file.
	DefaultContainerSize = 1 << 20 // 1MB

	// DefaultBlockSize is the default full size of a data block.
	DefaultBlockSize = 4 << 10 // 4KB

	// DefaultTableCapacity is the default number of filenode slots.
	DefaultTableCapacity = 100
)

// Amphora is a container of small named files laid out inside a
// single fixed-size file.
type Amphora struct {
	*cfg

	mtx sync.RWMutex

	filled *atomic.Uint64

	hdr    Header
	table  []FileNode
	bitmap bitmap

	file *os.File
}

// Option is an option of Amphora's constructor.
type Option func(*cfg)

type cfg struct {
	path string

	perm fs.FileMode

	containerSize uint64

	blockSize uint64

	tableCapacity uint64

	log *logger.Logger

	metrics MetricRegister
}

func defaultCfg() *cfg {
	return &cfg{
		perm:          0o640,
		containerSize: DefaultContainerSize,
		blockSize:     DefaultBlockSize,
		tableCapacity: DefaultTableCapacity,
		log:           zap.L(),
	}
}

// New creates and returns new Amphora instance.
func New(opts ...Option) *Amphora {
	c := defaultCfg()

	for i := range opts {
		opts[i](c)
	}

	return &Amphora{
		cfg:    c,
		filled: atomic.NewUint64(0),
	}
}

// WithPath returns option to set system path to the container file.
func WithPath(path string) Option {
	return func(c *cfg) {
		c.path = path
	}
}

// WithPermissions returns option to specify permission bits of the
// container file.
func WithPermissions(perm fs.FileMode) Option {
	return func(c *cfg) {
		c.perm = perm
	}
}

// WithContainerSize returns option to set the size of the container
// file in bytes.
func WithContainerSize(sz uint64) Option {
	return func(c *cfg) {
		c.containerSize = sz
	}
}

// WithBlockSize returns option to set the full size of a single data
// block in bytes, the trailing chain pointer included.
func WithBlockSize(sz uint64) Option {
	return func(c *cfg) {
		c.blockSize = sz
	}
}

// WithTableCapacity returns option to set the number of filenode
// slots, that is, the maximum number of stored files.
func WithTableCapacity(capacity uint64) Option {
	return func(c *cfg) {
		c.tableCapacity = capacity
	}
}

// WithLogger returns option to specify Amphora's logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *cfg) {
		c.log = l.With(zap.String("component", "Amphora"))
	}
}

// WithMetrics returns option to specify the metric register of the
// container.
func WithMetrics(m MetricRegister) Option {
	return func(c *cfg) {
		c.metrics = m
	}
}
