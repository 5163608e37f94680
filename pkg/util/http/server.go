package httputil

import (
	"net/http"
	"time"
)

// Prm groups the required parameters of the Server's constructor.
type Prm struct {
	// TCP address for the server to listen on.
	//
	// Must not be empty.
	Address string

	// Handler to serve requests with.
	//
	// Must not be nil.
	Handler http.Handler
}

// Server is a wrapper over http.Server that couples the listening
// routine with a graceful shutdown allowance.
//
// For correct operation, Server must be created using the constructor
// (New). After successful creation, Server is immediately ready to
// work through API.
type Server struct {
	shutdownTimeout time.Duration

	srv *http.Server
}

// Option is an option of the Server's constructor.
type Option func(*cfg)

type cfg struct {
	shutdownTimeout time.Duration
}

func defaultCfg() *cfg {
	return &cfg{
		shutdownTimeout: 15 * time.Second,
	}
}

// WithShutdownTimeout returns option to set the maximum duration
// Shutdown waits for active connections to finish.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *cfg) {
		c.shutdownTimeout = d
	}
}

// New creates a new instance of the Server.
//
// Panics if the address is empty, the handler is nil or the
// configured shutdown timeout is non-positive.
func New(prm Prm, opts ...Option) *Server {
	switch {
	case prm.Address == "":
		panic("empty server address")
	case prm.Handler == nil:
		panic("nil request handler")
	}

	c := defaultCfg()

	for _, o := range opts {
		o(c)
	}

	if c.shutdownTimeout <= 0 {
		panic("non-positive shutdown timeout")
	}

	return &Server{
		shutdownTimeout: c.shutdownTimeout,
		srv: &http.Server{
			Addr:    prm.Address,
			Handler: prm.Handler,
		},
	}
}
