// Package api provides interfaces for dependency injection
package api

// StreamStoreFactory creates stream stores
type StreamStoreFactory interface {
	// CreateStreamStore opens the store at dataDir with the given
	// per-stream size cap
	CreateStreamStore(dataDir string, maxBytes int64) (IStreamStore, error)
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer starts the API server with the given configuration
	StartServer(streams IStreamStore, config ServerConfig) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
