// Package api provides factory implementations for dependency injection
package api

import (
	"github.com/netfossil/nrbf/pkg/storage"
)

// DefaultStreamStoreFactory is the default implementation of StreamStoreFactory
type DefaultStreamStoreFactory struct{}

// NewStreamStoreFactory creates a new stream store factory
func NewStreamStoreFactory() StreamStoreFactory {
	return &DefaultStreamStoreFactory{}
}

// CreateStreamStore opens the pebble-backed store
func (f *DefaultStreamStoreFactory) CreateStreamStore(dataDir string, maxBytes int64) (IStreamStore, error) {
	return storage.NewStreamStore(dataDir, maxBytes)
}

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(streams IStreamStore, config ServerConfig) error {
	return StartServer(streams, config)
}
