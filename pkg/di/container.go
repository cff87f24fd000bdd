// Package di provides dependency injection container
package di

import (
	"github.com/netfossil/nrbf/pkg/api" //nolint:depguard
)

// Container holds all the dependencies for the application
type Container struct {
	streamStoreFactory api.StreamStoreFactory
	serverFactory      api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		streamStoreFactory: api.NewStreamStoreFactory(),
		serverFactory:      api.NewServerFactory(),
	}
}

// GetStreamStoreFactory returns the stream store factory
func (c *Container) GetStreamStoreFactory() api.StreamStoreFactory {
	return c.streamStoreFactory
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetStreamStoreFactory allows overriding the stream store factory (for testing)
func (c *Container) SetStreamStoreFactory(factory api.StreamStoreFactory) {
	c.streamStoreFactory = factory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}
