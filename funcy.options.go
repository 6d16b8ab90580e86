package funcy

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Renderer.
type Option func(*rendererConfig)

// rendererConfig holds the construction-time configuration of a Renderer.
type rendererConfig struct {
	logger   *zap.Logger
	handlers Handlers
}

// defaultRendererConfig returns the default renderer configuration.
func defaultRendererConfig() *rendererConfig {
	return &rendererConfig{
		logger:   nil,
		handlers: nil,
	}
}

// WithLogger sets the logger for the renderer.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *rendererConfig) {
		c.logger = logger
	}
}

// WithHandlers registers handlers at construction. Later options win on
// name collisions.
func WithHandlers(hs Handlers) Option {
	return func(c *rendererConfig) {
		if c.handlers == nil {
			c.handlers = make(Handlers, len(hs))
		}
		for name, h := range hs {
			c.handlers[name] = h
		}
	}
}
