package mram

import "log/slog"

// config holds the engine configuration.
type config struct {
	// logger receives debug records for every block program.
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option is a functional option for configuring the Engine.
type Option func(*config)

// WithLogger sets the logger for engine operations.
//
// Example:
//
//	eng := mram.NewEngine(dev, mram.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
