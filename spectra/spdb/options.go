package spdb

import "log/slog"

// Config controls how a Database is loaded.
type Config struct {
	// Logger receives one debug record per loaded file and a warning when
	// an optional dataset is unavailable.
	Logger *slog.Logger
	// Capbone enables loading the optional Capbone archive.
	Capbone bool
	// StrictShapes enforces the expected curve count of every file.
	StrictShapes bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration used by Load without options.
func DefaultConfig() Config {
	return Config{
		Logger:       slog.New(slog.DiscardHandler),
		Capbone:      true,
		StrictShapes: true,
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// WithCapbone enables or disables loading the Capbone archive. When
// disabled the archive is recorded as unavailable with ErrSkipped.
func WithCapbone(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Capbone = enabled
	}
}

// WithStrictShapes enables or disables curve count checks.
func WithStrictShapes(strict bool) Option {
	return func(cfg *Config) {
		cfg.StrictShapes = strict
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
