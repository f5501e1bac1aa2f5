package vector

const (
	// DefaultInitialCapacity is the number of slots allocated by Init.
	DefaultInitialCapacity = 100
	// DefaultGrowthFactor is the capacity multiplier applied when a vector is full.
	DefaultGrowthFactor = 2
)

// Config defines allocation settings for a Vector.
type Config struct {
	// InitialCapacity is the slot count allocated by Init. Zero is allowed;
	// the first growth then allocates a single slot.
	InitialCapacity int
	// GrowthFactor multiplies the capacity on growth. Always >= 2.
	GrowthFactor int
	// MaxCapacity bounds the capacity. Zero means unlimited.
	MaxCapacity int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the doubling policy with an initial capacity of 100.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		GrowthFactor:    DefaultGrowthFactor,
	}
}

// WithInitialCapacity sets the number of slots allocated by Init.
func WithInitialCapacity(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.InitialCapacity = n
		}
	}
}

// WithGrowthFactor sets the capacity multiplier used on growth.
func WithGrowthFactor(factor int) Option {
	return func(cfg *Config) {
		if factor >= 2 {
			cfg.GrowthFactor = factor
		}
	}
}

// WithMaxCapacity limits how far a vector may grow. Growth past the limit
// fails with ErrAllocation.
func WithMaxCapacity(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxCapacity = n
		}
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

func (c Config) validate() error {
	if c.MaxCapacity > 0 && c.InitialCapacity > c.MaxCapacity {
		return ErrInvalidConfig
	}
	return nil
}
