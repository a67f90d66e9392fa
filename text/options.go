package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	shaper     Shaper
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,
	}
}

// WithCacheLimit sets the maximum number of cached glyph outlines.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithShaper pins the shaper used to measure and position text for this
// source. Without it the global shaper (see SetShaper) is used.
func WithShaper(s Shaper) SourceOption {
	return func(c *sourceConfig) {
		c.shaper = s
	}
}
