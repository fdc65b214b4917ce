package feature

type config struct {
	numFrames int
	dim       int
}

// Option mutates the shape New allocates.
type Option func(*config)

func defaultConfig() config {
	return config{numFrames: 1, dim: 1}
}

// WithNumFrames sets the window capacity in frames.
func WithNumFrames(n int) Option {
	return func(cfg *config) {
		cfg.numFrames = n
	}
}

// WithDim sets the number of values per frame.
func WithDim(dim int) Option {
	return func(cfg *config) {
		cfg.dim = dim
	}
}
