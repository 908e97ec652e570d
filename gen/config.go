package gen

import "math/rand"

// Namer assigns a name to the vertex being created at the given depth
// (1 = seed's direct children). Implementations must never return the
// same name twice within a single RandomTree call.
type Namer func(depth int) string

// config holds RandomTree's resolved parameters, built by applying
// Option values over defaults, functional-options style.
type config struct {
	maxDepth    int
	maxChildren int
	rng         *rand.Rand
	namer       Namer
}

// Option customizes RandomTree's behavior, functional-options style.
type Option func(*config)

// WithMaxDepth sets the maximum distance from the seed at which
// vertices are generated. Default is 4.
func WithMaxDepth(d int) Option {
	return func(c *config) { c.maxDepth = d }
}

// WithMaxChildren sets the maximum number of children any vertex may be
// given; the actual count per vertex is drawn uniformly from [1,
// maxChildren]. Default is 4, matching graphgen.py.
func WithMaxChildren(n int) Option {
	return func(c *config) { c.maxChildren = n }
}

// WithRand injects an explicit RNG. If rng is nil, this option is a
// no-op.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with seed and installs it,
// for reproducible generation.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithNamer overrides the default vertex namer.
func WithNamer(n Namer) Option {
	return func(c *config) {
		if n != nil {
			c.namer = n
		}
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		maxDepth:    4,
		maxChildren: 4,
		namer:       DefaultNamer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
