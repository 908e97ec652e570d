package trust

// Config holds ComputeTrust's recognized configuration options. The
// zero value is not usable on its own — build one with NewConfig,
// which fills in sensible defaults as data via DefaultCapTable rather
// than hardcoding magic numbers into the algorithm.
type Config struct {
	// CapTable maps BFS depth from the seed to vertex capacity.
	// A depth absent from the table defaults to capacity 1.
	CapTable map[int]int64

	// SourceKey is the certification-graph key of the seed peer.
	SourceKey string

	// SupersinkKey is the key assigned to the synthetic sink vertex.
	// Must not collide with an existing vertex of the input graph.
	SupersinkKey string
}

// Option configures a Config, functional-options style.
type Option func(*Config)

// WithCapTable overrides the depth→capacity table.
func WithCapTable(capTable map[int]int64) Option {
	return func(c *Config) { c.CapTable = capTable }
}

// WithSupersinkKey overrides the synthetic sink vertex key.
func WithSupersinkKey(key string) Option {
	return func(c *Config) { c.SupersinkKey = key }
}

// NewConfig builds a Config for seed, applying opts over sensible
// defaults (DefaultCapTable, supersink key "supersink").
func NewConfig(seed string, opts ...Option) Config {
	c := Config{
		CapTable:     DefaultCapTable(),
		SourceKey:    seed,
		SupersinkKey: "supersink",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// DefaultCapTable restores original_source/advogato/tb.py's CAPS table:
// capacity for distance zero equals the number of "good" peers assumed
// in the network, and each successive distance divides by a typical
// outdegree.
func DefaultCapTable() map[int]int64 {
	return map[int]int64{
		0: 500,
		1: 200,
		2: 60,
		3: 30,
		4: 10,
		5: 3,
		6: 1,
	}
}

func capAt(capTable map[int]int64, depth int) int64 {
	if c, ok := capTable[depth]; ok {
		return c
	}
	return 1
}
