package persist

import "github.com/google/uuid"

// saveConfig holds Save's resolved parameters, functional-options style
// (matching trust.Config / builder.builderConfig).
type saveConfig struct {
	id uuid.UUID
}

// Option customizes Save's behavior.
type Option func(*saveConfig)

// WithGraphID pins the snapshot's ID instead of generating a fresh one
// via uuid.New() — useful for overwriting a known snapshot.
func WithGraphID(id uuid.UUID) Option {
	return func(c *saveConfig) { c.id = id }
}
