package utils

import "github.com/google/uuid"

// UUIDGenerator hands out time-ordered (v7) identifiers for request tracing.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random v4 UUID if the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// Propagate keeps a caller-supplied trace ID when it is a well-formed UUID
// and generates a fresh one otherwise, so arbitrary header text never ends
// up in the logs.
func (g *UUIDGenerator) Propagate(candidate string) string {
	if id, err := uuid.Parse(candidate); err == nil {
		return id.String()
	}
	return g.Generate()
}
