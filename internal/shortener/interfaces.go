package shortener

import (
	"context"
)

// Generator defines the interface for generating short codes
type Generator interface {
	// GenerateShortCode generates a short code for the given URL
	GenerateShortCode(ctx context.Context, longURL string) (string, error)

	// Type returns the type identifier of the generator
	Type() string

	// Close performs cleanup when the generator is no longer needed
	Close() error
}

// Config holds configuration for shortener generators
type Config struct {
	CodeLength int `json:"code_length"` // Length of generated short codes
}

// GeneratorType constants
const (
	TypeRandom = "random"
)

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		CodeLength: 8,
	}
}
