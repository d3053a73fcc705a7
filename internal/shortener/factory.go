package shortener

import (
	"fmt"
)

// NewGenerator creates a generator from config
func NewGenerator(config Config) (Generator, error) {
	if config.CodeLength <= 0 {
		return nil, fmt.Errorf("code length must be positive, got: %d", config.CodeLength)
	}

	return NewRandomGenerator(config.CodeLength), nil
}
