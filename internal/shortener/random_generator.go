package shortener

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphanumeric characters: 0-9, a-z, A-Z (case sensitive)
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomGenerator generates unpredictable short codes from crypto/rand.
// With 8 characters over a 62-symbol alphabet the code space is 62^8
// (~218 trillion); collisions are left to the store's uniqueness
// constraint rather than pre-checked.
type RandomGenerator struct {
	length int
}

// NewRandomGenerator creates a new random generator producing codes of
// the given length
func NewRandomGenerator(length int) *RandomGenerator {
	return &RandomGenerator{
		length: length,
	}
}

// GenerateShortCode generates a random alphanumeric short code
func (g *RandomGenerator) GenerateShortCode(ctx context.Context, longURL string) (string, error) {
	code := make([]byte, g.length)
	max := big.NewInt(int64(len(alphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}

// Type returns the generator type
func (g *RandomGenerator) Type() string {
	return TypeRandom
}

// Close performs cleanup
func (g *RandomGenerator) Close() error {
	return nil
}

// Ensure RandomGenerator implements Generator interface
var _ Generator = (*RandomGenerator)(nil)
