// Package activation generates one-time numeric activation codes.
package activation

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const digits = "0123456789"

// Generator produces numeric codes of a fixed length from a
// cryptographically secure random source.
type Generator struct {
	length int
}

// NewGenerator creates a code generator. Lengths below 1 fall back to 6.
func NewGenerator(length int) *Generator {
	if length < 1 {
		length = 6
	}
	return &Generator{length: length}
}

// Code returns a fresh activation code
func (g *Generator) Code() (string, error) {
	var b strings.Builder
	b.Grow(g.length)

	max := big.NewInt(int64(len(digits)))
	for i := 0; i < g.length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate activation code: %w", err)
		}
		b.WriteByte(digits[n.Int64()])
	}
	return b.String(), nil
}
