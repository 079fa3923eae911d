// Package shortcode produces the random identifiers used as short codes.
package shortcode

import (
	"crypto/rand"
	"math/big"
)

// Alphabet is the set of symbols a short code is drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the number of symbols in a generated code.
const Length = 6

// Generator generates random short codes.
type Generator struct {
	alphabet string
	length   int
}

// NewGenerator creates a generator of Length-symbol codes over Alphabet.
func NewGenerator() *Generator {
	return &Generator{
		alphabet: Alphabet,
		length:   Length,
	}
}

// Generate draws a new code uniformly at random. Uniqueness is the caller's
// concern: the registry re-rolls on collision.
func (g *Generator) Generate() string {
	b := make([]byte, g.length)
	alphabetLen := big.NewInt(int64(len(g.alphabet)))

	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		b[i] = g.alphabet[n.Int64()]
	}

	return string(b)
}
