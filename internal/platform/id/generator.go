package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const idByteLength = 16

// Generator mints the opaque ids handed out to players, teams, albums and
// songs. Ids are hex strings with no embedded ordering.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator backs Generator with crypto/rand.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, idByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
