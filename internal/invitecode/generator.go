// Package invitecode generates short join codes for invite links.
//
// Codes are meant to be shared out of band, read aloud or copied by hand,
// so the alphabet omits characters that are easy to confuse (0/O, 1/I/l).
// Generation is pure and stateless; global uniqueness is enforced by the
// unique index on invite_links.code, with the caller regenerating on the
// rare collision.
package invitecode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphabet is the set of characters codes are drawn from. 31 symbols at the
// default length of 10 gives a keyspace of 31^10 (~8*10^14), large enough
// that guessing a live code is impractical.
const Alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// DefaultLength is the number of characters in a generated code.
const DefaultLength = 10

// Generate returns a fresh candidate code of DefaultLength.
func Generate() (string, error) {
	return GenerateN(DefaultLength)
}

// GenerateN returns a fresh candidate code of n characters. Each character
// is drawn uniformly from Alphabet using crypto/rand; rand.Int avoids the
// modulo bias a plain byte-mask would introduce.
func GenerateN(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invitecode: length must be positive, got %d", n)
	}

	max := big.NewInt(int64(len(Alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("invitecode: read random: %w", err)
		}
		buf[i] = Alphabet[idx.Int64()]
	}
	return string(buf), nil
}
