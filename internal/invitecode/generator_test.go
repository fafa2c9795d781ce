package invitecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLength(t *testing.T) {
	code, err := Generate()
	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)
}

func TestGenerateNLength(t *testing.T) {
	for _, n := range []int{1, 8, 16, 64} {
		code, err := GenerateN(n)
		require.NoError(t, err)
		assert.Len(t, code, n)
	}
}

func TestGenerateNInvalidLength(t *testing.T) {
	_, err := GenerateN(0)
	assert.Error(t, err)

	_, err = GenerateN(-3)
	assert.Error(t, err)
}

func TestGenerateUsesAlphabetOnly(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := Generate()
		require.NoError(t, err)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(Alphabet, c), "unexpected character %q in code %q", c, code)
		}
	}
}

func TestAlphabetOmitsAmbiguousCharacters(t *testing.T) {
	for _, c := range "0O1Il" {
		assert.False(t, strings.ContainsRune(Alphabet, c), "alphabet must not contain %q", c)
	}
}

func TestGenerateDistinctness(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		code, err := Generate()
		require.NoError(t, err)
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %q after %d generations", code, i)
		seen[code] = struct{}{}
	}
}
