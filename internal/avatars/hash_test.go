package avatars

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSeedKnownValues(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"", 0},
		{"a", 97},
		{"d", 100},
		// Wraps past MaxInt32 and comes back as an absolute value.
		{"abc123", 1424436592},
		// Latin-1 and astral input hash as UTF-16 code units, not bytes.
		{"ñ", 241},
		{"😀", 1772899},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, HashSeed(tt.input))
		})
	}
}

func TestHashSeedDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := fmt.Sprintf("user-%d@terreta.example", i)
		first := HashSeed(s)
		assert.Equal(t, first, HashSeed(s))
		assert.GreaterOrEqual(t, first, int64(0))
	}
}
