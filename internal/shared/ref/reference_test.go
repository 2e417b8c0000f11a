package ref

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Length(t *testing.T) {
	assert.Len(t, Generate(8), 8)
	assert.Len(t, Generate(0), DepositLength)
	assert.Len(t, Generate(-3), DepositLength)
}

func TestGenerate_Alphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := Generate(DepositLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q in %q", c, code)
		}
	}
}

func TestGenerate_NotConstant(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		seen[Generate(DepositLength)] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
