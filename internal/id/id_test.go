package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	generated, err := Generate(PrefixClient)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(generated, "cli-"))
	assert.Greater(t, len(generated), len("cli-"))
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		generated, err := Generate(PrefixAppointment)
		require.NoError(t, err)
		assert.False(t, seen[generated], "duplicate id %s", generated)
		seen[generated] = true
	}
}

func TestMustGenerate(t *testing.T) {
	assert.True(t, strings.HasPrefix(MustGenerate(PrefixService), "srv-"))
}
