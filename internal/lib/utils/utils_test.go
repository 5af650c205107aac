package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	assert.Nil(t, First([]int{}))
	assert.Nil(t, First[string](nil))

	values := []string{"a", "b"}
	got := First(values)
	require.NotNil(t, got)
	assert.Equal(t, "a", *got)

	// The pointer aliases the slice element, not a copy.
	values[0] = "changed"
	assert.Equal(t, "changed", *got)
}
