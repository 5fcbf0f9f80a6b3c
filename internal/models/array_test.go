package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayValue(t *testing.T) {
	empty, err := StringArray{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)

	v, err := StringArray{"a", "b"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(v.([]byte)))
}

func TestStringArrayScan(t *testing.T) {
	var fromBytes StringArray
	require.NoError(t, fromBytes.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringArray{"a", "b"}, fromBytes)

	var fromString StringArray
	require.NoError(t, fromString.Scan(`["c"]`))
	assert.Equal(t, StringArray{"c"}, fromString)

	var fromNil StringArray
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)
}

func TestStringArrayContains(t *testing.T) {
	a := StringArray{"a", "b"}
	assert.True(t, a.Contains("a"))
	assert.False(t, a.Contains("c"))
	assert.False(t, StringArray{}.Contains("a"))
}
