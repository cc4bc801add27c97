package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceScan(t *testing.T) {
	var ss StringSlice
	require.NoError(t, ss.Scan([]byte(`["WiFi","Projector"]`)))
	assert.Equal(t, StringSlice{"WiFi", "Projector"}, ss)

	require.NoError(t, ss.Scan(nil))
	assert.Nil(t, ss)

	assert.Error(t, ss.Scan(42))
}

func TestStringSliceMarshalNilAsEmptyArray(t *testing.T) {
	var ss StringSlice
	data, err := ss.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
