package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 4.85, RoundTo(4.8543689, 2))
	assert.Equal(t, -4.85, RoundTo(-4.8543689, 2))
	assert.Equal(t, 4.86, RoundTo(4.856, 2))
	assert.Equal(t, 0.0, RoundTo(0, 2))
}

func TestPctOf(t *testing.T) {
	got := PctOf(15, 100)
	require.NotNil(t, got)
	assert.Equal(t, 15.0, *got)

	assert.Nil(t, PctOf(15, 0))
}

func TestPctChangeFrom(t *testing.T) {
	got := PctChangeFrom(ToPointer(100.0), 110)
	require.NotNil(t, got)
	assert.Equal(t, 10.0, *got)

	assert.Nil(t, PctChangeFrom(nil, 110))
	assert.Nil(t, PctChangeFrom(ToPointer(0.0), 110))
}
