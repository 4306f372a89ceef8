package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/microwave"
	"github.com/enetx/microwave/input"
)

func TestScripted_ReplaysInOrder(t *testing.T) {
	source := input.NewScripted("2sQ")

	require.False(t, source.Done())

	assert.Equal(t, microwave.EventFrom('2'), source.Poll().Some())
	assert.Equal(t, microwave.EventStart, source.Poll().Some())
	assert.Equal(t, microwave.EventCancel, source.Poll().Some())

	require.True(t, source.Done())
	assert.True(t, source.Poll().IsNone())
}

func TestScripted_SpaceIsEmptyTick(t *testing.T) {
	source := input.NewScripted("1 S")

	assert.Equal(t, microwave.EventFrom('1'), source.Poll().Some())
	assert.True(t, source.Poll().IsNone())
	assert.False(t, source.Done())
	assert.Equal(t, microwave.EventStart, source.Poll().Some())
	assert.True(t, source.Done())
}

func TestScripted_Empty(t *testing.T) {
	source := input.NewScripted("")

	assert.True(t, source.Done())
	assert.True(t, source.Poll().IsNone())
}
