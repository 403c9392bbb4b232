package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode_BrandWithoutParent(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	node, err := NewNode("brand-1", LevelBrand, "", "Apple", "", 1, now)

	require.NoError(t, err)
	assert.Equal(t, LevelBrand, node.Level())
	assert.Empty(t, node.ParentID())
}

func TestNewNode_BrandWithParentRejected(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewNode("brand-1", LevelBrand, "other", "Apple", "", 1, now)

	assert.ErrorIs(t, err, ErrBrandHasParent)
	assert.True(t, IsValidation(err))
}

func TestNewNode_LowerLevelsRequireParent(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, level := range []Level{LevelType, LevelSeries, LevelModel} {
		_, err := NewNode("node-1", level, "", "iPhone", "", 1, now)
		assert.ErrorIs(t, err, ErrMissingParent, "level %s", level)
	}
}

func TestNewNode_EmptyName(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewNode("node-1", LevelSeries, "type-1", "", "", 1, now)

	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestParseLevel(t *testing.T) {
	for _, valid := range []string{"brand", "type", "series", "model"} {
		level, err := ParseLevel(valid)
		require.NoError(t, err)
		assert.Equal(t, Level(valid), level)
	}

	_, err := ParseLevel("submodel")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLevelParent(t *testing.T) {
	parent, ok := LevelModel.Parent()
	require.True(t, ok)
	assert.Equal(t, LevelSeries, parent)

	_, ok = LevelBrand.Parent()
	assert.False(t, ok)
}
