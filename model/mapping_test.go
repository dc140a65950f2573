package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rgex/model"
)

// TestBuildSubstitutions resolves renames and matrix elements.
func TestBuildSubstitutions(t *testing.T) {
	m := model.New("toy")
	require.NoError(t, m.AddCoupling("g1"))
	require.NoError(t, m.AddCoupling("Yu", 3, 3))
	m.Mapping = map[string]string{
		"g1":       "gp",
		"Yu[2,2]":  "yt",
		"Yu[1, 1]": "yc",
		"Yu[0,0]":  "0",
	}

	subs, skipped := m.BuildSubstitutions(nil)
	assert.Empty(t, skipped)
	assert.Equal(t, "gp", subs.Name("g1"))
	assert.Equal(t, "lam", subs.Name("lam"))

	table, ok := subs.Elements["Yu"]
	require.True(t, ok)
	assert.Equal(t, []int{3, 3}, table.Shape)
	v, ok := table.At(2, 2)
	assert.True(t, ok)
	assert.Equal(t, "yt", v)
	v, _ = table.At(1, 1)
	assert.Equal(t, "yc", v)
	_, ok = table.At(0, 0)
	assert.False(t, ok, "zero entries stay implicit")
}

// TestBuildSubstitutions_UnknownStructure logs at error level and continues.
func TestBuildSubstitutions_UnknownStructure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	m := model.New("toy")
	require.NoError(t, m.AddCoupling("Yu", 3, 3))
	m.Mapping = map[string]string{
		"Yd[0,0]": "yd",
		"Yu[0,5]": "oops",
		"Yu[x]":   "bad",
		"Yu[0,0]": "yu",
	}

	subs, skipped := m.BuildSubstitutions(zap.New(core))
	require.Len(t, skipped, 3)
	assert.ErrorIs(t, skipped[0], model.ErrUnknownCouplingStructure)
	assert.ErrorIs(t, skipped[1], model.ErrBadMappingKey)
	assert.ErrorIs(t, skipped[2], model.ErrBadMappingKey)
	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, "coupling matrix is unknown", logs.All()[0].Message)

	v, ok := subs.Elements["Yu"].At(0, 0)
	assert.True(t, ok)
	assert.Equal(t, "yu", v)
}
