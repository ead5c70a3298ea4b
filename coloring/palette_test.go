package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/coloring"
)

func TestNewPalette(t *testing.T) {
	t.Parallel()

	_, err := coloring.NewPalette()
	assert.ErrorIs(t, err, coloring.ErrEmptyPalette)

	_, err = coloring.NewPalette("red", "blue", "red")
	assert.ErrorIs(t, err, coloring.ErrInvalidPalette)

	_, err = coloring.NewPalette("red", "")
	assert.ErrorIs(t, err, coloring.ErrInvalidPalette)

	src := []string{"red", "blue"}
	p, err := coloring.NewPalette(src...)
	require.NoError(t, err)
	src[0] = "pink"
	assert.Equal(t, coloring.Palette{"red", "blue"}, p, "palette owns its tokens")
	assert.Equal(t, 1, p.Index("blue"))
	assert.Equal(t, -1, p.Index("pink"))
	assert.True(t, p.Contains("red"))
}

func TestAssignment_CloneAndColorsUsed(t *testing.T) {
	t.Parallel()

	var nilA coloring.Assignment
	c := nilA.Clone()
	require.NotNil(t, c)
	c["a"] = "red"

	a := coloring.Assignment{"a": "green", "b": "red", "c": "green"}
	b := a.Clone()
	b["a"] = "blue"
	assert.Equal(t, "green", a["a"])

	assert.Equal(t, []string{"red", "green"}, a.ColorsUsed(coloring.Palette{"red", "blue", "green"}))
	assert.Empty(t, coloring.Assignment{}.ColorsUsed(rbg))
}
