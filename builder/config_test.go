// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "b", newBuilderConfig(WithLetterIDs()).idFn(1))
	assert.Equal(t, "3", newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3))
	assert.Equal(t, "n4", newBuilderConfig(WithSymbNumb("n")).idFn(4))
}

// TestRNGOptions verifies reproducibility with WithSeed and pass-through with WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

// TestPartitionPrefix verifies empty prefixes fall back to defaults.
func TestPartitionPrefix(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)

	cfg = newBuilderConfig(WithPartitionPrefix("U", ""))
	assert.Equal(t, "U", cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)
}
