package answers

import (
	"testing"

	"github.com/AshishSharma-0610/form-builder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clozeOptions() models.ClozeOptions {
	return *models.NewClozeOptions("The {cat} sat on the {mat}.")
}

func TestClozeSlots(t *testing.T) {
	t.Run("segments mirror the sentence split", func(t *testing.T) {
		slots := NewClozeSlots(clozeOptions())
		assert.Equal(t, []string{"The ", "cat", " sat on the ", "mat", "."}, slots.Segments())
	})

	t.Run("word pool holds the derived blanks", func(t *testing.T) {
		slots := NewClozeSlots(clozeOptions())
		assert.Equal(t, []string{"cat", "mat"}, slots.WordPool())
	})

	t.Run("drops fill the odd slots", func(t *testing.T) {
		slots := NewClozeSlots(clozeOptions())

		require.NoError(t, slots.Drop(1, "cat"))
		require.NoError(t, slots.Drop(3, "dog"))

		assert.Equal(t, models.ClozeAnswer{1: "cat", 3: "dog"}, slots.Answer())
	})

	t.Run("dropping overwrites the previous word", func(t *testing.T) {
		slots := NewClozeSlots(clozeOptions())

		require.NoError(t, slots.Drop(1, "cat"))
		require.NoError(t, slots.Drop(1, "mat"))

		word, ok := slots.Word(1)
		require.True(t, ok)
		assert.Equal(t, "mat", word)
	})

	t.Run("non-slot indices are rejected", func(t *testing.T) {
		slots := NewClozeSlots(clozeOptions())

		assert.Error(t, slots.Drop(0, "cat"))
		assert.Error(t, slots.Drop(2, "cat"))
		assert.Error(t, slots.Drop(4, "cat"))
		assert.Error(t, slots.Drop(7, "cat"))
	})

	t.Run("pool is not consumed by drops", func(t *testing.T) {
		slots := NewClozeSlots(clozeOptions())

		require.NoError(t, slots.Drop(1, "cat"))
		require.NoError(t, slots.Drop(3, "cat"))

		assert.Equal(t, []string{"cat", "mat"}, slots.WordPool())
	})

	t.Run("restore replays a stored answer into its slots", func(t *testing.T) {
		stored := models.ClozeAnswer{1: "cat", 3: "dog"}

		slots := NewClozeSlots(clozeOptions())
		require.NoError(t, slots.Restore(stored))

		assert.Equal(t, stored, slots.Answer())
	})

	t.Run("restore rejects an answer keyed off-slot", func(t *testing.T) {
		slots := NewClozeSlots(clozeOptions())
		assert.Error(t, slots.Restore(models.ClozeAnswer{2: "cat"}))
	})
}
