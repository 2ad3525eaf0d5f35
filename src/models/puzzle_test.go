package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPuzzle(t *testing.T) {
	t.Run("disclosures are keyed on the numeric strike", func(t *testing.T) {
		puzzle := NewPuzzle([]float64{85, 90})
		puzzle.Disclose(PriceKey{Strike: 85, Side: Call}, 7.25)

		// 85 and 85.0 are the same key; no string formatting involved
		assert.True(t, puzzle.HasPrice(85.0, Call))
		assert.False(t, puzzle.HasPrice(85.0, Put))
	})

	t.Run("tracks disclosures per strike across prices and spreads", func(t *testing.T) {
		puzzle := NewPuzzle([]float64{45, 50, 55})
		puzzle.Disclose(PriceKey{Strike: 45, Side: Put}, 1.00)
		puzzle.DiscloseSpread(SpreadKey{Low: 50, High: 55, Side: Call}, 2.00)

		assert.True(t, puzzle.HasDisclosureAt(45))
		assert.True(t, puzzle.HasDisclosureAt(50))
		assert.True(t, puzzle.HasDisclosureAt(55))

		puzzleWithGap := NewPuzzle([]float64{45, 50, 55})
		puzzleWithGap.Disclose(PriceKey{Strike: 45, Side: Put}, 1.00)
		assert.False(t, puzzleWithGap.HasDisclosureAt(50))
	})

	t.Run("clones are independent", func(t *testing.T) {
		puzzle := NewPuzzle([]float64{45, 50})
		puzzle.Disclose(PriceKey{Strike: 45, Side: Call}, 7.00)

		clone := puzzle.Clone()
		clone.Disclose(PriceKey{Strike: 50, Side: Put}, 3.00)

		assert.Equal(t, 1, puzzle.DisclosureCount())
		assert.Equal(t, 2, clone.DisclosureCount())
	})
}

func TestSameStrike(t *testing.T) {
	t.Run("tolerates float representation noise", func(t *testing.T) {
		assert.True(t, SameStrike(85, 85.0))
		assert.True(t, SameStrike(0.1+0.2, 0.3))
		assert.False(t, SameStrike(85, 90))
	})
}
