package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-trainer/src/models"
)

const (
	testStockPrice        = 50.0
	testInterestComponent = 1.0
)

// testLadder is parity-exact under testStockPrice and testInterestComponent.
func testLadder() models.Ladder {
	return models.Ladder{Rows: []models.LadderRow{
		{CallPrice: 7.00, Strike: 45, PutPrice: 1.00},
		{CallPrice: 4.00, Strike: 50, PutPrice: 3.00},
		{CallPrice: 2.00, Strike: 55, PutPrice: 6.00},
	}}
}

func TestSolve(t *testing.T) {
	t.Run("anchor only with no spreads is unsolvable", func(t *testing.T) {
		puzzle := models.NewPuzzle([]float64{45, 50, 55})
		puzzle.Disclose(models.PriceKey{Strike: 50, Side: models.Call}, 4.00)

		assert.False(t, IsSolvable(puzzle, testStockPrice, testInterestComponent))
	})

	t.Run("anchor only is solvable for a single strike", func(t *testing.T) {
		puzzle := models.NewPuzzle([]float64{50})
		puzzle.Disclose(models.PriceKey{Strike: 50, Side: models.Call}, 4.00)

		assert.True(t, IsSolvable(puzzle, testStockPrice, testInterestComponent))
	})

	t.Run("a complete call spread chain reaches every strike on both sides", func(t *testing.T) {
		puzzle := models.NewPuzzle([]float64{45, 50, 55})
		puzzle.Disclose(models.PriceKey{Strike: 45, Side: models.Call}, 7.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 45, High: 50, Side: models.Call}, 3.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 50, High: 55, Side: models.Call}, 2.00)

		assert.True(t, IsSolvable(puzzle, testStockPrice, testInterestComponent))

		derivation := Solve(puzzle, testStockPrice, testInterestComponent)

		assert.Equal(t, map[float64]float64{45: 7.00, 50: 4.00, 55: 2.00}, derivation.KnownCalls)
		assert.Equal(t, map[float64]float64{45: 1.00, 50: 3.00, 55: 6.00}, derivation.KnownPuts)
	})

	t.Run("put spreads propagate in the opposite direction", func(t *testing.T) {
		puzzle := models.NewPuzzle([]float64{45, 50, 55})
		puzzle.Disclose(models.PriceKey{Strike: 55, Side: models.Put}, 6.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 45, High: 50, Side: models.Put}, 2.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 50, High: 55, Side: models.Put}, 3.00)

		derivation := Solve(puzzle, testStockPrice, testInterestComponent)

		assert.Equal(t, map[float64]float64{45: 1.00, 50: 3.00, 55: 6.00}, derivation.KnownPuts)
		assert.Equal(t, map[float64]float64{45: 7.00, 50: 4.00, 55: 2.00}, derivation.KnownCalls)
	})

	t.Run("a disconnected strike stays unknown", func(t *testing.T) {
		puzzle := models.NewPuzzle([]float64{45, 50, 55})
		puzzle.Disclose(models.PriceKey{Strike: 45, Side: models.Call}, 7.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 45, High: 50, Side: models.Call}, 3.00)

		assert.False(t, IsSolvable(puzzle, testStockPrice, testInterestComponent))

		derivation := Solve(puzzle, testStockPrice, testInterestComponent)
		assert.NotContains(t, derivation.KnownCalls, 55.0)
		assert.NotContains(t, derivation.KnownPuts, 55.0)
	})

	t.Run("solving twice yields identical derivations", func(t *testing.T) {
		puzzle := models.NewPuzzle([]float64{45, 50, 55})
		puzzle.Disclose(models.PriceKey{Strike: 50, Side: models.Put}, 3.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 45, High: 50, Side: models.Call}, 3.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 50, High: 55, Side: models.Put}, 3.00)

		first := Solve(puzzle, testStockPrice, testInterestComponent)
		second := Solve(puzzle, testStockPrice, testInterestComponent)

		assert.Equal(t, first.KnownCalls, second.KnownCalls)
		assert.Equal(t, first.KnownPuts, second.KnownPuts)
	})
}

func TestExplain(t *testing.T) {
	t.Run("records every derivation in order", func(t *testing.T) {
		puzzle := models.NewPuzzle([]float64{45, 50, 55})
		puzzle.Disclose(models.PriceKey{Strike: 45, Side: models.Call}, 7.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 45, High: 50, Side: models.Call}, 3.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 50, High: 55, Side: models.Call}, 2.00)

		derivation, steps := Explain(puzzle, testStockPrice, testInterestComponent)

		// 1 disclosed call, 5 derived values
		assert.Len(t, steps, 5)

		assert.Equal(t, 45.0, steps[0].Strike)
		assert.Equal(t, models.Put, steps[0].Side)
		assert.Equal(t, 1.00, steps[0].Value)
		assert.NotEmpty(t, steps[0].Reason)

		for _, step := range steps {
			switch step.Side {
			case models.Call:
				assert.Equal(t, derivation.KnownCalls[step.Strike], step.Value)
			case models.Put:
				assert.Equal(t, derivation.KnownPuts[step.Strike], step.Value)
			}
		}
	})

	t.Run("matches the plain solver", func(t *testing.T) {
		puzzle := models.NewPuzzle([]float64{45, 50, 55})
		puzzle.Disclose(models.PriceKey{Strike: 50, Side: models.Call}, 4.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 45, High: 50, Side: models.Put}, 2.00)
		puzzle.DiscloseSpread(models.SpreadKey{Low: 50, High: 55, Side: models.Call}, 2.00)

		plain := Solve(puzzle, testStockPrice, testInterestComponent)
		explained, _ := Explain(puzzle, testStockPrice, testInterestComponent)

		assert.Equal(t, plain.KnownCalls, explained.KnownCalls)
		assert.Equal(t, plain.KnownPuts, explained.KnownPuts)
	})
}
