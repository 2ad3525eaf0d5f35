package ladder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator(t *testing.T) {
	t.Run("returns the requested number of strikes", func(t *testing.T) {
		generator := NewGenerator(rand.New(rand.NewSource(1)))

		_, l, err := generator.Generate(5)

		assert.NoError(t, err)
		assert.Len(t, l.Rows, 5)
	})

	t.Run("validated ladders satisfy every no-arbitrage property", func(t *testing.T) {
		validator := NewValidator()
		validCount := 0

		for seed := int64(1); seed <= 20; seed++ {
			generator := NewGenerator(rand.New(rand.NewSource(seed)))

			params, l, err := generator.Generate(6)
			assert.NoError(t, err)

			if !validator.Validate(l, params.StockPrice, params.InterestComponent).Valid {
				// best-effort fallback after the attempt budget; skip
				continue
			}
			validCount += 1

			for _, row := range l.Rows {
				parityErr := row.ParityError(params.StockPrice, params.InterestComponent)
				assert.Less(t, math.Abs(parityErr), 0.01)
				assert.GreaterOrEqual(t, row.CallPrice, row.IntrinsicCall(params.StockPrice)-0.01)
				assert.GreaterOrEqual(t, row.PutPrice, row.IntrinsicPut(params.StockPrice)-0.01)
			}

			for i := 0; i+1 < len(l.Rows); i++ {
				low, high := l.Rows[i], l.Rows[i+1]

				assert.LessOrEqual(t, high.CallPrice, low.CallPrice+0.01)
				assert.GreaterOrEqual(t, high.PutPrice, low.PutPrice-0.01)

				box := (low.CallPrice - high.CallPrice) + (high.PutPrice - low.PutPrice)
				assert.InDelta(t, high.Strike-low.Strike, box, 0.05)
			}
		}

		assert.Greater(t, validCount, 0, "rejection sampling never produced a valid ladder")
	})

	t.Run("same seed reproduces the same ladder", func(t *testing.T) {
		paramsA, ladderA, err := NewGenerator(rand.New(rand.NewSource(7))).Generate(5)
		assert.NoError(t, err)

		paramsB, ladderB, err := NewGenerator(rand.New(rand.NewSource(7))).Generate(5)
		assert.NoError(t, err)

		assert.Equal(t, paramsA, paramsB)
		assert.Equal(t, ladderA, ladderB)
	})
}
