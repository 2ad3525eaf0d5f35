package exercise

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-trainer/src/ladder"
	"github.com/jiaming2012/options-trainer/src/models"
)

func TestBuilder(t *testing.T) {
	l := testLadder()
	spreads := ladder.ComputeSpreads(l)

	t.Run("always anchors the middle strike", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			builder := NewBuilder(rand.New(rand.NewSource(seed)))

			puzzle := builder.Build(l, spreads, 0.3)

			assert.True(t, puzzle.HasPrice(50, models.Call) || puzzle.HasPrice(50, models.Put))
		}
	})

	t.Run("discloses only call and put spreads on adjacent pairs", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			builder := NewBuilder(rand.New(rand.NewSource(seed)))

			puzzle := builder.Build(l, spreads, 0.3)

			assert.LessOrEqual(t, len(puzzle.Spreads), 2)
			for key, value := range puzzle.Spreads {
				pair := models.StrikePair{Low: key.Low, High: key.High}

				switch key.Side {
				case models.Call:
					assert.Equal(t, spreads.CallSpreads[pair], value)
				case models.Put:
					assert.Equal(t, spreads.PutSpreads[pair], value)
				default:
					t.Fatalf("unexpected spread side %v", key.Side)
				}

				assert.Equal(t, 5.0, pair.Width())
			}
		}
	})

	t.Run("adds one or two redundant prices away from the anchor", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			builder := NewBuilder(rand.New(rand.NewSource(seed)))

			puzzle := builder.Build(l, spreads, 0.3)

			// anchor plus 1-2 extras
			assert.GreaterOrEqual(t, len(puzzle.ExplicitPrices), 2)
			assert.LessOrEqual(t, len(puzzle.ExplicitPrices), 3)
		}
	})

	t.Run("disclosed prices match the real ladder", func(t *testing.T) {
		builder := NewBuilder(rand.New(rand.NewSource(3)))

		puzzle := builder.Build(l, spreads, 0.3)

		for key, value := range puzzle.ExplicitPrices {
			row, found := l.RowAtStrike(key.Strike)
			assert.True(t, found)

			if key.Side == models.Call {
				assert.Equal(t, row.CallPrice, value)
			} else {
				assert.Equal(t, row.PutPrice, value)
			}
		}
	})
}

func TestBuildSimple(t *testing.T) {
	l := testLadder()

	t.Run("every row shows exactly one side", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			builder := NewBuilder(rand.New(rand.NewSource(seed)))

			rows := builder.BuildSimple(l, 0.4)
			assert.Len(t, rows, len(l.Rows))

			for i, masked := range rows {
				visible := 0
				if masked.Call != nil {
					visible += 1
					assert.Equal(t, l.Rows[i].CallPrice, *masked.Call)
				}
				if masked.Put != nil {
					visible += 1
					assert.Equal(t, l.Rows[i].PutPrice, *masked.Put)
				}

				assert.Equal(t, 1, visible)
				assert.Equal(t, l.Rows[i].Strike, masked.Strike)
			}
		}
	})
}
