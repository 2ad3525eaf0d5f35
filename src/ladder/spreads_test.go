package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-trainer/src/models"
)

func TestComputeSpreads(t *testing.T) {
	l := testLadder()
	spreads := ComputeSpreads(l)

	pairLow := models.StrikePair{Low: 45, High: 50}
	pairHigh := models.StrikePair{Low: 50, High: 55}

	t.Run("derives one spread per adjacent pair", func(t *testing.T) {
		assert.Len(t, spreads.CallSpreads, 2)
		assert.Len(t, spreads.PutSpreads, 2)
		assert.Len(t, spreads.BoxSpreads, 2)
	})

	t.Run("computes call and put spreads from the correct legs", func(t *testing.T) {
		assert.Equal(t, 3.00, spreads.CallSpreads[pairLow])
		assert.Equal(t, 2.00, spreads.CallSpreads[pairHigh])
		assert.Equal(t, 2.00, spreads.PutSpreads[pairLow])
		assert.Equal(t, 3.00, spreads.PutSpreads[pairHigh])
	})

	t.Run("box spreads equal the strike width for an arbitrage-free ladder", func(t *testing.T) {
		for pair, box := range spreads.BoxSpreads {
			assert.InDelta(t, pair.Width(), box, 0.05)
			assert.InDelta(t, spreads.CallSpreads[pair]+spreads.PutSpreads[pair], box, 1e-9)
		}
	})

	t.Run("pairs are sorted by lower strike", func(t *testing.T) {
		pairs := spreads.Pairs()

		assert.Equal(t, []models.StrikePair{pairLow, pairHigh}, pairs)
	})
}
