package ladder

import (
	"github.com/jiaming2012/options-trainer/src/models"
	"github.com/jiaming2012/options-trainer/src/utils"
)

// ComputeSpreads derives the call, put and box spreads for every adjacent
// strike pair of a finished ladder. The ladder is assumed validated upstream.
func ComputeSpreads(l models.Ladder) models.SpreadSet {
	set := models.NewSpreadSet()

	for i := 0; i+1 < len(l.Rows); i++ {
		low, high := l.Rows[i], l.Rows[i+1]
		pair := models.StrikePair{Low: low.Strike, High: high.Strike}

		callSpread := utils.RoundCents(low.CallPrice - high.CallPrice)
		putSpread := utils.RoundCents(high.PutPrice - low.PutPrice)

		set.CallSpreads[pair] = callSpread
		set.PutSpreads[pair] = putSpread
		set.BoxSpreads[pair] = utils.RoundCents(callSpread + putSpread)
	}

	return set
}
