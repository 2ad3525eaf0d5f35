package exercise

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-trainer/src/models"
)

// Repair adds minimal disclosures to an unsolvable puzzle and re-checks.
// Pass 1 gives every adjacent pair lacking both spreads one spread (random
// side); pass 2 discloses one explicit price at the first strike still
// lacking any disclosure. Existing disclosures are never removed; a puzzle
// that is already solvable is returned untouched.
func Repair(rng *rand.Rand, l models.Ladder, spreads models.SpreadSet, p *models.Puzzle, stockPrice, interestComponent float64) bool {
	if IsSolvable(p, stockPrice, interestComponent) {
		return true
	}

	for _, pair := range spreads.Pairs() {
		if p.HasSpread(pair.Low, pair.High, models.Call) || p.HasSpread(pair.Low, pair.High, models.Put) {
			continue
		}

		if rng.Float64() < 0.5 {
			p.DiscloseSpread(models.SpreadKey{Low: pair.Low, High: pair.High, Side: models.Call}, spreads.CallSpreads[pair])
		} else {
			p.DiscloseSpread(models.SpreadKey{Low: pair.Low, High: pair.High, Side: models.Put}, spreads.PutSpreads[pair])
		}
	}

	if IsSolvable(p, stockPrice, interestComponent) {
		return true
	}

	for _, row := range l.Rows {
		if p.HasDisclosureAt(row.Strike) {
			continue
		}

		if rng.Float64() < 0.5 {
			p.Disclose(models.PriceKey{Strike: row.Strike, Side: models.Call}, row.CallPrice)
		} else {
			p.Disclose(models.PriceKey{Strike: row.Strike, Side: models.Put}, row.PutPrice)
		}
		break
	}

	return IsSolvable(p, stockPrice, interestComponent)
}

// FallbackPuzzle constructs a trivially solvable puzzle: the first strike's
// call price plus the complete chain of call spreads, which connects every
// strike to the anchor. Fully deterministic; used once the repair budget is
// exhausted.
func FallbackPuzzle(l models.Ladder, spreads models.SpreadSet) *models.Puzzle {
	log.Warn("FallbackPuzzle: repair budget exhausted, issuing call-chain puzzle")

	puzzle := models.NewPuzzle(l.Strikes())
	puzzle.Disclose(models.PriceKey{Strike: l.Rows[0].Strike, Side: models.Call}, l.Rows[0].CallPrice)

	for _, pair := range spreads.Pairs() {
		puzzle.DiscloseSpread(models.SpreadKey{Low: pair.Low, High: pair.High, Side: models.Call}, spreads.CallSpreads[pair])
	}

	return puzzle
}
