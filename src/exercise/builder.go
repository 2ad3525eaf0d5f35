package exercise

import (
	"math/rand"

	"github.com/jiaming2012/options-trainer/src/models"
)

// Builder selects which prices and spreads of a real ladder get disclosed.
// The disclosure bias leans toward high connectivity so propagation can reach
// every strike from the anchor; the solver still verifies the result.
type Builder struct {
	rng *rand.Rand
}

func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{
		rng: rng,
	}
}

// Build produces a partially masked puzzle from the real ladder:
//  1. everything starts hidden
//  2. one anchor at the middle strike (call 60%, put 40%)
//  3. per adjacent pair, a spread with distribution {call 0.6, put 0.3, none 0.1}
//  4. one or two redundant explicit prices at distinct non-anchor strikes
//
// Box spreads are never disclosed. A higher maskProbability trims the
// redundancy step down to a single extra price.
func (b *Builder) Build(l models.Ladder, spreads models.SpreadSet, maskProbability float64) *models.Puzzle {
	puzzle := models.NewPuzzle(l.Strikes())

	anchor := l.Rows[len(l.Rows)/2]
	if b.rng.Float64() < 0.6 {
		puzzle.Disclose(models.PriceKey{Strike: anchor.Strike, Side: models.Call}, anchor.CallPrice)
	} else {
		puzzle.Disclose(models.PriceKey{Strike: anchor.Strike, Side: models.Put}, anchor.PutPrice)
	}

	for _, pair := range spreads.Pairs() {
		switch roll := b.rng.Float64(); {
		case roll < 0.6:
			puzzle.DiscloseSpread(models.SpreadKey{Low: pair.Low, High: pair.High, Side: models.Call}, spreads.CallSpreads[pair])
		case roll < 0.9:
			puzzle.DiscloseSpread(models.SpreadKey{Low: pair.Low, High: pair.High, Side: models.Put}, spreads.PutSpreads[pair])
		default:
			// pair stays undisclosed
		}
	}

	extras := 2
	if b.rng.Float64() < maskProbability {
		extras = 1
	}
	b.discloseExtras(puzzle, l, anchor.Strike, extras)

	return puzzle
}

// discloseExtras adds up to count explicit prices at distinct strikes away
// from the anchor, purely as redundancy.
func (b *Builder) discloseExtras(puzzle *models.Puzzle, l models.Ladder, anchorStrike float64, count int) {
	candidates := make([]models.LadderRow, 0, len(l.Rows))
	for _, row := range l.Rows {
		if !models.SameStrike(row.Strike, anchorStrike) {
			candidates = append(candidates, row)
		}
	}

	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	disclosed := 0
	for _, row := range candidates {
		if disclosed == count {
			break
		}

		if puzzle.HasPrice(row.Strike, models.Call) || puzzle.HasPrice(row.Strike, models.Put) {
			continue
		}

		if b.rng.Float64() < 0.5 {
			puzzle.Disclose(models.PriceKey{Strike: row.Strike, Side: models.Call}, row.CallPrice)
		} else {
			puzzle.Disclose(models.PriceKey{Strike: row.Strike, Side: models.Put}, row.PutPrice)
		}

		disclosed += 1
	}
}

// BuildSimple masks a ladder for the simple exercise mode: each side is
// hidden independently with hideProbability, then every row is forced to show
// exactly one side. Rows where both sides survived keep one at random; rows
// where both were hidden get one side re-disclosed from the real ladder.
func (b *Builder) BuildSimple(l models.Ladder, hideProbability float64) []models.MaskedRow {
	rows := make([]models.MaskedRow, 0, len(l.Rows))

	for _, row := range l.Rows {
		callPrice, putPrice := row.CallPrice, row.PutPrice
		masked := models.MaskedRow{Strike: row.Strike, Call: &callPrice, Put: &putPrice}

		if b.rng.Float64() < hideProbability {
			masked.Call = nil
		}
		if b.rng.Float64() < hideProbability {
			masked.Put = nil
		}

		keepCall := b.rng.Float64() < 0.5
		if masked.Call != nil && masked.Put != nil {
			if keepCall {
				masked.Put = nil
			} else {
				masked.Call = nil
			}
		} else if masked.Call == nil && masked.Put == nil {
			if keepCall {
				masked.Call = &callPrice
			} else {
				masked.Put = &putPrice
			}
		}

		rows = append(rows, masked)
	}

	return rows
}
