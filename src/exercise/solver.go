package exercise

import (
	"fmt"
	"sort"

	"github.com/jiaming2012/options-trainer/src/models"
	"github.com/jiaming2012/options-trainer/src/utils"
)

const MaxPropagationRounds = 50

// Derivation is the solver's output: every call and put value reachable from
// the disclosed seeds, keyed by numeric strike. Grown monotonically during
// propagation and discarded after each check.
type Derivation struct {
	KnownCalls map[float64]float64
	KnownPuts  map[float64]float64
}

func newDerivation() Derivation {
	return Derivation{
		KnownCalls: make(map[float64]float64),
		KnownPuts:  make(map[float64]float64),
	}
}

func (d Derivation) knownAt(strike float64) bool {
	if _, found := d.KnownCalls[strike]; found {
		return true
	}
	_, found := d.KnownPuts[strike]
	return found
}

// DerivationStep records one value derived during propagation, in derivation
// order, with a human readable justification. Presentation only; it never
// affects solvability.
type DerivationStep struct {
	Strike float64
	Side   models.OptionSide
	Value  float64
	Reason string
}

type stepObserver func(step DerivationStep)

// Solve runs forward constraint propagation over the puzzle's relation graph:
// parity edges link call and put at the same strike, spread edges link the
// same side across adjacent strikes. It iterates to a fixpoint (or the round
// bound) and never backtracks or guesses.
func Solve(p *models.Puzzle, stockPrice, interestComponent float64) Derivation {
	return solve(p, stockPrice, interestComponent, nil)
}

// Explain runs the identical propagation but also records each derivation in
// order, for the worked-solution view.
func Explain(p *models.Puzzle, stockPrice, interestComponent float64) (Derivation, []DerivationStep) {
	var steps []DerivationStep
	derivation := solve(p, stockPrice, interestComponent, func(step DerivationStep) {
		steps = append(steps, step)
	})
	return derivation, steps
}

// IsSolvable reports whether propagation reaches every strike, i.e. each
// strike ends with at least one of call or put known.
func IsSolvable(p *models.Puzzle, stockPrice, interestComponent float64) bool {
	derivation := Solve(p, stockPrice, interestComponent)

	for _, strike := range p.Strikes {
		if !derivation.knownAt(strike) {
			return false
		}
	}

	return true
}

func solve(p *models.Puzzle, stockPrice, interestComponent float64, observe stepObserver) Derivation {
	derivation := newDerivation()

	for key, value := range p.ExplicitPrices {
		switch key.Side {
		case models.Call:
			derivation.KnownCalls[key.Strike] = value
		case models.Put:
			derivation.KnownPuts[key.Strike] = value
		}
	}

	spreadKeys := sortedSpreadKeys(p)

	for round := 0; round < MaxPropagationRounds; round++ {
		progressed := false

		for _, strike := range p.Strikes {
			progressed = derivation.applyParity(strike, stockPrice, interestComponent, observe) || progressed
		}

		for _, key := range spreadKeys {
			progressed = derivation.applySpread(key, p.Spreads[key], observe) || progressed
		}

		if !progressed {
			break
		}
	}

	return derivation
}

// sortedSpreadKeys fixes the iteration order so derivation traces are stable
// across runs.
func sortedSpreadKeys(p *models.Puzzle) []models.SpreadKey {
	keys := make([]models.SpreadKey, 0, len(p.Spreads))
	for key := range p.Spreads {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Low != keys[j].Low {
			return keys[i].Low < keys[j].Low
		}
		if keys[i].High != keys[j].High {
			return keys[i].High < keys[j].High
		}
		return keys[i].Side < keys[j].Side
	})

	return keys
}

// applyParity fills the missing side of a strike from the known side via
// C - P = S - K + r_c.
func (d Derivation) applyParity(strike, stockPrice, interestComponent float64, observe stepObserver) bool {
	callPrice, callKnown := d.KnownCalls[strike]
	putPrice, putKnown := d.KnownPuts[strike]

	if callKnown && !putKnown {
		derived := utils.RoundCents(callPrice - stockPrice + strike - interestComponent)
		d.KnownPuts[strike] = derived
		if observe != nil {
			observe(DerivationStep{
				Strike: strike,
				Side:   models.Put,
				Value:  derived,
				Reason: fmt.Sprintf("P(%.2f) = C(%.2f) - S + K - r/c = %.2f", strike, strike, derived),
			})
		}
		return true
	}

	if putKnown && !callKnown {
		derived := utils.RoundCents(putPrice + stockPrice - strike + interestComponent)
		d.KnownCalls[strike] = derived
		if observe != nil {
			observe(DerivationStep{
				Strike: strike,
				Side:   models.Call,
				Value:  derived,
				Reason: fmt.Sprintf("C(%.2f) = P(%.2f) + S - K + r/c = %.2f", strike, strike, derived),
			})
		}
		return true
	}

	return false
}

// applySpread fills one endpoint of a disclosed spread from the other.
// Call spread: C(low) - C(high); put spread: P(high) - P(low).
func (d Derivation) applySpread(key models.SpreadKey, spread float64, observe stepObserver) bool {
	known := d.KnownCalls
	if key.Side == models.Put {
		known = d.KnownPuts
	}

	lowPrice, lowKnown := known[key.Low]
	highPrice, highKnown := known[key.High]

	if lowKnown == highKnown {
		return false
	}

	var strike, derived float64
	if lowKnown {
		strike = key.High
		if key.Side == models.Call {
			derived = utils.RoundCents(lowPrice - spread)
		} else {
			derived = utils.RoundCents(lowPrice + spread)
		}
	} else {
		strike = key.Low
		if key.Side == models.Call {
			derived = utils.RoundCents(highPrice + spread)
		} else {
			derived = utils.RoundCents(highPrice - spread)
		}
	}

	known[strike] = derived

	if observe != nil {
		observe(DerivationStep{
			Strike: strike,
			Side:   key.Side,
			Value:  derived,
			Reason: fmt.Sprintf("%s(%.2f) via %s spread %.2f-%.2f = %.2f", sideSymbol(key.Side), strike, key.Side, key.Low, key.High, derived),
		})
	}

	return true
}

func sideSymbol(side models.OptionSide) string {
	if side == models.Put {
		return "P"
	}
	return "C"
}
