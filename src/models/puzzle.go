package models

// PriceKey addresses one explicit price of a puzzle. Strike is the numeric
// strike value; comparing keys never goes through string formatting, which
// avoids the 85 vs 85.0 lookup ambiguity.
type PriceKey struct {
	Strike float64
	Side   OptionSide
}

// SpreadKey addresses one disclosed spread between adjacent strikes,
// Low < High. Box spreads are never part of a puzzle.
type SpreadKey struct {
	Low  float64
	High float64
	Side OptionSide
}

// Puzzle is a partially masked ladder: values absent from the maps are hidden.
// Built by the exercise builder, mutated in place by hint repair.
type Puzzle struct {
	Strikes        []float64
	ExplicitPrices map[PriceKey]float64
	Spreads        map[SpreadKey]float64
}

func NewPuzzle(strikes []float64) *Puzzle {
	return &Puzzle{
		Strikes:        strikes,
		ExplicitPrices: make(map[PriceKey]float64),
		Spreads:        make(map[SpreadKey]float64),
	}
}

func (p *Puzzle) Disclose(key PriceKey, value float64) {
	p.ExplicitPrices[key] = value
}

func (p *Puzzle) DiscloseSpread(key SpreadKey, value float64) {
	p.Spreads[key] = value
}

func (p *Puzzle) HasPrice(strike float64, side OptionSide) bool {
	_, found := p.ExplicitPrices[PriceKey{Strike: strike, Side: side}]
	return found
}

func (p *Puzzle) HasSpread(low, high float64, side OptionSide) bool {
	_, found := p.Spreads[SpreadKey{Low: low, High: high, Side: side}]
	return found
}

// HasDisclosureAt reports whether the strike carries any disclosure at all:
// an explicit price on either side, or an endpoint of a disclosed spread.
func (p *Puzzle) HasDisclosureAt(strike float64) bool {
	for key := range p.ExplicitPrices {
		if SameStrike(key.Strike, strike) {
			return true
		}
	}

	for key := range p.Spreads {
		if SameStrike(key.Low, strike) || SameStrike(key.High, strike) {
			return true
		}
	}

	return false
}

func (p *Puzzle) DisclosureCount() int {
	return len(p.ExplicitPrices) + len(p.Spreads)
}

func (p *Puzzle) Clone() *Puzzle {
	clone := NewPuzzle(append([]float64(nil), p.Strikes...))
	for key, value := range p.ExplicitPrices {
		clone.ExplicitPrices[key] = value
	}
	for key, value := range p.Spreads {
		clone.Spreads[key] = value
	}
	return clone
}
