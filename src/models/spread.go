package models

import "sort"

// StrikePair identifies an adjacent strike pair, Low < High. Keys are the
// numeric strike values themselves, never formatted strings.
type StrikePair struct {
	Low  float64
	High float64
}

func (p StrikePair) Width() float64 {
	return p.High - p.Low
}

// SpreadSet holds the pairwise spreads of a finished ladder:
// call spread C(low) - C(high), put spread P(high) - P(low), and
// box spread = call spread + put spread (equals High - Low when the ladder is
// arbitrage free).
type SpreadSet struct {
	CallSpreads map[StrikePair]float64
	PutSpreads  map[StrikePair]float64
	BoxSpreads  map[StrikePair]float64
}

func NewSpreadSet() SpreadSet {
	return SpreadSet{
		CallSpreads: make(map[StrikePair]float64),
		PutSpreads:  make(map[StrikePair]float64),
		BoxSpreads:  make(map[StrikePair]float64),
	}
}

// Pairs returns the adjacent pairs sorted by lower strike.
func (s SpreadSet) Pairs() []StrikePair {
	pairs := make([]StrikePair, 0, len(s.CallSpreads))
	for pair := range s.CallSpreads {
		pairs = append(pairs, pair)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Low != pairs[j].Low {
			return pairs[i].Low < pairs[j].Low
		}
		return pairs[i].High < pairs[j].High
	})

	return pairs
}
