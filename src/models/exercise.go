package models

import "github.com/google/uuid"

// MaskedRow is one row of a simple-mode exercise: exactly one side is visible.
type MaskedRow struct {
	Call   *float64 `json:"call"`
	Strike float64  `json:"strike"`
	Put    *float64 `json:"put"`
}

// SimpleExercise is the simple-mode payload: the real ladder plus a masked
// copy where each row shows exactly one of call or put.
type SimpleExercise struct {
	ID         uuid.UUID
	Params     MarketParams
	RealLadder Ladder
	Rows       []MaskedRow
}

// SpreadExercise is the advanced-mode payload: a solvable puzzle plus the
// real ladder and spreads it was built from.
type SpreadExercise struct {
	ID           uuid.UUID
	Params       MarketParams
	RealLadder   Ladder
	Spreads      SpreadSet
	Puzzle       *Puzzle
	UsedFallback bool
}
