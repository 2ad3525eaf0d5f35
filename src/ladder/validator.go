package ladder

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/options-trainer/src/models"
)

const (
	IntrinsicTolerance    = 0.01
	GenerationParityTol   = 0.01
	ExternalParityTol     = 0.02
	MonotonicityTolerance = 0.01
	BoxTolerance          = 0.05
)

// ValidationResult reports the outcome of the four no-arbitrage checks.
// Failure is communicated purely through this structure, never an error.
type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

// Validator runs the intrinsic-value, parity, monotonicity and box
// no-arbitrage checks. The parity tolerance is the only knob: generation uses
// the tight tolerance, externally supplied ladders get the looser one.
type Validator struct {
	parityTolerance float64
}

func NewValidator() *Validator {
	return &Validator{parityTolerance: GenerationParityTol}
}

// NewExternalValidator audits ladders that were not produced by this
// process, e.g. via the debug endpoint.
func NewExternalValidator() *Validator {
	return &Validator{parityTolerance: ExternalParityTol}
}

func (v *Validator) validateRow(row models.LadderRow, stockPrice, interestComponent float64) []string {
	var violations []string

	if row.CallPrice < row.IntrinsicCall(stockPrice)-IntrinsicTolerance {
		violations = append(violations, fmt.Sprintf("strike %.2f: call %.2f below intrinsic value %.2f", row.Strike, row.CallPrice, row.IntrinsicCall(stockPrice)))
	}

	if row.PutPrice < row.IntrinsicPut(stockPrice)-IntrinsicTolerance {
		violations = append(violations, fmt.Sprintf("strike %.2f: put %.2f below intrinsic value %.2f", row.Strike, row.PutPrice, row.IntrinsicPut(stockPrice)))
	}

	if parityErr := row.ParityError(stockPrice, interestComponent); math.Abs(parityErr) >= v.parityTolerance {
		violations = append(violations, fmt.Sprintf("strike %.2f: parity error %.4f exceeds %.2f", row.Strike, parityErr, v.parityTolerance))
	}

	return violations
}

// validateShape checks the cross-strike conditions: calls non-increasing,
// puts non-decreasing, and each adjacent box spread equal to the strike
// difference.
func (v *Validator) validateShape(l models.Ladder) []string {
	var violations []string

	for i := 0; i+1 < len(l.Rows); i++ {
		low, high := l.Rows[i], l.Rows[i+1]

		if high.CallPrice > low.CallPrice+MonotonicityTolerance {
			violations = append(violations, fmt.Sprintf("strikes %.2f-%.2f: call prices increase from %.2f to %.2f", low.Strike, high.Strike, low.CallPrice, high.CallPrice))
		}

		if high.PutPrice < low.PutPrice-MonotonicityTolerance {
			violations = append(violations, fmt.Sprintf("strikes %.2f-%.2f: put prices decrease from %.2f to %.2f", low.Strike, high.Strike, low.PutPrice, high.PutPrice))
		}

		box := (low.CallPrice - high.CallPrice) + (high.PutPrice - low.PutPrice)
		if math.Abs(box-(high.Strike-low.Strike)) > BoxTolerance {
			violations = append(violations, fmt.Sprintf("strikes %.2f-%.2f: box spread %.2f deviates from strike width %.2f", low.Strike, high.Strike, box, high.Strike-low.Strike))
		}
	}

	return violations
}

// Validate runs every check and collects all diagnostics.
func (v *Validator) Validate(l models.Ladder, stockPrice, interestComponent float64) ValidationResult {
	var violations []string

	for _, row := range l.Rows {
		violations = append(violations, v.validateRow(row, stockPrice, interestComponent)...)
	}

	violations = append(violations, v.validateShape(l)...)

	return ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}

// ParityErrorStats summarizes the absolute parity error across rows, used by
// the benchmark tooling.
func ParityErrorStats(l models.Ladder, stockPrice, interestComponent float64) (mean float64, max float64, err error) {
	if len(l.Rows) == 0 {
		return 0, 0, fmt.Errorf("ParityErrorStats: ladder has no rows")
	}

	errors := make([]float64, 0, len(l.Rows))
	for _, row := range l.Rows {
		errors = append(errors, math.Abs(row.ParityError(stockPrice, interestComponent)))
	}

	if mean, err = stats.Mean(errors); err != nil {
		return 0, 0, fmt.Errorf("ParityErrorStats: mean: %v", err)
	}

	if max, err = stats.Max(errors); err != nil {
		return 0, 0, fmt.Errorf("ParityErrorStats: max: %v", err)
	}

	return mean, max, nil
}
