package exercise

import (
	"fmt"
	"math"

	"github.com/jiaming2012/options-trainer/src/models"
	"github.com/jiaming2012/options-trainer/src/utils"
)

// AnswerTolerance is how far a submitted price may sit from the real one and
// still count as correct: five cents.
const AnswerTolerance = 0.05

func gradeSide(submitted *float64, real float64, tolerance float64) models.SideVerdict {
	verdict := models.SideVerdict{}

	if submitted == nil {
		return verdict
	}

	verdict.Attempted = true
	difference := utils.RoundMillis(*submitted - real)
	verdict.Difference = &difference
	verdict.Correct = math.Abs(difference) <= tolerance

	return verdict
}

// CheckAnswers grades user submissions against the real ladder, row by row.
// Answers are matched to rows by position, one entry per row. Input coercion
// is the boundary's job; values here are already numeric or absent.
func CheckAnswers(real models.Ladder, answers []models.UserAnswer, tolerance float64) ([]models.RowResult, error) {
	if len(answers) != len(real.Rows) {
		return nil, fmt.Errorf("CheckAnswers: got %d answers for %d rows: %w", len(answers), len(real.Rows), models.AnswerCountMismatchErr)
	}

	results := make([]models.RowResult, 0, len(real.Rows))

	for i, row := range real.Rows {
		results = append(results, models.RowResult{
			Strike:     row.Strike,
			RealCall:   row.CallPrice,
			RealPut:    row.PutPrice,
			CallResult: gradeSide(answers[i].Call, row.CallPrice, tolerance),
			PutResult:  gradeSide(answers[i].Put, row.PutPrice, tolerance),
		})
	}

	return results, nil
}
