package models

import "math"

// UserAnswer is a single submitted row. Nil means the side was left blank.
// String coercion happens at the boundary before these are built.
type UserAnswer struct {
	Strike float64
	Call   *float64
	Put    *float64
}

// SideVerdict grades one submitted value. Difference is the signed error,
// nil when the side was not attempted.
type SideVerdict struct {
	Attempted  bool     `json:"attempted"`
	Correct    bool     `json:"correct"`
	Difference *float64 `json:"difference"`
}

type RowResult struct {
	Strike     float64     `json:"strike"`
	RealCall   float64     `json:"real_call"`
	RealPut    float64     `json:"real_put"`
	CallResult SideVerdict `json:"call_result"`
	PutResult  SideVerdict `json:"put_result"`
}

type Summary struct {
	TotalAttempted int     `json:"total_attempted"`
	TotalCorrect   int     `json:"total_correct"`
	Score          float64 `json:"score"`
}

// NewSummary aggregates row results into the score reported to the user.
func NewSummary(results []RowResult) Summary {
	summary := Summary{}

	for _, result := range results {
		for _, verdict := range []SideVerdict{result.CallResult, result.PutResult} {
			if verdict.Attempted {
				summary.TotalAttempted += 1
			}
			if verdict.Correct {
				summary.TotalCorrect += 1
			}
		}
	}

	if summary.TotalAttempted > 0 {
		score := float64(summary.TotalCorrect) / float64(summary.TotalAttempted) * 100
		summary.Score = math.Round(score*10) / 10
	}

	return summary
}
