package ladder

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-trainer/src/models"
)

const MaxGenerationAttempts = 100

// Generator drives the sampler and validator in a bounded rejection loop.
type Generator struct {
	sampler   *Sampler
	validator *Validator
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{
		sampler:   NewSampler(rng),
		validator: NewValidator(),
	}
}

// accept short-circuits on the first failing row before running the
// cross-strike pass, so rejected candidates are cheap.
func (g *Generator) accept(candidate models.Ladder, params models.MarketParams) bool {
	for _, row := range candidate.Rows {
		if len(g.validator.validateRow(row, params.StockPrice, params.InterestComponent)) > 0 {
			return false
		}
	}

	return len(g.validator.validateShape(candidate)) == 0
}

// Generate returns the first candidate that passes all no-arbitrage checks.
// If no candidate validates within MaxGenerationAttempts, the last candidate
// is returned regardless of validity: the trainer must always produce an
// exercise, so callers must not assume the result is arbitrage free.
func (g *Generator) Generate(numStrikes int) (models.MarketParams, models.Ladder, error) {
	var lastParams models.MarketParams
	var lastCandidate models.Ladder

	for attempt := 1; attempt <= MaxGenerationAttempts; attempt++ {
		params, candidate, err := g.sampler.Sample(numStrikes)
		if err != nil {
			return models.MarketParams{}, models.Ladder{}, fmt.Errorf("Generate: attempt %d: %w", attempt, err)
		}

		lastParams, lastCandidate = params, candidate

		if g.accept(candidate, params) {
			return params, candidate, nil
		}
	}

	log.Warnf("Generate: no valid ladder within %d attempts, returning last candidate", MaxGenerationAttempts)
	return lastParams, lastCandidate, nil
}
