package exercise

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-trainer/src/eventpubsub"
	"github.com/jiaming2012/options-trainer/src/ladder"
	"github.com/jiaming2012/options-trainer/src/models"
)

// MaxSolvabilityAttempts bounds the build/repair loop before the
// deterministic fallback puzzle is issued.
const MaxSolvabilityAttempts = 20

// Service exposes the boundary operations the request layer consumes. It
// holds no state: every generation call owns the random source passed to it,
// so concurrent requests stay uncorrelated without locking.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// GenerateLadder produces a validated ladder (best effort after the
// generator's attempt budget) plus its market params.
func (s *Service) GenerateLadder(numStrikes int, rng *rand.Rand) (models.MarketParams, models.Ladder, error) {
	params, l, err := ladder.NewGenerator(rng).Generate(numStrikes)
	if err != nil {
		return models.MarketParams{}, models.Ladder{}, fmt.Errorf("GenerateLadder: %w", err)
	}

	eventpubsub.Publish(eventpubsub.LadderGeneratedTopic, eventpubsub.LadderGeneratedEvent{
		NumStrikes: numStrikes,
		StockPrice: params.StockPrice,
		Valid:      ladder.NewValidator().Validate(l, params.StockPrice, params.InterestComponent).Valid,
	})

	return params, l, nil
}

// GenerateSimpleExercise is the simple mode: the real ladder next to a masked
// copy showing exactly one side per row.
func (s *Service) GenerateSimpleExercise(numStrikes int, hideProbability float64, rng *rand.Rand) (*models.SimpleExercise, error) {
	params, l, err := s.GenerateLadder(numStrikes, rng)
	if err != nil {
		return nil, fmt.Errorf("GenerateSimpleExercise: %w", err)
	}

	result := &models.SimpleExercise{
		ID:         uuid.New(),
		Params:     params,
		RealLadder: l,
		Rows:       NewBuilder(rng).BuildSimple(l, hideProbability),
	}

	eventpubsub.Publish(eventpubsub.ExerciseGeneratedTopic, eventpubsub.ExerciseGeneratedEvent{
		ExerciseID:   result.ID.String(),
		ExerciseType: "simple",
		NumStrikes:   numStrikes,
		Disclosures:  len(result.Rows),
	})

	return result, nil
}

// GenerateExerciseWithSpreads is the advanced mode: build a masked puzzle,
// verify solvability by constraint propagation, repair when needed, and fall
// back to a deterministic call-chain puzzle once the attempt budget runs out.
// The returned puzzle is always solvable.
func (s *Service) GenerateExerciseWithSpreads(numStrikes int, maskProbability float64, rng *rand.Rand) (*models.SpreadExercise, error) {
	if maskProbability <= 0 || maskProbability >= 1 {
		return nil, fmt.Errorf("GenerateExerciseWithSpreads: %v: %w", maskProbability, models.InvalidMaskProbabilityErr)
	}

	params, l, err := s.GenerateLadder(numStrikes, rng)
	if err != nil {
		return nil, fmt.Errorf("GenerateExerciseWithSpreads: %w", err)
	}

	spreads := ladder.ComputeSpreads(l)
	builder := NewBuilder(rng)

	var puzzle *models.Puzzle
	solvable := false

	for attempt := 1; attempt <= MaxSolvabilityAttempts; attempt++ {
		puzzle = builder.Build(l, spreads, maskProbability)

		if Repair(rng, l, spreads, puzzle, params.StockPrice, params.InterestComponent) {
			solvable = true
			break
		}

		log.Debugf("GenerateExerciseWithSpreads: attempt %d produced an unsolvable puzzle", attempt)
	}

	usedFallback := false
	if !solvable {
		puzzle = FallbackPuzzle(l, spreads)
		usedFallback = true
	}

	result := &models.SpreadExercise{
		ID:           uuid.New(),
		Params:       params,
		RealLadder:   l,
		Spreads:      spreads,
		Puzzle:       puzzle,
		UsedFallback: usedFallback,
	}

	eventpubsub.Publish(eventpubsub.ExerciseGeneratedTopic, eventpubsub.ExerciseGeneratedEvent{
		ExerciseID:   result.ID.String(),
		ExerciseType: "spreads",
		NumStrikes:   numStrikes,
		Disclosures:  puzzle.DisclosureCount(),
		UsedFallback: usedFallback,
	})

	return result, nil
}

// CheckAnswers grades a submission and computes its score summary.
func (s *Service) CheckAnswers(real models.Ladder, answers []models.UserAnswer) ([]models.RowResult, models.Summary, error) {
	results, err := CheckAnswers(real, answers, AnswerTolerance)
	if err != nil {
		return nil, models.Summary{}, err
	}

	return results, models.NewSummary(results), nil
}

// ValidateLadder audits an externally supplied ladder with the looser parity
// tolerance. Debug/inspection path.
func (s *Service) ValidateLadder(l models.Ladder, stockPrice, interestComponent float64) ladder.ValidationResult {
	return ladder.NewExternalValidator().Validate(l, stockPrice, interestComponent)
}
