package handler

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-trainer/src/exercise"
	"github.com/jiaming2012/options-trainer/src/models"
	"github.com/jiaming2012/options-trainer/src/utils"
)

const (
	MinNumStrikes = 3
	MaxNumStrikes = 10

	defaultNumStrikes      = 5
	defaultMaskProbability = 0.3
	defaultHideProbability = 0.4
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

type GenerateLadderRequest struct {
	NumStrikes      int     `json:"num_strikes" schema:"num_strikes"`
	UseSpreads      bool    `json:"use_spreads" schema:"use_spreads"`
	MaskProbability float64 `json:"mask_probability" schema:"mask_probability"`
	IncludeSolution bool    `json:"include_solution" schema:"include_solution"`
}

type ExplicitPriceJSON struct {
	Strike float64 `json:"strike"`
	Side   string  `json:"side"`
	Value  float64 `json:"value"`
}

type SpreadJSON struct {
	Strike1 float64 `json:"strike1"`
	Strike2 float64 `json:"strike2"`
	Side    string  `json:"side"`
	Value   float64 `json:"value"`
}

type ExerciseDataJSON struct {
	Strikes        []float64           `json:"strikes"`
	ExplicitPrices []ExplicitPriceJSON `json:"explicit_prices"`
	Spreads        []SpreadJSON        `json:"spreads"`
}

type SolutionStepJSON struct {
	Strike float64 `json:"strike"`
	Side   string  `json:"side"`
	Value  float64 `json:"value"`
	Reason string  `json:"reason"`
}

type UserAnswerJSON struct {
	Strike float64 `json:"strike"`
	Call   *string `json:"call"`
	Put    *string `json:"put"`
}

type CheckAnswersRequest struct {
	RealLadder  []models.LadderRow `json:"real_ladder"`
	UserAnswers []UserAnswerJSON   `json:"user_answers"`
}

type ValidateLadderRequest struct {
	Ladder            models.Ladder `json:"ladder"`
	StockPrice        float64       `json:"stock_price"`
	InterestComponent float64       `json:"r_c"`
}

type ExerciseHandler struct {
	service *exercise.Service
}

func NewExerciseHandler(service *exercise.Service) *ExerciseHandler {
	return &ExerciseHandler{
		service: service,
	}
}

func (h *ExerciseHandler) SetupRouter(router *mux.Router) {
	router.HandleFunc("/generate_ladder", h.generateLadder).Methods("GET", "POST")
	router.HandleFunc("/check_answers", h.checkAnswers).Methods("POST")
	router.HandleFunc("/validate_ladder", h.validateLadder).Methods("POST")
}

func decodeGenerateLadderRequest(r *http.Request) (GenerateLadderRequest, error) {
	req := GenerateLadderRequest{
		NumStrikes:      defaultNumStrikes,
		MaskProbability: defaultMaskProbability,
	}

	if r.Method == http.MethodGet {
		if err := queryDecoder.Decode(&req, r.URL.Query()); err != nil {
			return req, fmt.Errorf("decodeGenerateLadderRequest: query: %v", err)
		}
		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("decodeGenerateLadderRequest: body: %v", err)
	}

	return req, nil
}

// generateLadder serves both exercise modes. The num_strikes range check
// lives here at the boundary; the core never sees out-of-range input.
func (h *ExerciseHandler) generateLadder(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGenerateLadderRequest(r)
	if err != nil {
		setErrorResponse("generateLadder: invalid request", 400, err, w)
		return
	}

	if req.NumStrikes < MinNumStrikes || req.NumStrikes > MaxNumStrikes {
		setErrorResponse("generateLadder: invalid request", 400, fmt.Errorf("generateLadder: %d: %w", req.NumStrikes, models.InvalidNumStrikesErr), w)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if req.UseSpreads {
		h.generateSpreadExercise(req, rng, w)
		return
	}

	h.generateSimpleExercise(req, rng, w)
}

func (h *ExerciseHandler) generateSpreadExercise(req GenerateLadderRequest, rng *rand.Rand, w http.ResponseWriter) {
	result, err := h.service.GenerateExerciseWithSpreads(req.NumStrikes, req.MaskProbability, rng)
	if err != nil {
		setErrorResponse("generateLadder: spreads", 400, err, w)
		return
	}

	exerciseData := ExerciseDataJSON{
		Strikes:        result.Puzzle.Strikes,
		ExplicitPrices: make([]ExplicitPriceJSON, 0, len(result.Puzzle.ExplicitPrices)),
		Spreads:        make([]SpreadJSON, 0, len(result.Puzzle.Spreads)),
	}

	for key, value := range result.Puzzle.ExplicitPrices {
		exerciseData.ExplicitPrices = append(exerciseData.ExplicitPrices, ExplicitPriceJSON{
			Strike: key.Strike,
			Side:   key.Side.String(),
			Value:  value,
		})
	}

	for key, value := range result.Puzzle.Spreads {
		exerciseData.Spreads = append(exerciseData.Spreads, SpreadJSON{
			Strike1: key.Low,
			Strike2: key.High,
			Side:    key.Side.String(),
			Value:   value,
		})
	}

	response := map[string]interface{}{
		"success":       true,
		"exercise_type": "spreads",
		"exercise_id":   result.ID.String(),
		"real_ladder":   result.RealLadder.Rows,
		"exercise_data": exerciseData,
		"stock_price":   result.Params.StockPrice,
		"r_c":           result.Params.InterestComponent,
		"used_fallback": result.UsedFallback,
	}

	if req.IncludeSolution {
		_, steps := exercise.Explain(result.Puzzle, result.Params.StockPrice, result.Params.InterestComponent)

		stepsJSON := make([]SolutionStepJSON, 0, len(steps))
		for _, step := range steps {
			stepsJSON = append(stepsJSON, SolutionStepJSON{
				Strike: step.Strike,
				Side:   step.Side.String(),
				Value:  step.Value,
				Reason: step.Reason,
			})
		}

		response["solution_steps"] = stepsJSON
	}

	if err := setResponse(response, w); err != nil {
		log.Errorf("generateSpreadExercise: %v", err)
	}
}

func (h *ExerciseHandler) generateSimpleExercise(req GenerateLadderRequest, rng *rand.Rand, w http.ResponseWriter) {
	result, err := h.service.GenerateSimpleExercise(req.NumStrikes, defaultHideProbability, rng)
	if err != nil {
		setErrorResponse("generateLadder: simple", 400, err, w)
		return
	}

	response := map[string]interface{}{
		"success":         true,
		"exercise_type":   "simple",
		"exercise_id":     result.ID.String(),
		"real_ladder":     result.RealLadder.Rows,
		"exercise_ladder": result.Rows,
		"stock_price":     result.Params.StockPrice,
		"r_c":             result.Params.InterestComponent,
	}

	if err := setResponse(response, w); err != nil {
		log.Errorf("generateSimpleExercise: %v", err)
	}
}

// checkAnswers coerces the submitted strings and grades them against the real
// ladder echoed back by the client.
func (h *ExerciseHandler) checkAnswers(w http.ResponseWriter, r *http.Request) {
	var req CheckAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		setErrorResponse("checkAnswers: invalid request", 400, err, w)
		return
	}

	answers := make([]models.UserAnswer, 0, len(req.UserAnswers))
	for _, submitted := range req.UserAnswers {
		callPrice, err := utils.ParseOptionalPrice(submitted.Call)
		if err != nil {
			setErrorResponse("checkAnswers: invalid call price", 400, fmt.Errorf("strike %v: %w", submitted.Strike, models.InvalidSubmittedPriceErr), w)
			return
		}

		putPrice, err := utils.ParseOptionalPrice(submitted.Put)
		if err != nil {
			setErrorResponse("checkAnswers: invalid put price", 400, fmt.Errorf("strike %v: %w", submitted.Strike, models.InvalidSubmittedPriceErr), w)
			return
		}

		answers = append(answers, models.UserAnswer{
			Strike: submitted.Strike,
			Call:   callPrice,
			Put:    putPrice,
		})
	}

	results, summary, err := h.service.CheckAnswers(models.Ladder{Rows: req.RealLadder}, answers)
	if err != nil {
		setErrorResponse("checkAnswers: grading failed", 400, err, w)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"results": results,
		"summary": summary,
	}

	if err := setResponse(response, w); err != nil {
		log.Errorf("checkAnswers: %v", err)
	}
}

// validateLadder is the debug audit path, using the looser external parity
// tolerance.
func (h *ExerciseHandler) validateLadder(w http.ResponseWriter, r *http.Request) {
	var req ValidateLadderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		setErrorResponse("validateLadder: invalid request", 400, err, w)
		return
	}

	result := h.service.ValidateLadder(req.Ladder, req.StockPrice, req.InterestComponent)

	response := map[string]interface{}{
		"success":    true,
		"valid":      result.Valid,
		"violations": result.Violations,
	}

	if err := setResponse(response, w); err != nil {
		log.Errorf("validateLadder: %v", err)
	}
}
