package ladder

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/jiaming2012/options-trainer/src/models"
	"github.com/jiaming2012/options-trainer/src/pricing"
	"github.com/jiaming2012/options-trainer/src/utils"
)

const minVolatility = 0.12

// Sampler draws random market parameters and strikes and prices one candidate
// ladder. Each sampler owns its random source, so concurrent callers each
// construct their own.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{
		rng: rng,
	}
}

func (s *Sampler) uniform(low, high float64) float64 {
	return low + s.rng.Float64()*(high-low)
}

func (s *Sampler) chooseSpacing(stockPrice float64) float64 {
	switch {
	case stockPrice < 10:
		return float64(1 + s.rng.Intn(2))
	case stockPrice < 25:
		return 5
	case stockPrice < 50:
		return 5
	default:
		if s.rng.Intn(2) == 0 {
			return 5
		}
		return 10
	}
}

// buildStrikes centers numStrikes strikes on the round number closest to the
// stock price, floored at one spacing unit. Duplicates are possible at small
// spacing near the floor and are deliberately not deduplicated.
func (s *Sampler) buildStrikes(stockPrice float64, numStrikes int) []float64 {
	spacing := s.chooseSpacing(stockPrice)
	centerStrike := math.Round(stockPrice/spacing) * spacing
	centerIndex := numStrikes / 2

	strikes := make([]float64, 0, numStrikes)
	for i := 0; i < numStrikes; i++ {
		strike := centerStrike + float64(i-centerIndex)*spacing
		strikes = append(strikes, math.Max(strike, spacing))
	}

	sort.Float64s(strikes)
	return strikes
}

// volAdjustment applies the volatility smile: richer vol for OTM wings,
// flat near the money.
func (s *Sampler) volAdjustment(moneyness float64) float64 {
	switch {
	case moneyness < 0.90:
		return s.uniform(0.05, 0.15)
	case moneyness > 1.10:
		return s.uniform(0.03, 0.10)
	case moneyness < 0.95 || moneyness > 1.05:
		return s.uniform(0.02, 0.06)
	default:
		return s.uniform(-0.02, 0.02)
	}
}

// Sample produces one candidate ladder plus the market params it was priced
// under. Candidates are not validated here; the generator's rejection loop
// owns acceptance.
func (s *Sampler) Sample(numStrikes int) (models.MarketParams, models.Ladder, error) {
	stockPrice := utils.RoundCents(s.uniform(5, 100))
	strikes := s.buildStrikes(stockPrice, numStrikes)

	params := models.MarketParams{
		StockPrice:        stockPrice,
		RiskFreeRate:      s.uniform(0.02, 0.05),
		TimeToExpiry:      s.uniform(0.25, 1.5),
		BaseVolatility:    s.uniform(0.18, 0.35),
		InterestComponent: utils.RoundCents(s.uniform(0.1, 1.5)),
	}

	candidate := models.Ladder{Rows: make([]models.LadderRow, 0, numStrikes)}

	for _, strike := range strikes {
		moneyness := strike / stockPrice
		sigma := math.Max(params.BaseVolatility+s.volAdjustment(moneyness), minVolatility)

		callPrice, err := pricing.CallPrice(stockPrice, strike, params.RiskFreeRate, params.TimeToExpiry, sigma)
		if err != nil {
			return models.MarketParams{}, models.Ladder{}, fmt.Errorf("Sample: pricing strike %v: %w", strike, err)
		}

		callPrice = utils.RoundCents(callPrice)
		putPrice := utils.RoundCents(pricing.PutFromParity(callPrice, stockPrice, strike, params.InterestComponent))

		candidate.Rows = append(candidate.Rows, models.LadderRow{
			CallPrice: callPrice,
			Strike:    strike,
			PutPrice:  putPrice,
		})
	}

	return params, candidate, nil
}
