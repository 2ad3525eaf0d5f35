package pricing

import (
	"fmt"
	"math"
)

var InvalidPricingDomainErr = fmt.Errorf("stock price, strike, time to expiry and volatility must be strictly positive")

// Abramowitz-Stegun 26.2.17 coefficients. The downstream no-arbitrage
// tolerances are tuned to this approximation's ~1e-7 error profile, so the
// CDF must stay this exact fixed form rather than delegate to math.Erf.
const (
	asGamma = 0.2316419
	asA1    = 0.319381530
	asA2    = -0.356563782
	asA3    = 1.781477937
	asA4    = -1.821255978
	asA5    = 1.330274429
)

var invSqrt2Pi = 1 / math.Sqrt(2*math.Pi)

// NormCDF approximates the standard normal cumulative distribution function.
func NormCDF(x float64) float64 {
	if x < 0 {
		return 1 - NormCDF(-x)
	}

	t := 1 / (1 + asGamma*x)
	poly := t * (asA1 + t*(asA2+t*(asA3+t*(asA4+t*asA5))))
	return 1 - invSqrt2Pi*math.Exp(-0.5*x*x)*poly
}

// CallPrice returns the Black-Scholes price of a European call, floored at
// intrinsic value max(S-K, 0). Inputs other than the rate must be strictly
// positive; violations return InvalidPricingDomainErr instead of propagating
// NaN.
func CallPrice(stockPrice, strike, rate, timeToExpiry, sigma float64) (float64, error) {
	if stockPrice <= 0 || strike <= 0 || timeToExpiry <= 0 || sigma <= 0 {
		return 0, fmt.Errorf("CallPrice: S=%v, K=%v, T=%v, sigma=%v: %w", stockPrice, strike, timeToExpiry, sigma, InvalidPricingDomainErr)
	}

	sigmaSqrtT := sigma * math.Sqrt(timeToExpiry)
	d1 := (math.Log(stockPrice/strike) + (rate+0.5*sigma*sigma)*timeToExpiry) / sigmaSqrtT
	d2 := d1 - sigmaSqrtT

	price := stockPrice*NormCDF(d1) - strike*math.Exp(-rate*timeToExpiry)*NormCDF(d2)

	return math.Max(price, math.Max(stockPrice-strike, 0)), nil
}

// PutFromParity derives the put price via C - P = S - K + r_c. Pure; callers
// ensure the inputs are finite.
func PutFromParity(callPrice, stockPrice, strike, interestComponent float64) float64 {
	return callPrice - stockPrice + strike - interestComponent
}
