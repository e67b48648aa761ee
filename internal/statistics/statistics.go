package statistics

import (
	"fmt"
	"math"
)

// z95 is the two sided 95% normal quantile
const z95 = 1.96

// Proportion tracks how many of a number of independent trials succeeded
type Proportion struct {
	Successes int
	Trials    int
}

// Rate returns the observed success rate
func (p Proportion) Rate() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Successes) / float64(p.Trials)
}

// Variance returns the binomial variance of a single trial at the observed rate
func (p Proportion) Variance() float64 {
	r := p.Rate()
	return r * (1 - r)
}

// StdError returns the standard error of the observed rate
func (p Proportion) StdError() float64 {
	if p.Trials == 0 {
		return 0
	}
	return math.Sqrt(p.Variance() / float64(p.Trials))
}

// ConfidenceInterval95 returns the 95% normal approximation interval for the rate,
// clamped to [0, 1].
func (p Proportion) ConfidenceInterval95() (float64, float64) {
	r := p.Rate()
	margin := z95 * p.StdError()
	return math.Max(0, r-margin), math.Min(1, r+margin)
}

// Validate checks the counts are consistent
func (p Proportion) Validate() error {
	if p.Trials < 0 {
		return fmt.Errorf("negative trial count: %d", p.Trials)
	}
	if p.Successes < 0 || p.Successes > p.Trials {
		return fmt.Errorf("successes %d outside [0, %d]", p.Successes, p.Trials)
	}
	return nil
}
