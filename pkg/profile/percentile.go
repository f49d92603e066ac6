package profile

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// LinearPercentile interpolates between the two closest order statistics at
// rank (n-1)*p/100, matching the common dataframe definition.
func LinearPercentile(input stats.Float64Data, percent float64) (float64, error) {
	n := input.Len()
	if n == 0 {
		return math.NaN(), stats.ErrEmptyInput
	}
	if percent < 0 || percent > 100 {
		return math.NaN(), stats.ErrBounds
	}
	c := make([]float64, n)
	copy(c, input)
	sort.Float64s(c)

	rank := float64(n-1) * percent / 100
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return c[lo], nil
	}
	frac := rank - float64(lo)
	return c[lo] + (c[hi]-c[lo])*frac, nil
}
