package chrono

import "math"

// divideAndRoundInt divides v by div, rounding half away from zero rather than truncating.
func divideAndRoundInt(v, div int) int {
	return int(math.Round(float64(v) / float64(div)))
}

// addInt64 attempts to add v1 to v2 but reports if the operation would underflow or overflow int64.
func addInt64(v1, v2 int64) (sum int64, underflows, overflows bool) {
	if v2 > 0 {
		v := math.MaxInt64 - v1
		if v < 0 {
			v = -v
		}

		if v < v2 {
			return 0, false, true
		}
	} else if v2 < 0 {
		v := math.MinInt64 + v1
		if v < 0 {
			v = -v
		}

		if -v > v2 { // v < -v2 can't be used because -math.MinInt64 > math.MaxInt64
			return 0, true, false
		}
	}
	return v1 + v2, false, false
}
