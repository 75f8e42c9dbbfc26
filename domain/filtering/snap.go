package filtering

import (
	"math"
	"strconv"
	"strings"
)

// Snap rounds raw to the nearest multiple of step and returns the decimal
// value that multiple displays as, so 35 steps of 0.01 give exactly 0.35.
// The result is clamped to [0, 1]. A non-positive step returns raw clamped.
func Snap(raw, step float64) float64 {
	v := raw
	if step > 0 {
		s := strconv.FormatFloat(step, 'f', -1, 64)
		decimals := 0
		if i := strings.IndexByte(s, '.'); i >= 0 {
			decimals = len(s) - i - 1
		}
		// Format at the step's precision to drop the float product's error.
		v, _ = strconv.ParseFloat(strconv.FormatFloat(math.Round(raw/step)*step, 'f', decimals, 64), 64)
	}
	return math.Min(1, math.Max(0, v))
}
