package common

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f as the shortest decimal that round-trips, always
// with at least one fractional digit. Magnitudes outside [1e-3, 1e7) use
// scientific notation with an upper-case E and no exponent padding, e.g. 1.0E7.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		// strconv always emits a well-formed exponent
		return s
	}
	return mantissa + "E" + strconv.Itoa(n)
}
