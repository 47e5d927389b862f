package controller

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v as a decimal float: whole values keep a trailing
// ".0", very large or very small magnitudes switch to exponent form.
func FormatFloat(v float64) string {
	abs := math.Abs(v)
	if math.IsNaN(v) || math.IsInf(v, 0) || (abs != 0 && (abs >= 1e16 || abs < 1e-4)) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
