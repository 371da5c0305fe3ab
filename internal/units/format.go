package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Precision returns the number of decimals a result of c is shown with.
func Precision(c Category) int {
	if c == Temperature {
		return 2
	}
	return 4
}

// FormatValue renders an entered value as the shortest decimal that
// round-trips, always with a fractional part: 1 -> "1.0", 0.1 -> "0.1".
func FormatValue(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// FormatResult renders a history line: "{value} {from} → {result} {to}".
func FormatResult(c Category, value float64, from Unit, result float64, to Unit) string {
	return format(c, value, from, "→", result, to)
}

// FormatEquation renders the line shown after a convert action:
// "{value} {from} = {result} {to}".
func FormatEquation(c Category, value float64, from Unit, result float64, to Unit) string {
	return format(c, value, from, "=", result, to)
}

func format(c Category, value float64, from Unit, sep string, result float64, to Unit) string {
	return fmt.Sprintf("%s %s %s %.*f %s", FormatValue(value), from, sep, Precision(c), result, to)
}
