package emblem

import (
	"math"
	"strconv"
	"strings"
)

// Decimals is the number of decimal places kept in every emitted coordinate.
// Enough to keep adjacent segments visually seamless while hiding
// floating-point noise.
const Decimals = 10

var roundScale = math.Pow(10, Decimals)

// Round rounds x to Decimals places.
func Round(x float64) float64 {
	r := math.Round(x*roundScale) / roundScale
	if r == 0 {
		return 0 // drop the sign of -0
	}
	return r
}

// FormatNumber renders x rounded to Decimals places in its shortest form.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(Round(x), 'f', -1, 64)
}

// formatFields joins a command letter and its numeric operands the way path
// data is written: "l 1.5 -2".
func formatFields(cmd byte, nums ...float64) string {
	var sb strings.Builder
	sb.WriteByte(cmd)
	for _, n := range nums {
		sb.WriteByte(' ')
		sb.WriteString(FormatNumber(n))
	}
	return sb.String()
}

func flagValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
