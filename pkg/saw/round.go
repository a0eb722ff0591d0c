package saw

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Precision is the number of decimal digits every pipeline stage rounds to.
const Precision = 6

// Round rounds x to the given number of decimal digits by formatting it with
// FormatFixed and parsing the text back. Rounding happens on the exact binary
// value of x, with ties going away from zero. NaN and infinities pass through.
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(FormatFixed(x, digits), 64)
	if err != nil {
		return x
	}
	return v
}

// Round6 rounds x to Precision digits.
func Round6(x float64) float64 {
	return Round(x, Precision)
}

// FormatFixed formats x with exactly digits decimals.
func FormatFixed(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	if digits < 0 {
		digits = 0
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	scaled := new(big.Rat).SetFloat64(x)
	scaled.Mul(scaled, new(big.Rat).SetInt(scale))

	n, rem := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))
	// rem/denom >= 1/2 rounds up
	if rem.Lsh(rem, 1).Cmp(scaled.Denom()) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	s := n.String()
	if digits == 0 {
		return sign + s
	}
	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}
	return sign + s[:len(s)-digits] + "." + s[len(s)-digits:]
}
