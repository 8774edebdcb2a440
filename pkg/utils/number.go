package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace arredonda valores monetários para duas casas sobre o valor binário exato
// do float (1.005 é 1.00499... e vira 1.00). Empates exatos vão para longe do zero.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	rounded := decimal.NewFromFloatWithExponent(f, -2)
	if rounded.IsZero() {
		return 0
	}

	return rounded.InexactFloat64()
}
