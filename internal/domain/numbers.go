package domain

import (
	"fmt"
	"math"
	"strconv"

	m "fenum.dev/pkg/fenum/internal/model"
)

// NumbersBanner is the fixed line printed before the numeric series.
const NumbersBanner = "Numbers in string 1 2.3"

// SeriesLength is the size of the fixed range the series is computed over.
const SeriesLength = 10

// Literals is a syntax-reference fixture of numeric literal forms. Nothing
// reads it except the numbers command.
var Literals = struct {
	Int         int
	NegativeInt int
	Hex         int64
	Float       float64
	BigFloat    float64
}{
	Int:         123,
	NegativeInt: -123,
	Hex:         0xf45,
	Float:       -123e-45,
	BigFloat:    123e45,
}

// Series returns (i+i)^i for i in [0, n).
func Series(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	values := make([]float64, 0, n)
	for i := range n {
		values = append(values, math.Pow(float64(i+i), float64(i)))
	}

	return values
}

// LiteralTable renders the Literals fixture for display.
func LiteralTable() []m.Literal {
	return []m.Literal{
		{Name: "int", Value: strconv.Itoa(Literals.Int)},
		{Name: "negative int", Value: strconv.Itoa(Literals.NegativeInt)},
		{Name: "hex", Value: fmt.Sprintf("%#x (%d)", Literals.Hex, Literals.Hex)},
		{Name: "float", Value: strconv.FormatFloat(Literals.Float, 'g', -1, 64)},
		{Name: "big float", Value: strconv.FormatFloat(Literals.BigFloat, 'g', -1, 64)},
	}
}
