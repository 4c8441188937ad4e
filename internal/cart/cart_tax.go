package cart

import (
	"math"
	"strings"
)

// Alcohol is not a first-class item attribute; the menu data only carries
// names, so classification is a substring match against this keyword set.
var defaultAlcoholKeywords = []string{
	"bia", "beer", "heineken", "tiger", "saigon", "333",
	"rượu", "wine", "whisky", "vodka",
}

// TaxCalculator splits cart lines into food and alcohol and applies the VND
// VAT rates per category: 8% on food, 10% on alcohol, each rounded to the
// nearest dong before summing.
type TaxCalculator struct {
	FoodRate    float64
	AlcoholRate float64
	Keywords    []string
}

func NewTaxCalculator() TaxCalculator {
	return TaxCalculator{
		FoodRate:    0.08,
		AlcoholRate: 0.10,
		Keywords:    defaultAlcoholKeywords,
	}
}

// IsAlcohol reports whether the line name matches any alcohol keyword,
// case-insensitively.
func (t TaxCalculator) IsAlcohol(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range t.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Subtotals returns the pre-tax food and alcohol subtotals.
func (t TaxCalculator) Subtotals(lines []Line) (food, alcohol int64) {
	for _, line := range lines {
		amount := line.UnitPrice * int64(line.Quantity)
		if t.IsAlcohol(line.Name) {
			alcohol += amount
		} else {
			food += amount
		}
	}
	return food, alcohol
}

// TaxTotal is the summed per-category VAT for the given lines.
func (t TaxCalculator) TaxTotal(lines []Line) int64 {
	food, alcohol := t.Subtotals(lines)
	return roundVND(float64(food)*t.FoodRate) + roundVND(float64(alcohol)*t.AlcoholRate)
}

func roundVND(v float64) int64 {
	return int64(math.Round(v))
}
