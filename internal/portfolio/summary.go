package portfolio

import (
	"math"
	"sort"

	"oneportfolio/internal/models"
)

// Allocation is one category's share of the total portfolio value.
type Allocation struct {
	Category   models.Category `json:"category"`
	Value      float64         `json:"value"`
	Percentage float64         `json:"percentage"`
}

// TotalValue sums Value over all assets.
func TotalValue(assets []models.Asset) float64 {
	var total float64
	for _, a := range assets {
		total += Value(a)
	}
	return total
}

// Allocations groups assets by category and computes each category's rounded
// share of the total value, sorted by descending percentage. When the total
// is zero every percentage is 0. Ties sort by value, then category id, so the
// result is deterministic.
func Allocations(assets []models.Asset) []Allocation {
	if len(assets) == 0 {
		return nil
	}

	totals := make(map[models.Category]float64)
	for _, a := range assets {
		totals[a.Category] += Value(a)
	}

	grandTotal := TotalValue(assets)

	allocations := make([]Allocation, 0, len(totals))
	for category, value := range totals {
		percentage := 0.0
		if grandTotal > 0 {
			percentage = math.Round(value / grandTotal * 100)
		}
		allocations = append(allocations, Allocation{
			Category:   category,
			Value:      value,
			Percentage: percentage,
		})
	}

	sort.Slice(allocations, func(i, j int) bool {
		if allocations[i].Percentage != allocations[j].Percentage {
			return allocations[i].Percentage > allocations[j].Percentage
		}
		if allocations[i].Value != allocations[j].Value {
			return allocations[i].Value > allocations[j].Value
		}
		return allocations[i].Category < allocations[j].Category
	})

	return allocations
}
