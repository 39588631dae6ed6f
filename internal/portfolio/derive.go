// Package portfolio contains pure derivation functions over stored asset
// rows: per-asset value, gain/loss, display units, category metadata, and
// portfolio-level aggregates. Nothing in this package performs I/O.
package portfolio

import (
	"strings"

	"oneportfolio/internal/models"
)

// Value returns the total value of an asset. For custom assets current_price
// already is the total value; for listed assets it is quantity times the
// per-unit price.
func Value(asset models.Asset) float64 {
	if asset.Kind == models.KindCustom {
		return asset.CurrentPrice
	}
	return asset.Quantity * asset.CurrentPrice
}

// GainLoss is the unrealized gain or loss on an asset against its cost basis.
type GainLoss struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// ComputeGainLoss returns the gain/loss for an asset, or nil when the
// purchase price is unset or zero (cost basis unknown or degenerate).
func ComputeGainLoss(asset models.Asset) *GainLoss {
	if asset.PurchasePrice == nil || *asset.PurchasePrice == 0 {
		return nil
	}

	totalValue := Value(asset)
	totalCost := asset.Quantity * *asset.PurchasePrice
	amount := totalValue - totalCost

	return &GainLoss{
		Amount:     amount,
		Percentage: amount / totalCost * 100,
	}
}

// unitsByCategory maps each category to its default units label. Crypto is
// overridden by the ticker in Units.
var unitsByCategory = map[models.Category]string{
	models.CategoryStockETF:      "shares",
	models.CategoryCrypto:        "units",
	models.CategoryGold:          "oz",
	models.CategoryRealEstate:    "property",
	models.CategoryFixedIncome:   "bond",
	models.CategoryCash:          "account",
	models.CategoryPhysicalAsset: "item",
}

// Units returns the display units for an asset. Crypto assets use their
// ticker symbol (BTC, ETH); everything else uses a per-category label, with
// "units" as the fallback for unrecognized categories.
func Units(asset models.Asset) string {
	if asset.Category == models.CategoryCrypto && asset.Ticker != nil && *asset.Ticker != "" {
		return strings.ToUpper(*asset.Ticker)
	}
	if label, ok := unitsByCategory[asset.Category]; ok {
		return label
	}
	return "units"
}
