package portfolio

import "oneportfolio/internal/models"

// Metadata is the static display metadata for an asset category.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IconColor   string `json:"icon_color"`
	BgColor     string `json:"bg_color"`
}

// CategoryMetadata returns the display metadata for a category. The second
// return value is false for unrecognized categories; callers must supply
// their own fallback.
func CategoryMetadata(category models.Category) (Metadata, bool) {
	switch category {
	case models.CategoryStockETF:
		return Metadata{
			Name:        "Stock/ETF",
			Description: "Publicly traded companies and funds.",
			Icon:        "📈",
			IconColor:   "#3B82F6",
			BgColor:     "#EBF4FF",
		}, true
	case models.CategoryGold:
		return Metadata{
			Name:        "Gold",
			Description: "Precious metals and commodities.",
			Icon:        "💰",
			IconColor:   "#D97706",
			BgColor:     "#FEF9E7",
		}, true
	case models.CategoryFixedIncome:
		return Metadata{
			Name:        "Fixed Income",
			Description: "Bonds, CDs, and debt instruments.",
			Icon:        "🏛️",
			IconColor:   "#059669",
			BgColor:     "#ECFDF5",
		}, true
	case models.CategoryRealEstate:
		return Metadata{
			Name:        "Real Estate",
			Description: "Residential or commercial properties.",
			Icon:        "🏠",
			IconColor:   "#EA580C",
			BgColor:     "#FFF4ED",
		}, true
	case models.CategoryCash:
		return Metadata{
			Name:        "Cash",
			Description: "Savings, checking, or emergency funds.",
			Icon:        "💵",
			IconColor:   "#3B82F6",
			BgColor:     "#EBF4FF",
		}, true
	case models.CategoryPhysicalAsset:
		return Metadata{
			Name:        "Physical Asset",
			Description: "Collectibles, vehicles, or art.",
			Icon:        "🚗",
			IconColor:   "#9333EA",
			BgColor:     "#F5F3FF",
		}, true
	case models.CategoryCrypto:
		return Metadata{
			Name:        "Crypto",
			Description: "Bitcoin, Ethereum, and other coins.",
			Icon:        "₿",
			IconColor:   "#FA7316",
			BgColor:     "#FFF7ED",
		}, true
	}
	return Metadata{}, false
}
