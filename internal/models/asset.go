package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kind distinguishes market-traded assets from user-valued ones.
type Kind string

const (
	// KindListed is a market-traded instrument priced per unit (stocks, crypto, gold).
	KindListed Kind = "listed"
	// KindCustom is a user-entered asset whose current_price holds the total value.
	KindCustom Kind = "custom"
)

// Category classifies an asset for display and allocation grouping.
// The set is closed; category metadata is static (see internal/portfolio).
type Category string

const (
	CategoryStockETF      Category = "stock-etf"
	CategoryGold          Category = "gold"
	CategoryFixedIncome   Category = "fixed-income"
	CategoryRealEstate    Category = "real-estate"
	CategoryCash          Category = "cash"
	CategoryPhysicalAsset Category = "physical-asset"
	CategoryCrypto        Category = "crypto"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryStockETF,
	CategoryGold,
	CategoryFixedIncome,
	CategoryRealEstate,
	CategoryCash,
	CategoryPhysicalAsset,
	CategoryCrypto,
}

// Valid reports whether c is one of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryStockETF, CategoryGold, CategoryFixedIncome, CategoryRealEstate,
		CategoryCash, CategoryPhysicalAsset, CategoryCrypto:
		return true
	}
	return false
}

// Listable reports whether the category can hold a listed (ticker-tracked) asset.
func (c Category) Listable() bool {
	switch c {
	case CategoryStockETF, CategoryGold, CategoryCrypto:
		return true
	}
	return false
}

// Asset represents an asset row as stored in the assets table.
//
// Invariants: custom assets have a nil ticker, quantity fixed at 1 and a nil
// purchase price; listed assets carry a non-empty uppercase ticker.
type Asset struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Kind          Kind      `gorm:"column:type;not null" json:"type"`
	Ticker        *string   `json:"ticker"`
	Name          string    `gorm:"not null" json:"name"`
	Quantity      float64   `gorm:"not null;default:0" json:"quantity"`
	PurchasePrice *float64  `gorm:"column:purchase_price" json:"purchase_price"`
	CurrentPrice  float64   `gorm:"column:current_price;not null;default:0" json:"current_price"`
	Category      Category  `gorm:"column:asset_category;not null" json:"asset_category"`
	MaturityDate  *string   `gorm:"column:maturity_date" json:"maturity_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides the default GORM table name.
func (Asset) TableName() string { return "assets" }

// BeforeCreate hook generates a UUID for new records
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// CreateListedAssetInput is the data required to insert a listed asset.
// CurrentPrice may be 0 when the price is not yet known.
type CreateListedAssetInput struct {
	Ticker        string   `validate:"required"`
	Name          string
	Quantity      float64  `validate:"required,gt=0"`
	PurchasePrice *float64 `validate:"omitempty,gte=0"`
	CurrentPrice  float64  `validate:"gte=0"`
	Category      Category `validate:"required,listed_category"`
}

// CreateCustomAssetInput is the data required to insert a custom asset.
// CurrentPrice is the asset's total value, so it must be positive.
type CreateCustomAssetInput struct {
	Name         string   `validate:"required"`
	CurrentPrice float64  `validate:"required,gt=0"`
	Category     Category `validate:"required,asset_category"`
	MaturityDate *string  `validate:"omitempty,datetime=2006-01-02"`
}

// AssetPatch describes a partial update. Nil fields are left untouched;
// non-nil fields are written. Ticker and Kind are immutable and deliberately
// absent.
type AssetPatch struct {
	Name          *string
	Quantity      *float64
	PurchasePrice *float64
	CurrentPrice  *float64
	Category      *Category
	MaturityDate  *string
}

// Changes maps the patch onto a whitelist of column assignments. Only known
// columns can ever appear in the result, which keeps the UPDATE builder safe
// by construction.
func (p AssetPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Quantity != nil {
		changes["quantity"] = *p.Quantity
	}
	if p.PurchasePrice != nil {
		changes["purchase_price"] = *p.PurchasePrice
	}
	if p.CurrentPrice != nil {
		changes["current_price"] = *p.CurrentPrice
	}
	if p.Category != nil {
		changes["asset_category"] = *p.Category
	}
	if p.MaturityDate != nil {
		changes["maturity_date"] = *p.MaturityDate
	}
	return changes
}
