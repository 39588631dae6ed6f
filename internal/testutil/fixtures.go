package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"oneportfolio/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestListedAsset inserts a listed asset row directly, bypassing the
// repository, with a unique ticker.
func CreateTestListedAsset(t *testing.T, db *gorm.DB) *models.Asset {
	t.Helper()
	ticker := fmt.Sprintf("TST%d", nextID())
	return CreateTestListedAssetWithParams(t, db, ticker, 10, 100, models.CategoryStockETF)
}

// CreateTestListedAssetWithParams inserts a listed asset with the given
// ticker, quantity, per-unit price and category.
func CreateTestListedAssetWithParams(t *testing.T, db *gorm.DB, ticker string, quantity, price float64, category models.Category) *models.Asset {
	t.Helper()

	now := time.Now().UTC()
	asset := &models.Asset{
		Kind:         models.KindListed,
		Ticker:       &ticker,
		Name:         ticker,
		Quantity:     quantity,
		CurrentPrice: price,
		Category:     category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test listed asset: %v", err)
	}
	return asset
}

// CreateTestCustomAsset inserts a custom asset row with the given total value
// and category.
func CreateTestCustomAsset(t *testing.T, db *gorm.DB, value float64, category models.Category) *models.Asset {
	t.Helper()

	now := time.Now().UTC()
	asset := &models.Asset{
		Kind:         models.KindCustom,
		Name:         fmt.Sprintf("Test Asset %d", nextID()),
		Quantity:     1,
		CurrentPrice: value,
		Category:     category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test custom asset: %v", err)
	}
	return asset
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 { return &v }

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }
