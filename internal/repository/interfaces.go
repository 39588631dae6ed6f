// Package repository implements CRUD access to the assets, user_preferences
// and price_cache tables. Repositories never cache rows; every read goes to
// the store, so callers always observe the latest committed state.
package repository

import (
	"time"

	"oneportfolio/internal/models"
)

// AssetRepository defines the contract for asset persistence.
//
// GetByID and GetByTicker return (nil, nil) for a missing row; Update and
// Delete return ASSET_NOT_FOUND when the target id does not exist.
type AssetRepository interface {
	InsertListed(input models.CreateListedAssetInput) (*models.Asset, error)
	InsertCustom(input models.CreateCustomAssetInput) (*models.Asset, error)
	GetAll() ([]models.Asset, error)
	GetByID(id string) (*models.Asset, error)
	GetByTicker(ticker string) (*models.Asset, error)
	Update(id string, patch models.AssetPatch) (*models.Asset, error)
	Delete(id string) error
	Count() (int64, error)
	DeleteAll() error
}

// PreferencesRepository defines the key-value contract over user_preferences.
type PreferencesRepository interface {
	Get(key models.PreferenceKey) (string, bool, error)
	Set(key models.PreferenceKey, value string) error
	Delete(key models.PreferenceKey) error
	GetAll() (map[models.PreferenceKey]string, error)
	DeleteAll() error

	// Typed wrappers with documented defaults for absent keys.
	HasCompletedOnboarding() (bool, error)
	SetHasCompletedOnboarding(value bool) error
	BaseCurrency() (string, bool, error)
	SetBaseCurrency(currency string) error
	NotificationsEnabled() (bool, error)
	SetNotificationsEnabled(value bool) error
	AutoRefreshEnabled() (bool, error)
	SetAutoRefreshEnabled(value bool) error
}

// PriceCacheRepository defines access to cached ticker prices. The cache is
// written by the app shell's price source; this layer only stores and ages it.
type PriceCacheRepository interface {
	Put(entry models.PriceEntry) error
	Get(ticker string) (*models.PriceEntry, error)
	GetFresh(ticker string, maxAge time.Duration) (*models.PriceEntry, error)
	Delete(ticker string) error
	DeleteAll() error
	Purge(olderThan time.Time) (int64, error)
}
