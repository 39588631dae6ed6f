package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "oneportfolio/internal/errors"
	"oneportfolio/internal/models"
)

// priceCacheRepository handles cached ticker prices.
type priceCacheRepository struct {
	db *gorm.DB
}

// NewPriceCacheRepository creates a new PriceCacheRepository.
func NewPriceCacheRepository(db *gorm.DB) PriceCacheRepository {
	return &priceCacheRepository{db: db}
}

// Put upserts a cache entry keyed by uppercased ticker. A zero FetchedAt is
// stamped with the current time.
func (r *priceCacheRepository) Put(entry models.PriceEntry) error {
	entry.Ticker = strings.ToUpper(strings.TrimSpace(entry.Ticker))
	if entry.Ticker == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Ticker is required")
	}
	if entry.Price < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Price must not be negative")
	}
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now().UTC()
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "change_amount", "change_percentage", "fetched_at"}),
	}).Create(&entry).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

// Get returns the cached entry for ticker regardless of age, or (nil, nil)
// when absent.
func (r *priceCacheRepository) Get(ticker string) (*models.PriceEntry, error) {
	var entry models.PriceEntry
	err := r.db.Where("ticker = ?", strings.ToUpper(ticker)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &entry, nil
}

// GetFresh returns the cached entry only if it was fetched within maxAge;
// stale or missing entries yield (nil, nil).
func (r *priceCacheRepository) GetFresh(ticker string, maxAge time.Duration) (*models.PriceEntry, error) {
	entry, err := r.Get(ticker)
	if err != nil || entry == nil {
		return nil, err
	}
	if time.Since(entry.FetchedAt) > maxAge {
		return nil, nil
	}
	return entry, nil
}

// Delete removes the cache entry for ticker. Absent tickers are not an error.
func (r *priceCacheRepository) Delete(ticker string) error {
	err := r.db.Where("ticker = ?", strings.ToUpper(ticker)).Delete(&models.PriceEntry{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

// DeleteAll removes every cache entry. Used by the "Clear All Data" flow.
func (r *priceCacheRepository) DeleteAll() error {
	if err := r.db.Exec("DELETE FROM price_cache").Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

// Purge removes entries fetched before olderThan and returns how many were
// deleted.
func (r *priceCacheRepository) Purge(olderThan time.Time) (int64, error) {
	result := r.db.Where("fetched_at < ?", olderThan).Delete(&models.PriceEntry{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternal, result.Error)
	}
	return result.RowsAffected, nil
}
