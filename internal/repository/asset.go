package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "oneportfolio/internal/errors"
	"oneportfolio/internal/models"
	"oneportfolio/internal/validate"
)

// assetRepository handles asset persistence.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new AssetRepository.
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

// InsertListed inserts a listed asset (stock, ETF, crypto, gold). The ticker
// is normalized to uppercase and doubles as the default display name. Listed
// assets never carry a maturity date.
func (r *assetRepository) InsertListed(input models.CreateListedAssetInput) (*models.Asset, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	ticker := strings.ToUpper(strings.TrimSpace(input.Ticker))
	if ticker == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Ticker is required")
	}
	name := input.Name
	if name == "" {
		name = ticker
	}

	now := time.Now().UTC()
	asset := &models.Asset{
		Kind:          models.KindListed,
		Ticker:        &ticker,
		Name:          name,
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		CurrentPrice:  input.CurrentPrice,
		Category:      input.Category,
		MaturityDate:  nil,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return r.insert(asset)
}

// InsertCustom inserts a custom asset (real estate, bonds, cash, physical
// items). CurrentPrice already holds the total value, so quantity is fixed at
// 1 and no ticker or purchase price is stored.
func (r *assetRepository) InsertCustom(input models.CreateCustomAssetInput) (*models.Asset, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	asset := &models.Asset{
		Kind:          models.KindCustom,
		Ticker:        nil,
		Name:          input.Name,
		Quantity:      1,
		PurchasePrice: nil,
		CurrentPrice:  input.CurrentPrice,
		Category:      input.Category,
		MaturityDate:  input.MaturityDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return r.insert(asset)
}

// insert persists the row and reads it back, so callers get exactly what any
// later read will return.
func (r *assetRepository) insert(asset *models.Asset) (*models.Asset, error) {
	if err := r.db.Create(asset).Error; err != nil {
		if isConstraintError(err) {
			return nil, apperrors.Wrap(apperrors.ErrConstraint, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	stored, err := r.GetByID(asset.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInternal, "Asset missing after insert")
	}
	return stored, nil
}

// GetAll returns every asset ordered by computed value descending. Custom
// assets have quantity 1, so the expression works for both kinds. Creation
// time breaks ties so the order is deterministic run to run.
func (r *assetRepository) GetAll() ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.
		Order("(quantity * current_price) DESC, created_at ASC, id ASC").
		Find(&assets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return assets, nil
}

// GetByID returns the asset or (nil, nil) when the id is unknown.
func (r *assetRepository) GetByID(id string) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.Where("id = ?", id).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &asset, nil
}

// GetByTicker looks up a listed asset case-insensitively, returning (nil, nil)
// when absent.
func (r *assetRepository) GetByTicker(ticker string) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.Where("ticker = ? COLLATE NOCASE", ticker).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &asset, nil
}

// Update applies only the fields present in the patch and refreshes
// updated_at. An empty patch short-circuits to the current row with no write
// and no updated_at bump.
func (r *assetRepository) Update(id string, patch models.AssetPatch) (*models.Asset, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		existing, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, apperrors.ErrAssetNotFound
		}
		return existing, nil
	}

	changes["updated_at"] = time.Now().UTC()

	result := r.db.Model(&models.Asset{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		if isConstraintError(result.Error) {
			return nil, apperrors.Wrap(apperrors.ErrConstraint, result.Error)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrAssetNotFound
	}

	updated, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.ErrAssetNotFound
	}
	return updated, nil
}

// Delete removes the asset, failing with ASSET_NOT_FOUND when no row matched.
func (r *assetRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Asset{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternal, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

// Count returns the total number of assets.
func (r *assetRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Asset{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return count, nil
}

// DeleteAll removes every asset row. Used by the "Clear All Data" flow.
func (r *assetRepository) DeleteAll() error {
	if err := r.db.Exec("DELETE FROM assets").Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

// validatePatch checks the fields present in a partial update before they are
// flattened into column assignments.
func validatePatch(patch models.AssetPatch) error {
	if patch.Category != nil && !patch.Category.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown asset category")
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must not be negative")
	}
	if patch.CurrentPrice != nil && *patch.CurrentPrice < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Current price must not be negative")
	}
	return nil
}

// isConstraintError checks if an error is a SQLite constraint violation.
func isConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "constraint failed") ||
		strings.Contains(msg, "CHECK constraint") ||
		strings.Contains(msg, "UNIQUE constraint")
}
