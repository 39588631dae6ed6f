package repository

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "oneportfolio/internal/errors"
	"oneportfolio/internal/models"
	"oneportfolio/internal/validate"
)

// preferencesRepository handles key-value preference storage.
type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository creates a new PreferencesRepository.
func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

// Get returns the stored value for key and whether it was present.
func (r *preferencesRepository) Get(key models.PreferenceKey) (string, bool, error) {
	var pref models.Preference
	err := r.db.Where("key = ?", key).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return pref.Value, true, nil
}

// Set upserts the value for key; a prior value is always replaced.
func (r *preferencesRepository) Set(key models.PreferenceKey, value string) error {
	pref := models.Preference{Key: key, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&pref).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (r *preferencesRepository) Delete(key models.PreferenceKey) error {
	if err := r.db.Where("key = ?", key).Delete(&models.Preference{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

// GetAll returns every stored preference keyed by preference key.
func (r *preferencesRepository) GetAll() (map[models.PreferenceKey]string, error) {
	var prefs []models.Preference
	if err := r.db.Find(&prefs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	result := make(map[models.PreferenceKey]string, len(prefs))
	for _, p := range prefs {
		result[p.Key] = p.Value
	}
	return result, nil
}

// DeleteAll removes every preference row. Used by the "Clear All Data" flow.
func (r *preferencesRepository) DeleteAll() error {
	if err := r.db.Exec("DELETE FROM user_preferences").Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

// HasCompletedOnboarding defaults to false when unset.
func (r *preferencesRepository) HasCompletedOnboarding() (bool, error) {
	value, ok, err := r.Get(models.PrefHasCompletedOnboarding)
	if err != nil {
		return false, err
	}
	return ok && value == "true", nil
}

// SetHasCompletedOnboarding stores the onboarding flag.
func (r *preferencesRepository) SetHasCompletedOnboarding(value bool) error {
	return r.Set(models.PrefHasCompletedOnboarding, strconv.FormatBool(value))
}

// BaseCurrency returns the chosen display currency, or ok=false when no
// currency has been chosen yet.
func (r *preferencesRepository) BaseCurrency() (string, bool, error) {
	return r.Get(models.PrefBaseCurrency)
}

// SetBaseCurrency stores the display currency after ISO 4217 validation.
func (r *preferencesRepository) SetBaseCurrency(currency string) error {
	if err := validate.Var(currency, "required,iso4217"); err != nil {
		return err
	}
	return r.Set(models.PrefBaseCurrency, currency)
}

// NotificationsEnabled defaults to true when unset.
func (r *preferencesRepository) NotificationsEnabled() (bool, error) {
	value, ok, err := r.Get(models.PrefNotificationsEnabled)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return value != "false", nil
}

// SetNotificationsEnabled stores the notifications flag.
func (r *preferencesRepository) SetNotificationsEnabled(value bool) error {
	return r.Set(models.PrefNotificationsEnabled, strconv.FormatBool(value))
}

// AutoRefreshEnabled defaults to false when unset.
func (r *preferencesRepository) AutoRefreshEnabled() (bool, error) {
	value, ok, err := r.Get(models.PrefAutoRefreshEnabled)
	if err != nil {
		return false, err
	}
	return ok && value == "true", nil
}

// SetAutoRefreshEnabled stores the auto-refresh flag.
func (r *preferencesRepository) SetAutoRefreshEnabled(value bool) error {
	return r.Set(models.PrefAutoRefreshEnabled, strconv.FormatBool(value))
}
