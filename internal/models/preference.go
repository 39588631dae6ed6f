package models

// PreferenceKey enumerates the known preference keys.
type PreferenceKey string

const (
	PrefHasCompletedOnboarding PreferenceKey = "hasCompletedOnboarding"
	PrefBaseCurrency           PreferenceKey = "baseCurrency"
	PrefNotificationsEnabled   PreferenceKey = "notificationsEnabled"
	PrefAutoRefreshEnabled     PreferenceKey = "autoRefreshEnabled"
)

// Preference is a single key/value row in the user_preferences table.
// Writes use upsert semantics; a missing key means the documented default.
type Preference struct {
	Key   PreferenceKey `gorm:"primaryKey;column:key" json:"key"`
	Value string        `gorm:"not null" json:"value"`
}

// TableName overrides the default GORM table name.
func (Preference) TableName() string { return "user_preferences" }
