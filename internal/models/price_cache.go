package models

import "time"

// PriceEntry is a cached market price for a ticker. Entries are written by
// whatever price source the app shell uses and read back until they go stale;
// the persistence core never fetches prices itself.
type PriceEntry struct {
	Ticker           string    `gorm:"primaryKey" json:"ticker"`
	Price            float64   `gorm:"not null" json:"price"`
	ChangeAmount     *float64  `gorm:"column:change_amount" json:"change_amount"`
	ChangePercentage *float64  `gorm:"column:change_percentage" json:"change_percentage"`
	FetchedAt        time.Time `gorm:"column:fetched_at;not null" json:"fetched_at"`
}

// TableName overrides the default GORM table name.
func (PriceEntry) TableName() string { return "price_cache" }
