package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"depotlens/internal/uuid"
)

// PriceRecord is a quote observed during a price refresh.
// This is immutable time-series data, so there is no Base embed and no soft delete.
type PriceRecord struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"id"`
	Symbol     string          `gorm:"not null;uniqueIndex:uq_price_records_symbol_recorded_at" json:"symbol"`
	Price      decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"price"`
	Currency   string          `json:"currency,omitempty"`
	Provider   string          `json:"provider"`
	RecordedAt time.Time       `gorm:"not null;uniqueIndex:uq_price_records_symbol_recorded_at" json:"recorded_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (p *PriceRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}
