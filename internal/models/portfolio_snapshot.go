package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"depotlens/internal/uuid"
)

// PortfolioSnapshot is the portfolio's invested and market value at one point in time.
// This is immutable time-series data, so there is no Base embed and no soft delete.
type PortfolioSnapshot struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"id"`
	RecordedAt    time.Time       `gorm:"not null;uniqueIndex" json:"recorded_at"`
	EntryCount    int             `gorm:"not null" json:"entry_count"`
	TotalInvested decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"total_invested"`
	CurrentValue  decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"current_value"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (p *PortfolioSnapshot) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}
