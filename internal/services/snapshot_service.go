package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/models"
	"depotlens/internal/pagination"
)

// snapshotService handles portfolio snapshot operations.
type snapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db}
}

// RecordSnapshot stores the portfolio's invested and market value at recordedAt.
// An existing snapshot at the same time is overwritten.
func (s *snapshotService) RecordSnapshot(recordedAt time.Time) (*models.PortfolioSnapshot, error) {
	var entries []models.PortfolioEntry
	if err := s.db.Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	snapshot := &models.PortfolioSnapshot{
		RecordedAt:    recordedAt,
		EntryCount:    len(entries),
		TotalInvested: decimal.Zero,
		CurrentValue:  decimal.Zero,
	}
	for i := range entries {
		snapshot.TotalInvested = snapshot.TotalInvested.Add(entries[i].TotalValue)
		snapshot.CurrentValue = snapshot.CurrentValue.Add(entries[i].MarketValue())
	}

	var existing models.PortfolioSnapshot
	err := s.db.Where("recorded_at = ?", recordedAt).First(&existing).Error
	switch {
	case err == nil:
		if err := s.db.Model(&existing).Updates(map[string]interface{}{
			"entry_count":    snapshot.EntryCount,
			"total_invested": snapshot.TotalInvested,
			"current_value":  snapshot.CurrentValue,
		}).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		snapshot.ID = existing.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(snapshot).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return snapshot, nil
}

// GetSnapshots returns paginated snapshots within a date range, newest first.
func (s *snapshotService) GetSnapshots(from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.PortfolioSnapshot{}).
		Where("recorded_at >= ? AND recorded_at <= ?", from, to)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.PortfolioSnapshot
	if err := base.Order("recorded_at DESC").Scopes(pagination.Paginate(page)).Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}
