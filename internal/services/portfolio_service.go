package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/models"
	"depotlens/internal/pagination"
)

var hundred = decimal.NewFromInt(100)

// portfolioService handles portfolio entry business logic.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// ListEntries returns a paginated list of entries, most recent purchase first.
func (s *portfolioService) ListEntries(page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioEntry], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.PortfolioEntry{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.PortfolioEntry
	if err := base.Order("purchase_date DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// AllEntries returns every entry ordered by purchase date.
func (s *portfolioService) AllEntries() ([]models.PortfolioEntry, error) {
	var entries []models.PortfolioEntry
	if err := s.db.Order("purchase_date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}

// GetEntry returns an entry by its ID.
func (s *portfolioService) GetEntry(id string) (*models.PortfolioEntry, error) {
	var entry models.PortfolioEntry
	if err := s.db.Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// CreateEntry stores a new entry. The total value is price times quantity.
func (s *portfolioService) CreateEntry(in EntryInput) (*models.PortfolioEntry, error) {
	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	if in.PurchaseDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase date is required")
	}
	if in.PurchasePrice.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase price must not be negative")
	}
	if !in.Quantity.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be positive")
	}

	entry := models.NewPortfolioEntry(symbol, strings.TrimSpace(in.CompanyName), in.PurchaseDate, in.PurchasePrice, in.Quantity)
	entry.Currency = in.Currency
	if entry.Currency == "" {
		entry.Currency = "EUR"
	}
	if in.Source != "" {
		entry.Source = in.Source
	}
	entry.Confidence = in.Confidence

	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}

// DeleteEntry soft-deletes an entry.
func (s *portfolioService) DeleteEntry(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.PortfolioEntry{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrEntryNotFound
	}
	return nil
}

// ClearEntries soft-deletes every entry and returns how many were removed.
func (s *portfolioService) ClearEntries() (int64, error) {
	result := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.PortfolioEntry{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected, nil
}

// GetStats sums invested and current values. Profit/loss is only reported
// once at least one entry carries a current price.
func (s *portfolioService) GetStats() (*PortfolioStats, error) {
	entries, err := s.AllEntries()
	if err != nil {
		return nil, err
	}

	invested, current := decimal.Zero, decimal.Zero
	for i := range entries {
		invested = invested.Add(entries[i].TotalValue)
		if entries[i].CurrentValue.Valid {
			current = current.Add(entries[i].CurrentValue.Decimal)
		}
	}

	profitLoss, percent := decimal.Zero, decimal.Zero
	if !current.IsZero() {
		profitLoss = current.Sub(invested)
	}
	if invested.IsPositive() {
		percent = profitLoss.Div(invested).Mul(hundred)
	}

	return &PortfolioStats{
		TotalEntries:           len(entries),
		TotalInvested:          invested.Round(2),
		CurrentValue:           current.Round(2),
		TotalProfitLoss:        profitLoss.Round(2),
		TotalProfitLossPercent: percent.Round(2),
	}, nil
}

// ApplyPrices sets the current price of every entry whose symbol has a price
// and returns the number of updated entries.
func (s *portfolioService) ApplyPrices(prices map[string]decimal.Decimal, at time.Time) (int, error) {
	updated := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var entries []models.PortfolioEntry
		if err := tx.Find(&entries).Error; err != nil {
			return err
		}
		for i := range entries {
			price, ok := prices[strings.ToUpper(entries[i].Symbol)]
			if !ok {
				continue
			}
			entries[i].UpdateCurrentPrice(price, at)
			if err := tx.Model(&entries[i]).Select("current_price", "current_value", "last_updated").Updates(&entries[i]).Error; err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return updated, nil
}
