package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"depotlens/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestOwnerPassword is the plain-text password behind OwnerPasswordHash.
const TestOwnerPassword = "password123"

// OwnerPasswordHash returns a bcrypt hash of TestOwnerPassword.
func OwnerPasswordHash(t *testing.T) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestOwnerPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

// CreateTestEntry creates a manual entry with a unique symbol, 10 units at 100.
func CreateTestEntry(t *testing.T, db *gorm.DB) *models.PortfolioEntry {
	t.Helper()
	return CreateTestEntryWith(t, db, fmt.Sprintf("TST%d", nextID()), decimal.NewFromInt(100), decimal.NewFromInt(10))
}

// CreateTestEntryWith creates a manual entry for symbol bought a month ago.
func CreateTestEntryWith(t *testing.T, db *gorm.DB, symbol string, price, quantity decimal.Decimal) *models.PortfolioEntry {
	t.Helper()

	purchased := time.Now().UTC().AddDate(0, -1, 0).Truncate(24 * time.Hour)
	entry := models.NewPortfolioEntry(symbol, "Test Company "+symbol, purchased, price, quantity)
	entry.Currency = "EUR"
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}

// CreatePricedTestEntry creates an entry that already carries a current price.
func CreatePricedTestEntry(t *testing.T, db *gorm.DB, symbol string, price, quantity, current decimal.Decimal) *models.PortfolioEntry {
	t.Helper()

	entry := CreateTestEntryWith(t, db, symbol, price, quantity)
	entry.UpdateCurrentPrice(current, time.Now().UTC())
	if err := db.Save(entry).Error; err != nil {
		t.Fatalf("failed to price test entry: %v", err)
	}
	return entry
}
