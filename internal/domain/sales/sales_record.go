package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// SalesRecord is an append-only record of one over-the-counter sale of a
// finished good. Records are never updated or deleted.
type SalesRecord struct {
	shared.BaseEntity
	FinishedGoodID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	FinishedGoodName string           `gorm:"type:varchar(200);not null"`
	Unit             valueobject.Unit `gorm:"type:varchar(10);not null"`
	Quantity         decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	PricePerUnit     decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	TotalRevenue     decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	SoldBy           string           `gorm:"type:varchar(200);not null"`
	SoldAt           time.Time        `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SalesRecord) TableName() string {
	return "sales_records"
}

// NewSalesRecord validates and builds one sale record. TotalRevenue is
// derived here so it never drifts from quantity x price.
func NewSalesRecord(goodID uuid.UUID, goodName string, unit valueobject.Unit, quantity, pricePerUnit decimal.Decimal, soldBy string) (*SalesRecord, error) {
	if goodID == uuid.Nil || goodName == "" {
		return nil, shared.NewDomainError("INVALID_GOOD", "Sold good reference cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Sale quantity must be positive")
	}
	if pricePerUnit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price per unit cannot be negative")
	}
	return &SalesRecord{
		BaseEntity:       shared.NewBaseEntity(),
		FinishedGoodID:   goodID,
		FinishedGoodName: goodName,
		Unit:             unit,
		Quantity:         quantity,
		PricePerUnit:     pricePerUnit,
		TotalRevenue:     quantity.Mul(pricePerUnit),
		SoldBy:           soldBy,
		SoldAt:           time.Now(),
	}, nil
}
