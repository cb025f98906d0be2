package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// StockItemKind distinguishes raw ingredients from finished goods.
// Both share the same stock record structure.
type StockItemKind string

const (
	StockItemKindIngredient   StockItemKind = "ingredient"
	StockItemKindFinishedGood StockItemKind = "finished_good"
)

// IsValid checks if the kind is a valid StockItemKind
func (k StockItemKind) IsValid() bool {
	return k == StockItemKindIngredient || k == StockItemKindFinishedGood
}

// String returns the string representation of StockItemKind
func (k StockItemKind) String() string {
	return string(k)
}

// StockItem is the aggregate root for a mutable stock record - an ingredient
// or a finished good. CurrentStock is never persisted via read-modify-write:
// every persisted mutation is a signed relative delta applied by the
// repository, so concurrent adjustments accumulate commutatively.
type StockItem struct {
	shared.AuditedAggregateRoot
	Kind              StockItemKind    `gorm:"type:varchar(20);not null;index"`
	Name              string           `gorm:"type:varchar(200);not null;index"`
	Unit              valueobject.Unit `gorm:"type:varchar(10);not null"`
	CurrentStock      decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	LowStockThreshold decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	// CostPerUnit applies to ingredients, Price to finished goods.
	CostPerUnit *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Price       *decimal.Decimal `gorm:"type:decimal(18,4)"`
	// DayOldFinishedGoodID links a fresh finished good to its discounted
	// day-old counterpart, used by end-of-day transfer.
	DayOldFinishedGoodID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (StockItem) TableName() string {
	return "stock_items"
}

// NewStockItem creates a new stock item
func NewStockItem(kind StockItemKind, name string, unit valueobject.Unit, initialStock, lowStockThreshold decimal.Decimal, createdBy string) (*StockItem, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Stock item kind must be ingredient or finished_good")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Stock item name cannot be empty")
	}
	if !unit.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit is not in the supported set")
	}
	if initialStock.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Initial stock cannot be negative")
	}
	if lowStockThreshold.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Low stock threshold cannot be negative")
	}

	item := &StockItem{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Kind:                 kind,
		Name:                 name,
		Unit:                 unit,
		CurrentStock:         initialStock,
		LowStockThreshold:    lowStockThreshold,
	}
	return item, nil
}

// Rename changes the display name
func (i *StockItem) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Stock item name cannot be empty")
	}
	i.Name = name
	i.touch()
	return nil
}

// SetLowStockThreshold updates the safety-stock threshold
func (i *StockItem) SetLowStockThreshold(threshold decimal.Decimal) error {
	if threshold.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Low stock threshold cannot be negative")
	}
	i.LowStockThreshold = threshold
	i.touch()
	return nil
}

// SetCostPerUnit sets the purchase cost, only meaningful for ingredients
func (i *StockItem) SetCostPerUnit(cost decimal.Decimal) error {
	if i.Kind != StockItemKindIngredient {
		return shared.NewDomainError("INVALID_KIND", "Cost per unit applies to ingredients only")
	}
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Cost per unit cannot be negative")
	}
	i.CostPerUnit = &cost
	i.touch()
	return nil
}

// SetPrice sets the sale price, only meaningful for finished goods
func (i *StockItem) SetPrice(price decimal.Decimal) error {
	if i.Kind != StockItemKindFinishedGood {
		return shared.NewDomainError("INVALID_KIND", "Price applies to finished goods only")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	i.Price = &price
	i.touch()
	return nil
}

// LinkDayOldGood links this fresh finished good to its day-old counterpart
func (i *StockItem) LinkDayOldGood(dayOldID uuid.UUID) error {
	if i.Kind != StockItemKindFinishedGood {
		return shared.NewDomainError("INVALID_KIND", "Day-old link applies to finished goods only")
	}
	if dayOldID == uuid.Nil {
		return shared.NewDomainError("INVALID_REFERENCE", "Day-old finished good ID cannot be empty")
	}
	if dayOldID == i.ID {
		return shared.NewDomainError("INVALID_REFERENCE", "A finished good cannot be its own day-old target")
	}
	i.DayOldFinishedGoodID = &dayOldID
	i.touch()
	return nil
}

// UnlinkDayOldGood removes the day-old link
func (i *StockItem) UnlinkDayOldGood() {
	i.DayOldFinishedGoodID = nil
	i.touch()
}

// IsBelowThreshold returns true when stock sits at or below the low-stock threshold
func (i *StockItem) IsBelowThreshold() bool {
	return i.LowStockThreshold.GreaterThan(decimal.Zero) && i.CurrentStock.LessThanOrEqual(i.LowStockThreshold)
}

// AvailableAboveSafety returns current stock minus the safety threshold.
// May be negative; purchasing treats negative availability as extra need.
func (i *StockItem) AvailableAboveSafety() decimal.Decimal {
	return i.CurrentStock.Sub(i.LowStockThreshold)
}

// CanFulfill returns true if current stock covers the requested quantity
func (i *StockItem) CanFulfill(quantity decimal.Decimal) bool {
	return i.CurrentStock.GreaterThanOrEqual(quantity)
}

func (i *StockItem) touch() {
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}
