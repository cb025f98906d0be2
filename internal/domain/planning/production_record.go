package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ProductionConsumption is one consumed-ingredient line of a production record
type ProductionConsumption struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key"`
	ProductionRecordID uuid.UUID        `gorm:"type:uuid;not null;index"`
	IngredientID       uuid.UUID        `gorm:"type:uuid;not null"`
	IngredientName     string           `gorm:"type:varchar(200);not null"`
	Quantity           decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	Unit               valueobject.Unit `gorm:"type:varchar(10);not null"`
	CreatedAt          time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductionConsumption) TableName() string {
	return "production_consumptions"
}

// ProductionRecord is the append-only audit log of one completed work order:
// what was consumed, what was produced, by whom and when. Records are never
// updated or deleted.
type ProductionRecord struct {
	shared.BaseEntity
	WorkOrderID      uuid.UUID               `gorm:"type:uuid;not null;index"`
	RecipeID         uuid.UUID               `gorm:"type:uuid;not null"`
	RecipeName       string                  `gorm:"type:varchar(200);not null"`
	FinishedGoodID   uuid.UUID               `gorm:"type:uuid;not null;index"`
	FinishedGoodName string                  `gorm:"type:varchar(200);not null"`
	OrderType        OrderType               `gorm:"type:varchar(10);not null"`
	Batches          int64                   `gorm:"not null"`
	YieldQuantity    decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	YieldUnit        valueobject.Unit        `gorm:"type:varchar(10);not null"`
	Consumed         []ProductionConsumption `gorm:"foreignKey:ProductionRecordID;references:ID"`
	ProducedBy       string                  `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (ProductionRecord) TableName() string {
	return "production_records"
}

// ConsumedLine is one input line for building a production record
type ConsumedLine struct {
	IngredientID   uuid.UUID
	IngredientName string
	Quantity       decimal.Decimal
	Unit           valueobject.Unit
}

// NewProductionRecord builds the audit record for a completed work order
func NewProductionRecord(wo *WorkOrder, consumed []ConsumedLine, producedBy string) (*ProductionRecord, error) {
	if wo == nil {
		return nil, shared.NewDomainError("INVALID_WORK_ORDER", "Work order is required")
	}
	if len(consumed) == 0 {
		return nil, shared.NewDomainError("NO_INGREDIENTS", "Production record must list consumed ingredients")
	}

	rec := &ProductionRecord{
		BaseEntity:       shared.NewBaseEntity(),
		WorkOrderID:      wo.ID,
		RecipeID:         wo.RecipeID,
		RecipeName:       wo.RecipeName,
		FinishedGoodID:   wo.FinishedGoodID,
		FinishedGoodName: wo.FinishedGoodName,
		OrderType:        wo.OrderType,
		Batches:          wo.BatchesActual,
		YieldQuantity:    wo.TotalYield,
		YieldUnit:        wo.YieldUnit,
		ProducedBy:       producedBy,
	}

	now := time.Now()
	rec.Consumed = make([]ProductionConsumption, 0, len(consumed))
	for _, line := range consumed {
		rec.Consumed = append(rec.Consumed, ProductionConsumption{
			ID:                 uuid.New(),
			ProductionRecordID: rec.ID,
			IngredientID:       line.IngredientID,
			IngredientName:     line.IngredientName,
			Quantity:           line.Quantity,
			Unit:               line.Unit,
			CreatedAt:          now,
		})
	}
	return rec, nil
}
