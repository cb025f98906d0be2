package planning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// WorkOrderRepository defines the interface for work order persistence
type WorkOrderRepository interface {
	// FindByID finds a work order with its requirement snapshot
	FindByID(ctx context.Context, id uuid.UUID) (*WorkOrder, error)

	// FindAll lists work orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]WorkOrder, error)

	// FindQueue lists open (planned or in-progress) work orders ordered by
	// scheduled start ascending
	FindQueue(ctx context.Context, filter shared.Filter) ([]WorkOrder, error)

	// FindScheduledBetween lists non-cancelled work orders whose scheduled
	// start falls within [start, end]
	FindScheduledBetween(ctx context.Context, start, end time.Time) ([]WorkOrder, error)

	// CountOpenByRecipe counts planned/in-progress orders referencing a recipe
	CountOpenByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error)

	// CountOpenByStockItem counts planned/in-progress orders that reference
	// the item as their finished good or in their ingredient snapshot
	CountOpenByStockItem(ctx context.Context, itemID uuid.UUID) (int64, error)

	// Save creates or updates a work order with its snapshot lines
	Save(ctx context.Context, order *WorkOrder) error

	// Count counts work orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// DemandPlanRepository defines the interface for demand plan persistence
type DemandPlanRepository interface {
	// FindByID finds a demand plan by ID
	FindByID(ctx context.Context, id uuid.UUID) (*DemandPlan, error)

	// FindAll lists demand plans matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]DemandPlan, error)

	// Save creates or updates a demand plan
	Save(ctx context.Context, plan *DemandPlan) error

	// Count counts demand plans matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// WeeklyTemplateRepository persists one template per finished good
type WeeklyTemplateRepository interface {
	// FindAll lists all templates ordered by finished good name
	FindAll(ctx context.Context) ([]WeeklyTemplate, error)

	// FindByFinishedGood finds the template for a finished good
	FindByFinishedGood(ctx context.Context, finishedGoodID uuid.UUID) (*WeeklyTemplate, error)

	// Save creates or updates a template (one per good)
	Save(ctx context.Context, template *WeeklyTemplate) error
}

// WeeklyPlanRepository persists weekly generation summaries
type WeeklyPlanRepository interface {
	// FindByWeek lists plans generated for the given Monday anchor
	FindByWeek(ctx context.Context, weekOf time.Time) ([]WeeklyPlan, error)

	// FindAll lists plans, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]WeeklyPlan, error)

	// CountByWeek counts plans already generated for a week
	CountByWeek(ctx context.Context, weekOf time.Time) (int64, error)

	// Save creates a weekly plan summary
	Save(ctx context.Context, plan *WeeklyPlan) error
}

// ProductionRecordRepository persists the append-only production log
type ProductionRecordRepository interface {
	// Append writes one production record with its consumption lines
	Append(ctx context.Context, record *ProductionRecord) error

	// FindByWorkOrder lists records for a work order
	FindByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]ProductionRecord, error)

	// FindRecent lists records newest first
	FindRecent(ctx context.Context, filter shared.Filter) ([]ProductionRecord, error)
}
