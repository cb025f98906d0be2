package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// WeeklyTemplate holds the recurring per-weekday production quantities for
// one finished good. One template exists per good; absent days default to 0.
type WeeklyTemplate struct {
	shared.AuditedAggregateRoot
	FinishedGoodID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	FinishedGoodName string          `gorm:"type:varchar(200);not null"`
	Monday           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Tuesday          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Wednesday        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Thursday         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Friday           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Saturday         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Sunday           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (WeeklyTemplate) TableName() string {
	return "weekly_templates"
}

// NewWeeklyTemplate creates a template for a finished good. Quantities are
// Monday-first; fewer than seven values leave the remaining days at zero.
func NewWeeklyTemplate(finishedGoodID uuid.UUID, finishedGoodName string, quantities [7]decimal.Decimal, createdBy string) (*WeeklyTemplate, error) {
	if finishedGoodID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FINISHED_GOOD", "Finished good ID cannot be empty")
	}
	if finishedGoodName == "" {
		return nil, shared.NewDomainError("INVALID_FINISHED_GOOD", "Finished good name cannot be empty")
	}
	t := &WeeklyTemplate{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		FinishedGoodID:       finishedGoodID,
		FinishedGoodName:     finishedGoodName,
	}
	if err := t.SetQuantities(quantities); err != nil {
		return nil, err
	}
	return t, nil
}

// SetQuantities replaces the per-weekday quantities (Monday-first)
func (t *WeeklyTemplate) SetQuantities(quantities [7]decimal.Decimal) error {
	for _, q := range quantities {
		if q.IsNegative() {
			return shared.NewDomainError("INVALID_QUANTITY", "Weekly quantities cannot be negative")
		}
	}
	t.Monday, t.Tuesday, t.Wednesday = quantities[0], quantities[1], quantities[2]
	t.Thursday, t.Friday, t.Saturday, t.Sunday = quantities[3], quantities[4], quantities[5], quantities[6]
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

// Quantities returns the per-weekday quantities, Monday-first
func (t *WeeklyTemplate) Quantities() [7]decimal.Decimal {
	return [7]decimal.Decimal{t.Monday, t.Tuesday, t.Wednesday, t.Thursday, t.Friday, t.Saturday, t.Sunday}
}

// QuantityFor returns the quantity for a weekday offset (0 = Monday)
func (t *WeeklyTemplate) QuantityFor(dayOffset int) decimal.Decimal {
	return t.Quantities()[dayOffset]
}

// WeeklyPlanStatus represents the state of a generated weekly plan
type WeeklyPlanStatus string

// WeeklyPlanStatusGenerated is the only state a weekly plan takes: the
// summary exists exactly when its work orders were committed.
const WeeklyPlanStatusGenerated WeeklyPlanStatus = "generated"

// WeeklyPlan is the materialized summary of one weekly generation run.
// Multiple plans may exist for the same week; callers are warned but not
// blocked when generating a week that already has one.
type WeeklyPlan struct {
	shared.AuditedAggregateRoot
	WeekOf          time.Time        `gorm:"not null;index"` // Monday of the target week, midnight local
	OrdersGenerated int              `gorm:"not null"`
	SkippedProducts string           `gorm:"type:text"` // names whose recipe could not be resolved
	Status          WeeklyPlanStatus `gorm:"type:varchar(20);not null;default:'generated'"`
}

// TableName returns the table name for GORM
func (WeeklyPlan) TableName() string {
	return "weekly_plans"
}

// NewWeeklyPlan creates the summary record for a generation run
func NewWeeklyPlan(weekOf time.Time, ordersGenerated int, skippedProducts string, createdBy string) (*WeeklyPlan, error) {
	if weekOf.IsZero() {
		return nil, shared.NewDomainError("INVALID_WEEK", "Week anchor is required")
	}
	if ordersGenerated < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Generated order count cannot be negative")
	}
	return &WeeklyPlan{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		WeekOf:               weekOf,
		OrdersGenerated:      ordersGenerated,
		SkippedProducts:      skippedProducts,
		Status:               WeeklyPlanStatusGenerated,
	}, nil
}

// MondayOf anchors an arbitrary timestamp to the Monday of its calendar
// week, at midnight in the timestamp's location.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}
