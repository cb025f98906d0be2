package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// GormDemandPlanRepository implements DemandPlanRepository using GORM
type GormDemandPlanRepository struct {
	db *gorm.DB
}

// NewGormDemandPlanRepository creates a new GormDemandPlanRepository
func NewGormDemandPlanRepository(db *gorm.DB) *GormDemandPlanRepository {
	return &GormDemandPlanRepository{db: db}
}

// FindByID finds a demand plan by ID
func (r *GormDemandPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.DemandPlan, error) {
	var plan planning.DemandPlan
	if err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindAll lists demand plans matching the filter
func (r *GormDemandPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.DemandPlan, error) {
	var plans []planning.DemandPlan
	query := r.applyFilter(r.db.WithContext(ctx).Model(&planning.DemandPlan{}), filter)

	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Save creates or updates a demand plan
func (r *GormDemandPlanRepository) Save(ctx context.Context, plan *planning.DemandPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// Count counts demand plans matching the filter
func (r *GormDemandPlanRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&planning.DemandPlan{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormDemandPlanRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyPagination(query, filter)

	orderBy := ValidateSortField(filter.OrderBy, DemandPlanSortFields, "created_at")
	orderDir := "DESC"
	if strings.ToLower(filter.OrderDir) == "asc" {
		orderDir = "ASC"
	}
	return query.Order(orderBy + " " + orderDir)
}

func (r *GormDemandPlanRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "order_type":
			query = query.Where("order_type = ?", value)
		case "finished_good_id":
			query = query.Where("finished_good_id = ?", value)
		}
	}
	return query
}

// Ensure GormDemandPlanRepository implements DemandPlanRepository
var _ planning.DemandPlanRepository = (*GormDemandPlanRepository)(nil)
