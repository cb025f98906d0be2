package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// GormWeeklyTemplateRepository implements WeeklyTemplateRepository using GORM
type GormWeeklyTemplateRepository struct {
	db *gorm.DB
}

// NewGormWeeklyTemplateRepository creates a new GormWeeklyTemplateRepository
func NewGormWeeklyTemplateRepository(db *gorm.DB) *GormWeeklyTemplateRepository {
	return &GormWeeklyTemplateRepository{db: db}
}

// FindAll lists all templates ordered by finished good name
func (r *GormWeeklyTemplateRepository) FindAll(ctx context.Context) ([]planning.WeeklyTemplate, error) {
	var templates []planning.WeeklyTemplate
	if err := r.db.WithContext(ctx).
		Order("finished_good_name ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// FindByFinishedGood finds the template for a finished good
func (r *GormWeeklyTemplateRepository) FindByFinishedGood(ctx context.Context, finishedGoodID uuid.UUID) (*planning.WeeklyTemplate, error) {
	var template planning.WeeklyTemplate
	if err := r.db.WithContext(ctx).
		Where("finished_good_id = ?", finishedGoodID).
		First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

// Save creates or updates a template
func (r *GormWeeklyTemplateRepository) Save(ctx context.Context, template *planning.WeeklyTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

// Ensure GormWeeklyTemplateRepository implements WeeklyTemplateRepository
var _ planning.WeeklyTemplateRepository = (*GormWeeklyTemplateRepository)(nil)

// GormWeeklyPlanRepository implements WeeklyPlanRepository using GORM
type GormWeeklyPlanRepository struct {
	db *gorm.DB
}

// NewGormWeeklyPlanRepository creates a new GormWeeklyPlanRepository
func NewGormWeeklyPlanRepository(db *gorm.DB) *GormWeeklyPlanRepository {
	return &GormWeeklyPlanRepository{db: db}
}

// FindByWeek lists plans generated for the given Monday anchor
func (r *GormWeeklyPlanRepository) FindByWeek(ctx context.Context, weekOf time.Time) ([]planning.WeeklyPlan, error) {
	var plans []planning.WeeklyPlan
	if err := r.db.WithContext(ctx).
		Where("week_of = ?", weekOf).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// FindAll lists plans, newest first
func (r *GormWeeklyPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.WeeklyPlan, error) {
	var plans []planning.WeeklyPlan
	query := r.db.WithContext(ctx).
		Model(&planning.WeeklyPlan{}).
		Order("created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// CountByWeek counts plans already generated for a week
func (r *GormWeeklyPlanRepository) CountByWeek(ctx context.Context, weekOf time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&planning.WeeklyPlan{}).
		Where("week_of = ?", weekOf).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates a weekly plan summary
func (r *GormWeeklyPlanRepository) Save(ctx context.Context, plan *planning.WeeklyPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// Ensure GormWeeklyPlanRepository implements WeeklyPlanRepository
var _ planning.WeeklyPlanRepository = (*GormWeeklyPlanRepository)(nil)
