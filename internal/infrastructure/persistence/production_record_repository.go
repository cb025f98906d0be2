package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// GormProductionRecordRepository implements ProductionRecordRepository using GORM
type GormProductionRecordRepository struct {
	db *gorm.DB
}

// NewGormProductionRecordRepository creates a new GormProductionRecordRepository
func NewGormProductionRecordRepository(db *gorm.DB) *GormProductionRecordRepository {
	return &GormProductionRecordRepository{db: db}
}

// Append writes one production record with its consumption lines
func (r *GormProductionRecordRepository) Append(ctx context.Context, record *planning.ProductionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByWorkOrder lists records for a work order
func (r *GormProductionRecordRepository) FindByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]planning.ProductionRecord, error) {
	var records []planning.ProductionRecord
	if err := r.db.WithContext(ctx).
		Preload("Consumed").
		Where("work_order_id = ?", workOrderID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindRecent lists records newest first
func (r *GormProductionRecordRepository) FindRecent(ctx context.Context, filter shared.Filter) ([]planning.ProductionRecord, error) {
	var records []planning.ProductionRecord
	query := r.db.WithContext(ctx).
		Model(&planning.ProductionRecord{}).
		Preload("Consumed").
		Order("created_at DESC")
	for key, value := range filter.Filters {
		switch key {
		case "finished_good_id":
			query = query.Where("finished_good_id = ?", value)
		case "order_type":
			query = query.Where("order_type = ?", value)
		}
	}
	query = applyPagination(query, filter)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Ensure GormProductionRecordRepository implements ProductionRecordRepository
var _ planning.ProductionRecordRepository = (*GormProductionRecordRepository)(nil)
