package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovenplan/backend/internal/domain/sales"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// GormSalesRecordRepository implements SalesRecordRepository using GORM
type GormSalesRecordRepository struct {
	db *gorm.DB
}

// NewGormSalesRecordRepository creates a new GormSalesRecordRepository
func NewGormSalesRecordRepository(db *gorm.DB) *GormSalesRecordRepository {
	return &GormSalesRecordRepository{db: db}
}

// Append writes one sales record
func (r *GormSalesRecordRepository) Append(ctx context.Context, record *sales.SalesRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByGood lists sales of one finished good, newest first
func (r *GormSalesRecordRepository) FindByGood(ctx context.Context, goodID uuid.UUID, filter shared.Filter) ([]*sales.SalesRecord, error) {
	var records []*sales.SalesRecord
	query := r.db.WithContext(ctx).
		Where("finished_good_id = ?", goodID).
		Order("sold_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindBetween lists sales within [start, end], newest first
func (r *GormSalesRecordRepository) FindBetween(ctx context.Context, start, end time.Time, filter shared.Filter) ([]*sales.SalesRecord, error) {
	var records []*sales.SalesRecord
	query := r.db.WithContext(ctx).
		Where("sold_at >= ? AND sold_at <= ?", start, end).
		Order("sold_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindRecent lists the most recent sales
func (r *GormSalesRecordRepository) FindRecent(ctx context.Context, filter shared.Filter) ([]*sales.SalesRecord, error) {
	var records []*sales.SalesRecord
	query := r.db.WithContext(ctx).
		Model(&sales.SalesRecord{}).
		Order("sold_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Ensure GormSalesRecordRepository implements SalesRecordRepository
var _ sales.SalesRecordRepository = (*GormSalesRecordRepository)(nil)

// GormEndOfDayRecordRepository implements EndOfDayRecordRepository using GORM
type GormEndOfDayRecordRepository struct {
	db *gorm.DB
}

// NewGormEndOfDayRecordRepository creates a new GormEndOfDayRecordRepository
func NewGormEndOfDayRecordRepository(db *gorm.DB) *GormEndOfDayRecordRepository {
	return &GormEndOfDayRecordRepository{db: db}
}

// Append writes one reconciliation record
func (r *GormEndOfDayRecordRepository) Append(ctx context.Context, record *sales.EndOfDayRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindBetween lists reconciliations within [start, end], newest first
func (r *GormEndOfDayRecordRepository) FindBetween(ctx context.Context, start, end time.Time, filter shared.Filter) ([]*sales.EndOfDayRecord, error) {
	var records []*sales.EndOfDayRecord
	query := r.db.WithContext(ctx).
		Where("recorded_at >= ? AND recorded_at <= ?", start, end).
		Order("recorded_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindRecent lists the most recent reconciliations
func (r *GormEndOfDayRecordRepository) FindRecent(ctx context.Context, filter shared.Filter) ([]*sales.EndOfDayRecord, error) {
	var records []*sales.EndOfDayRecord
	query := r.db.WithContext(ctx).
		Model(&sales.EndOfDayRecord{}).
		Order("recorded_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Ensure GormEndOfDayRecordRepository implements EndOfDayRecordRepository
var _ sales.EndOfDayRecordRepository = (*GormEndOfDayRecordRepository)(nil)
