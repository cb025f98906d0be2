package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// GormStockItemRepository implements StockItemRepository using GORM
type GormStockItemRepository struct {
	db *gorm.DB
}

// NewGormStockItemRepository creates a new GormStockItemRepository
func NewGormStockItemRepository(db *gorm.DB) *GormStockItemRepository {
	return &GormStockItemRepository{db: db}
}

// FindByID finds a stock item by its ID
func (r *GormStockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockItem, error) {
	var item inventory.StockItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByIDs finds multiple stock items by their IDs
func (r *GormStockItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.StockItem, error) {
	if len(ids) == 0 {
		return []inventory.StockItem{}, nil
	}

	var items []inventory.StockItem
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByKind lists stock items of one kind
func (r *GormStockItemRepository) FindByKind(ctx context.Context, kind inventory.StockItemKind, filter shared.Filter) ([]inventory.StockItem, error) {
	var items []inventory.StockItem
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.StockItem{}).
			Where("kind = ?", kind),
		filter,
	)

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindAll lists all stock items
func (r *GormStockItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockItem, error) {
	var items []inventory.StockItem
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.StockItem{}), filter)

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindBelowThreshold finds items whose stock sits at or below their threshold
func (r *GormStockItemRepository) FindBelowThreshold(ctx context.Context, filter shared.Filter) ([]inventory.StockItem, error) {
	var items []inventory.StockItem
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.StockItem{}).
			Where("low_stock_threshold > 0 AND current_stock <= low_stock_threshold"),
		filter,
	)

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindEndOfDayCandidates finds finished goods with remaining stock that are
// not themselves another good's day-old target
func (r *GormStockItemRepository) FindEndOfDayCandidates(ctx context.Context) ([]inventory.StockItem, error) {
	var items []inventory.StockItem
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND current_stock > 0", inventory.StockItemKindFinishedGood).
		Where("id NOT IN (?)", r.db.Model(&inventory.StockItem{}).
			Select("day_old_finished_good_id").
			Where("day_old_finished_good_id IS NOT NULL")).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountReferencingAsDayOld counts goods pointing at the item as their day-old target
func (r *GormStockItemRepository) CountReferencingAsDayOld(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockItem{}).
		Where("day_old_finished_good_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a stock item
func (r *GormStockItemRepository) Save(ctx context.Context, item *inventory.StockItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// AdjustStock atomically applies a signed delta to current_stock. The UPDATE
// carries the non-negative guard so concurrent deductions can never drive the
// balance below zero regardless of what the caller read beforehand.
func (r *GormStockItemRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	result := r.db.WithContext(ctx).
		Model(&inventory.StockItem{}).
		Where("id = ? AND current_stock + ? >= 0", id, delta).
		UpdateColumn("current_stock", gorm.Expr("current_stock + ?", delta))

	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from a guarded rejection
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&inventory.StockItem{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return decimal.Zero, err
		}
		if count == 0 {
			return decimal.Zero, shared.ErrNotFound
		}
		return decimal.Zero, shared.ErrInsufficientStock
	}

	var resulting struct {
		CurrentStock decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockItem{}).
		Select("current_stock").
		Where("id = ?", id).
		Scan(&resulting).Error; err != nil {
		return decimal.Zero, err
	}
	return resulting.CurrentStock, nil
}

// Delete hard-deletes a stock item
func (r *GormStockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.StockItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts stock items matching the filter
func (r *GormStockItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.StockItem{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormStockItemRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, StockItemSortFields, "name")
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormStockItemRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "kind":
			query = query.Where("kind = ?", value)
		case "below_threshold":
			if value == true {
				query = query.Where("low_stock_threshold > 0 AND current_stock <= low_stock_threshold")
			}
		case "name":
			query = query.Where("name ILIKE ?", "%"+toString(value)+"%")
		}
	}
	return query
}

// Ensure GormStockItemRepository implements StockItemRepository
var _ inventory.StockItemRepository = (*GormStockItemRepository)(nil)
