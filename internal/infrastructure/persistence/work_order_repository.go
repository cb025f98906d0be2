package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/shared"
)

var openWorkOrderStatuses = []planning.WorkOrderStatus{
	planning.WorkOrderStatusPlanned,
	planning.WorkOrderStatusInProgress,
}

// GormWorkOrderRepository implements WorkOrderRepository using GORM
type GormWorkOrderRepository struct {
	db *gorm.DB
}

// NewGormWorkOrderRepository creates a new GormWorkOrderRepository
func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

// FindByID finds a work order with its requirement snapshot
func (r *GormWorkOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.WorkOrder, error) {
	var order planning.WorkOrder
	if err := r.db.WithContext(ctx).
		Preload("IngredientsRequired").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll lists work orders matching the filter
func (r *GormWorkOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.WorkOrder, error) {
	var orders []planning.WorkOrder
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&planning.WorkOrder{}).
			Preload("IngredientsRequired"),
		filter,
	)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindQueue lists open work orders ordered by scheduled start ascending
func (r *GormWorkOrderRepository) FindQueue(ctx context.Context, filter shared.Filter) ([]planning.WorkOrder, error) {
	var orders []planning.WorkOrder
	query := r.db.WithContext(ctx).
		Model(&planning.WorkOrder{}).
		Preload("IngredientsRequired").
		Where("status IN ?", openWorkOrderStatuses).
		Order("scheduled_start ASC")
	query = applyPagination(query, filter)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindScheduledBetween lists non-cancelled orders scheduled within [start, end]
func (r *GormWorkOrderRepository) FindScheduledBetween(ctx context.Context, start, end time.Time) ([]planning.WorkOrder, error) {
	var orders []planning.WorkOrder
	if err := r.db.WithContext(ctx).
		Preload("IngredientsRequired").
		Where("scheduled_start >= ? AND scheduled_start <= ?", start, end).
		Where("status <> ?", planning.WorkOrderStatusCancelled).
		Order("scheduled_start ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CountOpenByRecipe counts planned/in-progress orders referencing a recipe
func (r *GormWorkOrderRepository) CountOpenByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&planning.WorkOrder{}).
		Where("recipe_id = ? AND status IN ?", recipeID, openWorkOrderStatuses).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOpenByStockItem counts planned/in-progress orders that reference the
// item as their finished good or in their ingredient snapshot
func (r *GormWorkOrderRepository) CountOpenByStockItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&planning.WorkOrder{}).
		Where("status IN ?", openWorkOrderStatuses).
		Where("finished_good_id = ? OR id IN (?)", itemID,
			r.db.Model(&planning.WorkOrderIngredient{}).
				Select("work_order_id").
				Where("ingredient_id = ?", itemID)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a work order with its snapshot lines
func (r *GormWorkOrderRepository) Save(ctx context.Context, order *planning.WorkOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("IngredientsRequired").Save(order).Error; err != nil {
			return err
		}

		currentIDs := make([]uuid.UUID, len(order.IngredientsRequired))
		for i, line := range order.IngredientsRequired {
			currentIDs[i] = line.ID
		}

		if len(currentIDs) > 0 {
			if err := tx.Where("work_order_id = ? AND id NOT IN ?", order.ID, currentIDs).
				Delete(&planning.WorkOrderIngredient{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("work_order_id = ?", order.ID).
				Delete(&planning.WorkOrderIngredient{}).Error; err != nil {
				return err
			}
		}

		for i := range order.IngredientsRequired {
			order.IngredientsRequired[i].WorkOrderID = order.ID
			if err := tx.Save(&order.IngredientsRequired[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Count counts work orders matching the filter
func (r *GormWorkOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&planning.WorkOrder{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormWorkOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyPagination(query, filter)

	orderBy := ValidateSortField(filter.OrderBy, WorkOrderSortFields, "scheduled_start")
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	return query.Order(orderBy + " " + orderDir)
}

func (r *GormWorkOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "order_type":
			query = query.Where("order_type = ?", value)
		case "recipe_id":
			query = query.Where("recipe_id = ?", value)
		case "finished_good_id":
			query = query.Where("finished_good_id = ?", value)
		case "weekly_plan_id":
			query = query.Where("weekly_plan_id = ?", value)
		}
	}
	return query
}

// Ensure GormWorkOrderRepository implements WorkOrderRepository
var _ planning.WorkOrderRepository = (*GormWorkOrderRepository)(nil)
