package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovenplan/backend/internal/domain/purchasing"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order with its lines and work-order links
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	var order purchasing.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredient_name ASC")
		}).
		Preload("WorkOrders").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll lists purchase orders matching the filter
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*purchasing.PurchaseOrder, error) {
	var orders []*purchasing.PurchaseOrder
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&purchasing.PurchaseOrder{}).
			Preload("Items").
			Preload("WorkOrders"),
		filter,
	)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByStatus lists purchase orders in one status
func (r *GormPurchaseOrderRepository) FindByStatus(ctx context.Context, status purchasing.PurchaseOrderStatus, filter shared.Filter) ([]*purchasing.PurchaseOrder, error) {
	var orders []*purchasing.PurchaseOrder
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&purchasing.PurchaseOrder{}).
			Preload("Items").
			Preload("WorkOrders").
			Where("status = ?", status),
		filter,
	)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates a purchase order with its lines
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *purchasing.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "WorkOrders").Save(order).Error; err != nil {
			return err
		}

		currentIDs := make([]uuid.UUID, len(order.Items))
		for i, item := range order.Items {
			currentIDs[i] = item.ID
		}

		if len(currentIDs) > 0 {
			if err := tx.Where("order_id = ? AND id NOT IN ?", order.ID, currentIDs).
				Delete(&purchasing.PurchaseOrderItem{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("order_id = ?", order.ID).
				Delete(&purchasing.PurchaseOrderItem{}).Error; err != nil {
				return err
			}
		}

		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			if err := tx.Save(&order.Items[i]).Error; err != nil {
				return err
			}
		}

		// Work-order links are immutable after creation; write them once
		if err := tx.Where("order_id = ?", order.ID).
			Delete(&purchasing.WorkOrderRef{}).Error; err != nil {
			return err
		}
		for i := range order.WorkOrders {
			order.WorkOrders[i].OrderID = order.ID
			if err := tx.Create(&order.WorkOrders[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete hard-deletes a purchase order with its lines
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).
			Delete(&purchasing.PurchaseOrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).
			Delete(&purchasing.WorkOrderRef{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&purchasing.PurchaseOrder{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts all purchase orders
func (r *GormPurchaseOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&purchasing.PurchaseOrder{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPurchaseOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applyPagination(query, filter)

	orderBy := ValidateSortField(filter.OrderBy, PurchaseOrderSortFields, "created_at")
	orderDir := "DESC"
	if strings.ToLower(filter.OrderDir) == "asc" {
		orderDir = "ASC"
	}
	return query.Order(orderBy + " " + orderDir)
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ purchasing.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
