package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// PurchaseOrderRepository defines the repository interface for purchase orders
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*PurchaseOrder, error)
	FindByStatus(ctx context.Context, status PurchaseOrderStatus, filter shared.Filter) ([]*PurchaseOrder, error)
	Save(ctx context.Context, order *PurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
