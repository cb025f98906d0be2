package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// WorkOrderCounter reports open work orders that snapshot a stock item,
// implemented by the planning context.
type WorkOrderCounter interface {
	CountOpenByStockItem(ctx context.Context, itemID uuid.UUID) (int64, error)
}

// StockService handles stock item business operations
type StockService struct {
	stockRepo      inventory.StockItemRepository
	movementRepo   inventory.StockMovementRepository
	recipeRepo     recipe.RecipeRepository
	workOrders     WorkOrderCounter
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
}

// NewStockService creates a new StockService
func NewStockService(
	stockRepo inventory.StockItemRepository,
	movementRepo inventory.StockMovementRepository,
	recipeRepo recipe.RecipeRepository,
	workOrders WorkOrderCounter,
	txScope TransactionScope,
) *StockService {
	return &StockService{
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		recipeRepo:   recipeRepo,
		workOrders:   workOrders,
		txScope:      txScope,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *StockService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new stock item
func (s *StockService) Create(ctx context.Context, req *CreateStockItemRequest, createdBy string) (*StockItemResponse, error) {
	unit, err := valueobject.ParseUnit(req.Unit)
	if err != nil {
		return nil, err
	}

	item, err := inventory.NewStockItem(inventory.StockItemKind(req.Kind), req.Name, unit, req.InitialStock, req.LowStockThreshold, createdBy)
	if err != nil {
		return nil, err
	}
	if req.CostPerUnit != nil {
		if err := item.SetCostPerUnit(*req.CostPerUnit); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := item.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.DayOldFinishedGoodID != nil {
		if err := s.linkDayOld(ctx, item, *req.DayOldFinishedGoodID); err != nil {
			return nil, err
		}
	}

	if err := s.stockRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return ToStockItemResponse(item), nil
}

// GetByID retrieves a stock item by its ID
func (s *StockService) GetByID(ctx context.Context, id uuid.UUID) (*StockItemResponse, error) {
	item, err := s.stockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToStockItemResponse(item), nil
}

// List lists stock items, optionally filtered by kind or low stock
func (s *StockService) List(ctx context.Context, filter *StockItemListFilter) (*shared.Paginated[*StockItemResponse], error) {
	f := shared.DefaultFilter()
	f.OrderBy = "name"
	f.OrderDir = "asc"
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}

	var (
		items []inventory.StockItem
		err   error
	)
	switch {
	case filter.BelowThreshold:
		items, err = s.stockRepo.FindBelowThreshold(ctx, f)
	case filter.Kind != "":
		items, err = s.stockRepo.FindByKind(ctx, inventory.StockItemKind(filter.Kind), f)
	default:
		items, err = s.stockRepo.FindAll(ctx, f)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.stockRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]*StockItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToStockItemResponse(&items[i]))
	}
	result := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &result, nil
}

// Update edits descriptive fields and the low-stock threshold. It never
// writes the stock level; use AdjustStock for that.
func (s *StockService) Update(ctx context.Context, id uuid.UUID, req *UpdateStockItemRequest) (*StockItemResponse, error) {
	item, err := s.stockRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := item.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.LowStockThreshold != nil {
		if err := item.SetLowStockThreshold(*req.LowStockThreshold); err != nil {
			return nil, err
		}
	}
	if req.CostPerUnit != nil {
		if err := item.SetCostPerUnit(*req.CostPerUnit); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := item.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.ClearDayOldLink {
		item.UnlinkDayOldGood()
	} else if req.DayOldFinishedGoodID != nil {
		if err := s.linkDayOld(ctx, item, *req.DayOldFinishedGoodID); err != nil {
			return nil, err
		}
	}

	if err := s.stockRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return ToStockItemResponse(item), nil
}

// Delete removes a stock item after verifying nothing references it:
// recipes, open work orders, or a day-old link from another good.
func (s *StockService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.stockRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	recipeCount, err := s.recipeRepo.CountByIngredient(ctx, id)
	if err != nil {
		return err
	}
	if recipeCount == 0 && item.Kind == inventory.StockItemKindFinishedGood {
		recipeCount, err = s.recipeRepo.CountByFinishedGood(ctx, id)
		if err != nil {
			return err
		}
	}
	if recipeCount > 0 {
		return shared.NewDomainError("HAS_DEPENDENTS", fmt.Sprintf("Stock item %s is referenced by %d recipe(s)", item.Name, recipeCount))
	}

	openOrders, err := s.workOrders.CountOpenByStockItem(ctx, id)
	if err != nil {
		return err
	}
	if openOrders > 0 {
		return shared.NewDomainError("HAS_DEPENDENTS", fmt.Sprintf("Stock item %s is referenced by %d open work order(s)", item.Name, openOrders))
	}

	dayOldRefs, err := s.stockRepo.CountReferencingAsDayOld(ctx, id)
	if err != nil {
		return err
	}
	if dayOldRefs > 0 {
		return shared.NewDomainError("HAS_DEPENDENTS", fmt.Sprintf("Stock item %s is the day-old target of %d finished good(s)", item.Name, dayOldRefs))
	}

	return s.stockRepo.Delete(ctx, id)
}

// AdjustStock applies a signed manual delta to a stock item and writes the
// matching movement record in the same transaction. Negative deltas that
// would push stock below zero are rejected with no change.
func (s *StockService) AdjustStock(ctx context.Context, id uuid.UUID, req *AdjustStockRequest, recordedBy string) (*AdjustStockResponse, error) {
	if req.Delta.IsZero() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Adjustment delta cannot be zero")
	}
	reason := inventory.MovementReasonManualAdjustment
	if req.Reason != "" {
		reason = inventory.MovementReason(req.Reason)
		if !reason.IsValid() {
			return nil, shared.NewDomainError("INVALID_REASON", "Unknown movement reason")
		}
	}

	var (
		item      *inventory.StockItem
		resulting decimal.Decimal
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		item, err = repos.StockItemRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		resulting, err = repos.StockItemRepo().AdjustStock(ctx, id, req.Delta)
		if err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(item, req.Delta, reason, nil, recordedBy)
		if err != nil {
			return err
		}
		return repos.MovementRepo().Append(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	s.publishAdjustment(ctx, item, req.Delta, resulting, reason)

	return &AdjustStockResponse{
		ItemID:         id,
		Delta:          req.Delta,
		ResultingStock: resulting,
	}, nil
}

// ListMovements lists the movement log for one item, newest first
func (s *StockService) ListMovements(ctx context.Context, itemID uuid.UUID, page, pageSize int) ([]*StockMovementResponse, error) {
	if _, err := s.stockRepo.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	f := shared.DefaultFilter()
	if page > 0 {
		f.Page = page
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}
	movements, err := s.movementRepo.FindByItem(ctx, itemID, f)
	if err != nil {
		return nil, err
	}

	responses := make([]*StockMovementResponse, 0, len(movements))
	for i := range movements {
		responses = append(responses, ToStockMovementResponse(&movements[i]))
	}
	return responses, nil
}

// ListLowStock lists items at or below their low-stock threshold
func (s *StockService) ListLowStock(ctx context.Context) ([]*StockItemResponse, error) {
	f := shared.DefaultFilter()
	f.OrderBy = "name"
	f.OrderDir = "asc"
	f.PageSize = 200
	items, err := s.stockRepo.FindBelowThreshold(ctx, f)
	if err != nil {
		return nil, err
	}
	responses := make([]*StockItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToStockItemResponse(&items[i]))
	}
	return responses, nil
}

func (s *StockService) linkDayOld(ctx context.Context, item *inventory.StockItem, dayOldID uuid.UUID) error {
	target, err := s.stockRepo.FindByID(ctx, dayOldID)
	if err != nil {
		return err
	}
	if target.Kind != inventory.StockItemKindFinishedGood {
		return shared.NewDomainError("INVALID_REFERENCE", "Day-old target must be a finished good")
	}
	return item.LinkDayOldGood(dayOldID)
}

// publishAdjustment publishes stock events after a committed delta. Errors
// are logged by the event bus, not propagated.
func (s *StockService) publishAdjustment(ctx context.Context, item *inventory.StockItem, delta, resulting decimal.Decimal, reason inventory.MovementReason) {
	if s.eventPublisher == nil || item == nil {
		return
	}
	events := []shared.DomainEvent{inventory.NewStockAdjustedEvent(item, delta, resulting, reason)}
	if delta.IsNegative() && item.LowStockThreshold.GreaterThan(decimal.Zero) && resulting.LessThanOrEqual(item.LowStockThreshold) {
		events = append(events, inventory.NewStockBelowThresholdEvent(item, resulting))
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
