package planning

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// WorkOrderService handles work order business operations, including the
// atomic completion that transfers ingredient stock into finished-good stock.
type WorkOrderService struct {
	workOrderRepo  planning.WorkOrderRepository
	recipeRepo     recipe.RecipeRepository
	stockRepo      inventory.StockItemRepository
	recordRepo     planning.ProductionRecordRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
}

// NewWorkOrderService creates a new WorkOrderService
func NewWorkOrderService(
	workOrderRepo planning.WorkOrderRepository,
	recipeRepo recipe.RecipeRepository,
	stockRepo inventory.StockItemRepository,
	recordRepo planning.ProductionRecordRepository,
	txScope TransactionScope,
) *WorkOrderService {
	return &WorkOrderService{
		workOrderRepo: workOrderRepo,
		recipeRepo:    recipeRepo,
		stockRepo:     stockRepo,
		recordRepo:    recordRepo,
		txScope:       txScope,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *WorkOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a planned work order directly (no demand plan). The active
// recipe for the finished good must resolve. Insufficient ingredient stock
// is recorded on the order but never blocks creation; completion is the
// enforcement point.
func (s *WorkOrderService) Create(ctx context.Context, req *CreateWorkOrderRequest, createdBy string) (*WorkOrderResponse, error) {
	good, err := s.stockRepo.FindByID(ctx, req.FinishedGoodID)
	if err != nil {
		return nil, err
	}
	if good.Kind != inventory.StockItemKindFinishedGood {
		return nil, shared.NewDomainError("INVALID_FINISHED_GOOD", good.Name+" is not a finished good")
	}

	r, err := s.recipeRepo.FindActiveByFinishedGood(ctx, req.FinishedGoodID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("RECIPE_NOT_FOUND", "No active recipe produces "+good.Name)
		}
		return nil, err
	}

	stockByID, err := stockSnapshotFor(ctx, s.stockRepo, r)
	if err != nil {
		return nil, err
	}
	requirements := planning.BuildRequirements(r, req.Batches, stockByID)

	wo, err := planning.NewWorkOrder(planning.NewWorkOrderParams{
		RecipeID:         r.ID,
		RecipeName:       r.Name,
		FinishedGoodID:   good.ID,
		FinishedGoodName: good.Name,
		OrderType:        planning.OrderType(req.OrderType),
		CustomerName:     req.CustomerName,
		BatchesOrdered:   req.Batches,
		RecipeYield:      r.YieldQuantity,
		YieldUnit:        r.YieldUnit,
		ScheduledStart:   req.ScheduledStart,
		DueBy:            req.DueBy,
		Requirements:     requirements,
		Notes:            req.Notes,
		CreatedBy:        createdBy,
	})
	if err != nil {
		return nil, err
	}

	if err := s.workOrderRepo.Save(ctx, wo); err != nil {
		return nil, err
	}
	return ToWorkOrderResponse(wo), nil
}

// GetByID retrieves a work order with its requirement snapshot
func (s *WorkOrderService) GetByID(ctx context.Context, id uuid.UUID) (*WorkOrderResponse, error) {
	wo, err := s.workOrderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWorkOrderResponse(wo), nil
}

// List lists work orders. The queue view returns open orders ordered by
// scheduled start; the default view is newest first.
func (s *WorkOrderService) List(ctx context.Context, filter *WorkOrderListFilter) (*shared.Paginated[*WorkOrderResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}

	var (
		orders []planning.WorkOrder
		err    error
	)
	if filter.Queue {
		orders, err = s.workOrderRepo.FindQueue(ctx, f)
	} else {
		orders, err = s.workOrderRepo.FindAll(ctx, f)
	}
	if err != nil {
		return nil, err
	}
	total, err := s.workOrderRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]*WorkOrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToWorkOrderResponse(&orders[i]))
	}
	result := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &result, nil
}

// Start transitions a planned work order to in_progress
func (s *WorkOrderService) Start(ctx context.Context, id uuid.UUID) (*WorkOrderResponse, error) {
	wo, err := s.workOrderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := wo.Start(); err != nil {
		return nil, err
	}
	if err := s.workOrderRepo.Save(ctx, wo); err != nil {
		return nil, err
	}
	return ToWorkOrderResponse(wo), nil
}

// Update edits an open work order's actual batches, schedule and notes, then
// recomputes total yield and sufficiency against live stock.
func (s *WorkOrderService) Update(ctx context.Context, id uuid.UUID, req *UpdateWorkOrderRequest) (*WorkOrderResponse, error) {
	wo, err := s.workOrderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := wo.UpdateDetails(req.BatchesActual, req.ScheduledStart, req.DueBy, req.Notes); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(wo.IngredientsRequired))
	for _, line := range wo.IngredientsRequired {
		ids = append(ids, line.IngredientID)
	}
	items, err := s.stockRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	stock := make(map[uuid.UUID]inventory.StockItem, len(items))
	for i := range items {
		stock[items[i].ID] = items[i]
	}
	sufficient := true
	var insufficientNames []string
	for _, line := range wo.IngredientsRequired {
		required := wo.RequiredForCompletion(line)
		if item, ok := stock[line.IngredientID]; !ok || item.CurrentStock.LessThan(required) {
			sufficient = false
			insufficientNames = append(insufficientNames, line.IngredientName)
		}
	}
	wo.SetSufficiency(sufficient, insufficientNames)

	if err := s.workOrderRepo.Save(ctx, wo); err != nil {
		return nil, err
	}
	return ToWorkOrderResponse(wo), nil
}

// Cancel cancels a planned work order
func (s *WorkOrderService) Cancel(ctx context.Context, id uuid.UUID) (*WorkOrderResponse, error) {
	wo, err := s.workOrderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := wo.Cancel(); err != nil {
		return nil, err
	}
	if err := s.workOrderRepo.Save(ctx, wo); err != nil {
		return nil, err
	}
	return ToWorkOrderResponse(wo), nil
}

// Complete finishes an in-progress work order in one transaction: the order
// and live stock are re-fetched and re-validated inside the transaction, all
// ingredient deductions apply as guarded relative deltas, the finished good
// is credited unless the order is make-to-order, and the production record
// and stock movements are appended. Any failure rolls the whole thing back.
func (s *WorkOrderService) Complete(ctx context.Context, id uuid.UUID, completedBy string) (*CompleteWorkOrderResponse, error) {
	var (
		wo       *planning.WorkOrder
		consumed []planning.ConsumedLine
	)

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		wo, err = repos.WorkOrderRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !wo.Status.CanTransitionTo(planning.WorkOrderStatusComplete) {
			return shared.NewDomainError("INVALID_STATE", "Cannot complete a work order in "+wo.Status.String()+" status")
		}

		// Re-validate against live stock before any write so a shortfall
		// produces an itemized error with nothing deducted.
		ids := make([]uuid.UUID, 0, len(wo.IngredientsRequired))
		for _, line := range wo.IngredientsRequired {
			ids = append(ids, line.IngredientID)
		}
		items, err := repos.StockItemRepo().FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		stock := make(map[uuid.UUID]*inventory.StockItem, len(items))
		for i := range items {
			stock[items[i].ID] = &items[i]
		}

		var shortfalls []shared.ShortfallDetail
		for _, line := range wo.IngredientsRequired {
			required := wo.RequiredForCompletion(line)
			item, ok := stock[line.IngredientID]
			available := decimal.Zero
			if ok {
				available = item.CurrentStock
			}
			if !ok || available.LessThan(required) {
				shortfalls = append(shortfalls, shared.ShortfallDetail{
					ItemID:    line.IngredientID,
					ItemName:  line.IngredientName,
					Required:  required,
					Available: available,
					Short:     required.Sub(available),
				})
			}
		}
		if len(shortfalls) > 0 {
			return shared.NewInsufficientStockError(shortfalls)
		}

		// Deduct every ingredient with guarded relative deltas. The guard
		// closes the race where a concurrent commit consumed the same stock
		// after our read above.
		consumed = consumed[:0]
		for _, line := range wo.IngredientsRequired {
			required := wo.RequiredForCompletion(line)
			item := stock[line.IngredientID]
			if _, err := repos.StockItemRepo().AdjustStock(ctx, line.IngredientID, required.Neg()); err != nil {
				return err
			}
			movement, err := inventory.NewStockMovement(item, required.Neg(), inventory.MovementReasonConsumption, &wo.ID, completedBy)
			if err != nil {
				return err
			}
			if err := repos.MovementRepo().Append(ctx, movement); err != nil {
				return err
			}
			consumed = append(consumed, planning.ConsumedLine{
				IngredientID:   line.IngredientID,
				IngredientName: line.IngredientName,
				Quantity:       required,
				Unit:           line.Unit,
			})
		}

		// Credit the finished good unless it goes straight to the customer.
		if wo.ProducesToStock() {
			good, err := repos.StockItemRepo().FindByID(ctx, wo.FinishedGoodID)
			if err != nil {
				return err
			}
			if _, err := repos.StockItemRepo().AdjustStock(ctx, wo.FinishedGoodID, wo.TotalYield); err != nil {
				return err
			}
			movement, err := inventory.NewStockMovement(good, wo.TotalYield, inventory.MovementReasonProduction, &wo.ID, completedBy)
			if err != nil {
				return err
			}
			if err := repos.MovementRepo().Append(ctx, movement); err != nil {
				return err
			}
		}

		if err := wo.Complete(); err != nil {
			return err
		}
		if err := repos.WorkOrderRepo().Save(ctx, wo); err != nil {
			return err
		}

		record, err := planning.NewProductionRecord(wo, consumed, completedBy)
		if err != nil {
			return err
		}
		return repos.ProductionRecordRepo().Append(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, wo)

	consumedDTO := make([]ConsumedLineDTO, 0, len(consumed))
	for _, line := range consumed {
		consumedDTO = append(consumedDTO, ConsumedLineDTO{
			IngredientID:   line.IngredientID,
			IngredientName: line.IngredientName,
			Quantity:       line.Quantity,
			Unit:           string(line.Unit),
		})
	}
	return &CompleteWorkOrderResponse{
		WorkOrder:       ToWorkOrderResponse(wo),
		Consumed:        consumedDTO,
		ProducedToStock: wo.ProducesToStock(),
		YieldQuantity:   wo.TotalYield,
	}, nil
}

// ListProductionRecords lists the production log, newest first
func (s *WorkOrderService) ListProductionRecords(ctx context.Context, page, pageSize int) ([]*ProductionRecordResponse, error) {
	f := shared.DefaultFilter()
	if page > 0 {
		f.Page = page
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}
	records, err := s.recordRepo.FindRecent(ctx, f)
	if err != nil {
		return nil, err
	}
	responses := make([]*ProductionRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, ToProductionRecordResponse(&records[i]))
	}
	return responses, nil
}

// CountOpenByRecipe reports open work orders referencing a recipe. Satisfies
// the recipe context's dependents check.
func (s *WorkOrderService) CountOpenByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	return s.workOrderRepo.CountOpenByRecipe(ctx, recipeID)
}

// CountOpenByStockItem reports open work orders referencing a stock item.
// Satisfies the inventory context's dependents check.
func (s *WorkOrderService) CountOpenByStockItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	return s.workOrderRepo.CountOpenByStockItem(ctx, itemID)
}

func (s *WorkOrderService) publishDomainEvents(ctx context.Context, wo *planning.WorkOrder) {
	if s.eventPublisher == nil || wo == nil {
		return
	}
	events := wo.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	wo.ClearDomainEvents()
}
