package purchasing

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/purchasing"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PurchasingService aggregates work-order ingredient requirements into
// supplier orders and processes goods receipts.
type PurchasingService struct {
	orderRepo     purchasing.PurchaseOrderRepository
	workOrderRepo planning.WorkOrderRepository
	stockRepo     inventory.StockItemRepository
	txScope       TransactionScope
}

// NewPurchasingService creates a new PurchasingService
func NewPurchasingService(
	orderRepo purchasing.PurchaseOrderRepository,
	workOrderRepo planning.WorkOrderRepository,
	stockRepo inventory.StockItemRepository,
	txScope TransactionScope,
) *PurchasingService {
	return &PurchasingService{
		orderRepo:     orderRepo,
		workOrderRepo: workOrderRepo,
		stockRepo:     stockRepo,
		txScope:       txScope,
	}
}

// aggregatedLine accumulates one ingredient's requirement during aggregation
type aggregatedLine struct {
	ingredientID  uuid.UUID
	totalRequired decimal.Decimal
}

// AggregateRequirements sums the ingredient requirements of all non-cancelled
// work orders scheduled in [start, end], nets them against live stock above
// the safety threshold, and returns the shopping list alphabetically by
// ingredient name. Requirements use each order's effective batch count, so
// edited orders are priced at what will actually be baked.
func (s *PurchasingService) AggregateRequirements(ctx context.Context, start, end time.Time) (*AggregateRequirementsResponse, error) {
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_RANGE", "Planning range end cannot precede its start")
	}

	orders, err := s.workOrderRepo.FindScheduledBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]*aggregatedLine)
	workOrderIDs := make([]uuid.UUID, 0, len(orders))
	for i := range orders {
		wo := &orders[i]
		workOrderIDs = append(workOrderIDs, wo.ID)
		batches := wo.EffectiveBatches()
		for _, line := range wo.IngredientsRequired {
			required := planning.TotalRequired(line.QuantityPerBatch, batches)
			if agg, ok := totals[line.IngredientID]; ok {
				agg.totalRequired = agg.totalRequired.Add(required)
			} else {
				totals[line.IngredientID] = &aggregatedLine{
					ingredientID:  line.IngredientID,
					totalRequired: required,
				}
			}
		}
	}

	ids := make([]uuid.UUID, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	items, err := s.stockRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemByID := make(map[uuid.UUID]*inventory.StockItem, len(items))
	for i := range items {
		itemByID[items[i].ID] = &items[i]
	}

	lines := make([]RequirementLineResponse, 0, len(totals))
	for id, agg := range totals {
		item, ok := itemByID[id]
		if !ok {
			continue // ingredient was deleted after the snapshot; nothing to order against
		}
		available := item.AvailableAboveSafety()
		net := agg.totalRequired.Sub(available)
		if net.IsNegative() {
			net = decimal.Zero
		}
		lines = append(lines, RequirementLineResponse{
			IngredientID:   id,
			IngredientName: item.Name,
			Unit:           string(item.Unit),
			TotalRequired:  agg.totalRequired,
			CurrentStock:   item.CurrentStock,
			SafetyStock:    item.LowStockThreshold,
			NetRequired:    net,
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].IngredientName < lines[j].IngredientName
	})

	return &AggregateRequirementsResponse{
		PlanningStart: start,
		PlanningEnd:   end,
		Lines:         lines,
		WorkOrderIDs:  workOrderIDs,
	}, nil
}

// Create creates a draft purchase order from the requirement aggregation of
// the requested planning range, with the caller's ordered quantities
// overriding the suggested net requirements.
func (s *PurchasingService) Create(ctx context.Context, req *CreatePurchaseOrderRequest, createdBy string) (*PurchaseOrderResponse, error) {
	aggregation, err := s.AggregateRequirements(ctx, req.PlanningStart, req.PlanningEnd)
	if err != nil {
		return nil, err
	}
	lineByID := make(map[uuid.UUID]*RequirementLineResponse, len(aggregation.Lines))
	for i := range aggregation.Lines {
		lineByID[aggregation.Lines[i].IngredientID] = &aggregation.Lines[i]
	}

	items := make([]purchasing.NewItemInput, 0, len(req.Items))
	for _, in := range req.Items {
		line, ok := lineByID[in.IngredientID]
		if ok {
			items = append(items, purchasing.NewItemInput{
				IngredientID:    line.IngredientID,
				IngredientName:  line.IngredientName,
				Unit:            valueobject.Unit(line.Unit),
				CurrentStock:    line.CurrentStock,
				SafetyStock:     line.SafetyStock,
				TotalRequired:   line.TotalRequired,
				NetRequired:     line.NetRequired,
				OrderedQuantity: in.OrderedQuantity,
			})
			continue
		}
		// An ad-hoc line outside the aggregation: snapshot live stock.
		item, err := s.stockRepo.FindByID(ctx, in.IngredientID)
		if err != nil {
			return nil, err
		}
		if item.Kind != inventory.StockItemKindIngredient {
			return nil, shared.NewDomainError("INVALID_INGREDIENT", item.Name+" is not an ingredient")
		}
		items = append(items, purchasing.NewItemInput{
			IngredientID:    item.ID,
			IngredientName:  item.Name,
			Unit:            item.Unit,
			CurrentStock:    item.CurrentStock,
			SafetyStock:     item.LowStockThreshold,
			TotalRequired:   decimal.Zero,
			NetRequired:     decimal.Zero,
			OrderedQuantity: in.OrderedQuantity,
		})
	}

	order, err := purchasing.NewPurchaseOrder(req.PlanningStart, req.PlanningEnd, items, aggregation.WorkOrderIDs, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponse(order), nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchasingService) GetByID(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponse(order), nil
}

// List lists purchase orders, newest first
func (s *PurchasingService) List(ctx context.Context, filter *PurchaseOrderListFilter) (*shared.Paginated[*PurchaseOrderResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}

	var (
		orders []*purchasing.PurchaseOrder
		err    error
	)
	if filter.Status != "" {
		orders, err = s.orderRepo.FindByStatus(ctx, purchasing.PurchaseOrderStatus(filter.Status), f)
	} else {
		orders, err = s.orderRepo.FindAll(ctx, f)
	}
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*PurchaseOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ToPurchaseOrderResponse(order))
	}
	result := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &result, nil
}

// MarkSent transitions a draft order to sent
func (s *PurchasingService) MarkSent(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.MarkSent(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponse(order), nil
}

// ReceiveGoods records a goods receipt in one transaction: received
// quantities accumulate onto the order lines, the matching ingredient stock
// increments apply as relative deltas with movement records, and the order
// status derives to partial or complete.
func (s *PurchasingService) ReceiveGoods(ctx context.Context, id uuid.UUID, req *ReceiveGoodsRequest, receivedBy string) (*PurchaseOrderResponse, error) {
	var order *purchasing.PurchaseOrder

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.OrderRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		lines := make([]purchasing.ReceiptLine, 0, len(req.Lines))
		for _, in := range req.Lines {
			lines = append(lines, purchasing.ReceiptLine{
				IngredientID: in.IngredientID,
				Quantity:     in.Quantity,
			})
		}
		received, err := order.Receive(lines)
		if err != nil {
			return err
		}

		for _, line := range received {
			item, err := repos.StockItemRepo().FindByID(ctx, line.IngredientID)
			if err != nil {
				return err
			}
			if _, err := repos.StockItemRepo().AdjustStock(ctx, line.IngredientID, line.Quantity); err != nil {
				return err
			}
			movement, err := inventory.NewStockMovement(item, line.Quantity, inventory.MovementReasonPurchaseReceipt, &order.ID, receivedBy)
			if err != nil {
				return err
			}
			if err := repos.MovementRepo().Append(ctx, movement); err != nil {
				return err
			}
		}

		return repos.OrderRepo().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponse(order), nil
}

// Delete removes a purchase order. Only drafts may be deleted; the error for
// anything else names the order's actual status.
func (s *PurchasingService) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := order.EnsureDeletable(); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}
