package planning

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// DemandPlanService handles demand plan business operations
type DemandPlanService struct {
	planRepo       planning.DemandPlanRepository
	recipeRepo     recipe.RecipeRepository
	stockRepo      inventory.StockItemRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
}

// NewDemandPlanService creates a new DemandPlanService
func NewDemandPlanService(
	planRepo planning.DemandPlanRepository,
	recipeRepo recipe.RecipeRepository,
	stockRepo inventory.StockItemRepository,
	txScope TransactionScope,
) *DemandPlanService {
	return &DemandPlanService{
		planRepo:   planRepo,
		recipeRepo: recipeRepo,
		stockRepo:  stockRepo,
		txScope:    txScope,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *DemandPlanService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a demand plan. The active recipe for the finished good must
// resolve; batches are computed at creation, from the stock shortfall for
// MTS and from the full target for MTO.
func (s *DemandPlanService) Create(ctx context.Context, req *CreateDemandPlanRequest, createdBy string) (*DemandPlanResponse, error) {
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
	snap := planning.RecipeSnapshot{
		RecipeID:   r.ID,
		RecipeName: r.Name,
		Yield:      r.YieldQuantity,
	}

	var plan *planning.DemandPlan
	switch planning.OrderType(req.OrderType) {
	case planning.OrderTypeMTS:
		plan, err = planning.NewMTSDemandPlan(good.ID, good.Name, req.TargetQuantity, good.CurrentStock, snap, createdBy)
	case planning.OrderTypeMTO:
		if req.PickupAt == nil {
			return nil, shared.NewDomainError("INVALID_PICKUP", "Pickup time is required for make-to-order plans")
		}
		plan, err = planning.NewMTODemandPlan(good.ID, good.Name, req.TargetQuantity, req.CustomerName, *req.PickupAt, snap, createdBy)
	default:
		return nil, shared.NewDomainError("INVALID_ORDER_TYPE", "Order type must be MTS or MTO")
	}
	if err != nil {
		return nil, err
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}
	return ToDemandPlanResponse(plan), nil
}

// GetByID retrieves a demand plan by ID
func (s *DemandPlanService) GetByID(ctx context.Context, id uuid.UUID) (*DemandPlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDemandPlanResponse(plan), nil
}

// List lists demand plans, newest first
func (s *DemandPlanService) List(ctx context.Context, page, pageSize int) (*shared.Paginated[*DemandPlanResponse], error) {
	f := shared.DefaultFilter()
	if page > 0 {
		f.Page = page
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}
	plans, err := s.planRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.planRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	responses := make([]*DemandPlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, ToDemandPlanResponse(&plans[i]))
	}
	result := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &result, nil
}

// Cancel cancels an open demand plan
func (s *DemandPlanService) Cancel(ctx context.Context, id uuid.UUID) (*DemandPlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := plan.Cancel(); err != nil {
		return nil, err
	}
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}
	return ToDemandPlanResponse(plan), nil
}

// Convert turns an open demand plan into a work order, exactly once. The
// requirement snapshot is rebuilt against live stock inside the transaction
// that creates the order and marks the plan fulfilled, so a plan can never
// end up fulfilled without its order existing.
func (s *DemandPlanService) Convert(ctx context.Context, id uuid.UUID, req *ConvertDemandPlanRequest, createdBy string) (*WorkOrderResponse, error) {
	var wo *planning.WorkOrder
	var plan *planning.DemandPlan

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		plan, err = repos.DemandPlanRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !plan.IsOpen() {
			return shared.NewDomainError("INVALID_STATE", "Cannot convert a demand plan in "+plan.Status.String()+" status")
		}

		r, err := s.recipeRepo.FindByID(ctx, plan.RecipeID)
		if err != nil {
			return err
		}

		stockByID, err := stockSnapshotFor(ctx, repos.StockItemRepo(), r)
		if err != nil {
			return err
		}
		requirements := planning.BuildRequirements(r, plan.BatchesRequired, stockByID)

		planID := plan.ID
		wo, err = planning.NewWorkOrder(planning.NewWorkOrderParams{
			RecipeID:         r.ID,
			RecipeName:       r.Name,
			FinishedGoodID:   plan.FinishedGoodID,
			FinishedGoodName: plan.FinishedGoodName,
			DemandPlanID:     &planID,
			OrderType:        plan.OrderType,
			CustomerName:     plan.CustomerName,
			BatchesOrdered:   plan.BatchesRequired,
			RecipeYield:      r.YieldQuantity,
			YieldUnit:        r.YieldUnit,
			ScheduledStart:   req.ScheduledStart,
			DueBy:            req.DueBy,
			Requirements:     requirements,
			Notes:            req.Notes,
			CreatedBy:        createdBy,
		})
		if err != nil {
			return err
		}
		if err := repos.WorkOrderRepo().Save(ctx, wo); err != nil {
			return err
		}

		if err := plan.Fulfill(); err != nil {
			return err
		}
		return repos.DemandPlanRepo().Save(ctx, plan)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, plan)
	return ToWorkOrderResponse(wo), nil
}

func (s *DemandPlanService) publishDomainEvents(ctx context.Context, plan *planning.DemandPlan) {
	if s.eventPublisher == nil || plan == nil {
		return
	}
	events := plan.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	plan.ClearDomainEvents()
}
