package planning

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Production hours for generated orders: bake from 06:00, shelf-ready by noon.
const (
	defaultGeneratedStartHour = 6
	defaultGeneratedDueHour   = 12
)

// WeeklyPlanService manages weekly templates and turns them into a week of
// staged work orders.
type WeeklyPlanService struct {
	templateRepo planning.WeeklyTemplateRepository
	planRepo     planning.WeeklyPlanRepository
	recipeRepo   recipe.RecipeRepository
	stockRepo    inventory.StockItemRepository
	txScope      TransactionScope
	logger       *zap.Logger

	generatedStartHour int
	generatedDueHour   int
}

// NewWeeklyPlanService creates a new WeeklyPlanService
func NewWeeklyPlanService(
	templateRepo planning.WeeklyTemplateRepository,
	planRepo planning.WeeklyPlanRepository,
	recipeRepo recipe.RecipeRepository,
	stockRepo inventory.StockItemRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *WeeklyPlanService {
	return &WeeklyPlanService{
		templateRepo:       templateRepo,
		planRepo:           planRepo,
		recipeRepo:         recipeRepo,
		stockRepo:          stockRepo,
		txScope:            txScope,
		logger:             logger,
		generatedStartHour: defaultGeneratedStartHour,
		generatedDueHour:   defaultGeneratedDueHour,
	}
}

// SetGeneratedHours overrides the daily start and due hours stamped onto
// generated work orders. Out-of-range values keep the defaults.
func (s *WeeklyPlanService) SetGeneratedHours(startHour, dueHour int) {
	if startHour >= 0 && startHour <= 23 {
		s.generatedStartHour = startHour
	}
	if dueHour >= 0 && dueHour <= 23 {
		s.generatedDueHour = dueHour
	}
}

// UpsertTemplate creates or replaces the weekly template for a finished good
func (s *WeeklyPlanService) UpsertTemplate(ctx context.Context, req *WeeklyTemplateRequest, createdBy string) (*WeeklyTemplateResponse, error) {
	good, err := s.stockRepo.FindByID(ctx, req.FinishedGoodID)
	if err != nil {
		return nil, err
	}
	if good.Kind != inventory.StockItemKindFinishedGood {
		return nil, shared.NewDomainError("INVALID_FINISHED_GOOD", good.Name+" is not a finished good")
	}

	var quantities [7]decimal.Decimal
	copy(quantities[:], req.Quantities)

	existing, err := s.templateRepo.FindByFinishedGood(ctx, req.FinishedGoodID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	var template *planning.WeeklyTemplate
	if existing != nil {
		if err := existing.SetQuantities(quantities); err != nil {
			return nil, err
		}
		existing.FinishedGoodName = good.Name
		template = existing
	} else {
		template, err = planning.NewWeeklyTemplate(good.ID, good.Name, quantities, createdBy)
		if err != nil {
			return nil, err
		}
	}

	if err := s.templateRepo.Save(ctx, template); err != nil {
		return nil, err
	}
	return ToWeeklyTemplateResponse(template), nil
}

// ListTemplates lists all weekly templates
func (s *WeeklyPlanService) ListTemplates(ctx context.Context) ([]*WeeklyTemplateResponse, error) {
	templates, err := s.templateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*WeeklyTemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, ToWeeklyTemplateResponse(&templates[i]))
	}
	return responses, nil
}

// GenerateWeek stages one work order per template weekday with a positive
// quantity, for the week containing req.WeekOf (anchored to its Monday).
// Goods whose active recipe cannot be resolved are skipped and reported.
// All staged orders plus the summary commit in a single transaction. A week
// that was already generated produces a warning in the response, not an
// error; duplicate runs are sometimes intentional (re-planning after a
// template change).
func (s *WeeklyPlanService) GenerateWeek(ctx context.Context, req *GenerateWeekRequest, createdBy string) (*GenerateWeekResponse, error) {
	weekOf := planning.MondayOf(req.WeekOf)

	priorCount, err := s.planRepo.CountByWeek(ctx, weekOf)
	if err != nil {
		return nil, err
	}
	if priorCount > 0 {
		s.logger.Warn("generating a week that already has a plan",
			zap.Time("week_of", weekOf),
			zap.Int64("prior_plans", priorCount),
		)
	}

	templates, err := s.templateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, shared.NewDomainError("NO_TEMPLATES", "No weekly templates are configured")
	}

	var plan *planning.WeeklyPlan
	var skipped []string

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var staged []*planning.WorkOrder
		skipped = skipped[:0]

		for i := range templates {
			template := &templates[i]

			r, err := s.recipeRepo.FindActiveByFinishedGood(ctx, template.FinishedGoodID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					skipped = append(skipped, template.FinishedGoodName)
					s.logger.Warn("skipping product without an active recipe",
						zap.String("finished_good", template.FinishedGoodName),
					)
					continue
				}
				return err
			}

			stockByID, err := stockSnapshotFor(ctx, repos.StockItemRepo(), r)
			if err != nil {
				return err
			}

			for dayOffset := 0; dayOffset < 7; dayOffset++ {
				quantity := template.QuantityFor(dayOffset)
				if quantity.LessThanOrEqual(decimal.Zero) {
					continue
				}

				batches, err := planning.BatchesRequired(quantity, r.YieldQuantity)
				if err != nil {
					return err
				}
				if batches == 0 {
					continue
				}

				day := weekOf.AddDate(0, 0, dayOffset)
				scheduledStart := time.Date(day.Year(), day.Month(), day.Day(), s.generatedStartHour, 0, 0, 0, day.Location())
				dueBy := time.Date(day.Year(), day.Month(), day.Day(), s.generatedDueHour, 0, 0, 0, day.Location())

				requirements := planning.BuildRequirements(r, batches, stockByID)
				wo, err := planning.NewWorkOrder(planning.NewWorkOrderParams{
					RecipeID:         r.ID,
					RecipeName:       r.Name,
					FinishedGoodID:   template.FinishedGoodID,
					FinishedGoodName: template.FinishedGoodName,
					OrderType:        planning.OrderTypeMTS,
					BatchesOrdered:   batches,
					RecipeYield:      r.YieldQuantity,
					YieldUnit:        r.YieldUnit,
					ScheduledStart:   scheduledStart,
					DueBy:            dueBy,
					Requirements:     requirements,
					CreatedBy:        createdBy,
				})
				if err != nil {
					return err
				}
				staged = append(staged, wo)
			}
		}

		var err error
		plan, err = planning.NewWeeklyPlan(weekOf, len(staged), strings.Join(skipped, ", "), createdBy)
		if err != nil {
			return err
		}
		if err := repos.WeeklyPlanRepo().Save(ctx, plan); err != nil {
			return err
		}

		// Generated orders reference the summary they came from.
		for _, wo := range staged {
			planID := plan.ID
			wo.WeeklyPlanID = &planID
			if err := repos.WorkOrderRepo().Save(ctx, wo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &GenerateWeekResponse{
		WeeklyPlanID:    plan.ID,
		WeekOf:          weekOf,
		OrdersGenerated: plan.OrdersGenerated,
		SkippedProducts: skipped,
		AlreadyPlanned:  priorCount > 0,
		PriorPlanCount:  priorCount,
	}, nil
}

// ListPlans lists generation summaries, newest first
func (s *WeeklyPlanService) ListPlans(ctx context.Context, page, pageSize int) ([]*WeeklyPlanSummaryResponse, error) {
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
	responses := make([]*WeeklyPlanSummaryResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, toWeeklyPlanSummary(&plans[i]))
	}
	return responses, nil
}

// WeeklyPlanSummaryResponse represents one generation summary
type WeeklyPlanSummaryResponse struct {
	ID              uuid.UUID `json:"id"`
	WeekOf          time.Time `json:"week_of"`
	OrdersGenerated int       `json:"orders_generated"`
	SkippedProducts []string  `json:"skipped_products,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

func toWeeklyPlanSummary(p *planning.WeeklyPlan) *WeeklyPlanSummaryResponse {
	var skipped []string
	if p.SkippedProducts != "" {
		skipped = strings.Split(p.SkippedProducts, ", ")
	}
	return &WeeklyPlanSummaryResponse{
		ID:              p.ID,
		WeekOf:          p.WeekOf,
		OrdersGenerated: p.OrdersGenerated,
		SkippedProducts: skipped,
		CreatedBy:       p.CreatedBy,
		CreatedAt:       p.CreatedAt,
	}
}
