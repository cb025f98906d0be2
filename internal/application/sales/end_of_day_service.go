package sales

import (
	"context"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/sales"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EndOfDayService reconciles unsold fresh stock at close of day: each row
// either writes the quantity off or transfers it to the good's discounted
// day-old counterpart.
type EndOfDayService struct {
	endOfDayRepo sales.EndOfDayRecordRepository
	stockRepo    inventory.StockItemRepository
	txScope      TransactionScope
}

// NewEndOfDayService creates a new EndOfDayService
func NewEndOfDayService(endOfDayRepo sales.EndOfDayRecordRepository, stockRepo inventory.StockItemRepository, txScope TransactionScope) *EndOfDayService {
	return &EndOfDayService{
		endOfDayRepo: endOfDayRepo,
		stockRepo:    stockRepo,
		txScope:      txScope,
	}
}

// ListCandidates lists the finished goods eligible for reconciliation:
// positive stock, and not themselves the day-old target of another good
// (day-old stock is cleared by write-off, not transferred again).
func (s *EndOfDayService) ListCandidates(ctx context.Context) ([]*EndOfDayCandidateResponse, error) {
	items, err := s.stockRepo.FindEndOfDayCandidates(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*EndOfDayCandidateResponse, 0, len(items))
	for i := range items {
		item := &items[i]
		responses = append(responses, &EndOfDayCandidateResponse{
			FinishedGoodID:   item.ID,
			FinishedGoodName: item.Name,
			Unit:             string(item.Unit),
			CurrentStock:     item.CurrentStock,
			DayOldGoodID:     item.DayOldFinishedGoodID,
			CanTransfer:      item.DayOldFinishedGoodID != nil,
		})
	}
	return responses, nil
}

// Reconcile applies all rows in one transaction: every fresh-good deduction
// is a guarded relative delta, transfers credit the day-old good, and one
// record is appended per row. Any failing row aborts the whole commit, so a
// reconciliation is never half-applied.
func (s *EndOfDayService) Reconcile(ctx context.Context, req *ReconcileRequest, recordedBy string) ([]*EndOfDayRecordResponse, error) {
	var records []*sales.EndOfDayRecord

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		records = records[:0]
		for _, row := range req.Rows {
			if row.Quantity.LessThanOrEqual(decimal.Zero) {
				return shared.NewDomainError("INVALID_QUANTITY", "Reconciliation quantity must be positive")
			}

			good, err := repos.StockItemRepo().FindByID(ctx, row.FinishedGoodID)
			if err != nil {
				return err
			}
			if good.Kind != inventory.StockItemKindFinishedGood {
				return shared.NewDomainError("INVALID_GOOD", good.Name+" is not a finished good")
			}

			action := sales.EndOfDayAction(row.Action)
			var dayOld *inventory.StockItem
			if action == sales.EndOfDayActionTransferToDayOld {
				if good.DayOldFinishedGoodID == nil {
					return shared.NewDomainError("NO_DAY_OLD_TARGET", good.Name+" has no linked day-old good")
				}
				dayOld, err = repos.StockItemRepo().FindByID(ctx, *good.DayOldFinishedGoodID)
				if err != nil {
					return err
				}
			}

			dayOldName := ""
			if dayOld != nil {
				dayOldName = dayOld.Name
			}
			record, err := sales.NewEndOfDayRecord(good.ID, good.Name, good.Unit, action, row.Quantity, good.DayOldFinishedGoodID, dayOldName, recordedBy)
			if err != nil {
				return err
			}

			// Guarded deduction of the fresh good.
			if _, err := repos.StockItemRepo().AdjustStock(ctx, good.ID, row.Quantity.Neg()); err != nil {
				return err
			}
			reason := inventory.MovementReasonWriteOff
			if action == sales.EndOfDayActionTransferToDayOld {
				reason = inventory.MovementReasonDayOldTransfer
			}
			movement, err := inventory.NewStockMovement(good, row.Quantity.Neg(), reason, &record.ID, recordedBy)
			if err != nil {
				return err
			}
			if err := repos.MovementRepo().Append(ctx, movement); err != nil {
				return err
			}

			if dayOld != nil {
				if _, err := repos.StockItemRepo().AdjustStock(ctx, dayOld.ID, row.Quantity); err != nil {
					return err
				}
				inbound, err := inventory.NewStockMovement(dayOld, row.Quantity, inventory.MovementReasonDayOldTransfer, &record.ID, recordedBy)
				if err != nil {
					return err
				}
				if err := repos.MovementRepo().Append(ctx, inbound); err != nil {
					return err
				}
			}

			if err := repos.EndOfDayRepo().Append(ctx, record); err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]*EndOfDayRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToEndOfDayRecordResponse(r))
	}
	return responses, nil
}

// ListRecent lists the most recent reconciliation records
func (s *EndOfDayService) ListRecent(ctx context.Context, page, pageSize int) ([]*EndOfDayRecordResponse, error) {
	f := shared.DefaultFilter()
	if page > 0 {
		f.Page = page
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}
	records, err := s.endOfDayRepo.FindRecent(ctx, f)
	if err != nil {
		return nil, err
	}
	responses := make([]*EndOfDayRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToEndOfDayRecordResponse(r))
	}
	return responses, nil
}
