package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/sales"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SalesService records over-the-counter sales with guarded stock deduction
type SalesService struct {
	salesRepo sales.SalesRecordRepository
	stockRepo inventory.StockItemRepository
	txScope   TransactionScope
}

// NewSalesService creates a new SalesService
func NewSalesService(salesRepo sales.SalesRecordRepository, stockRepo inventory.StockItemRepository, txScope TransactionScope) *SalesService {
	return &SalesService{
		salesRepo: salesRepo,
		stockRepo: stockRepo,
		txScope:   txScope,
	}
}

// RecordSale records one sale in a single transaction: the finished good's
// stock is deducted with a guarded relative delta (an oversell aborts with
// nothing written), then the sale record and stock movement are appended.
func (s *SalesService) RecordSale(ctx context.Context, req *RecordSaleRequest, soldBy string) (*SalesRecordResponse, error) {
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Sale quantity must be positive")
	}

	var record *sales.SalesRecord
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		good, err := repos.StockItemRepo().FindByID(ctx, req.FinishedGoodID)
		if err != nil {
			return err
		}
		if good.Kind != inventory.StockItemKindFinishedGood {
			return shared.NewDomainError("INVALID_GOOD", good.Name+" is not a finished good")
		}

		price := decimal.Zero
		if req.PricePerUnit != nil {
			price = *req.PricePerUnit
		} else if good.Price != nil {
			price = *good.Price
		}

		record, err = sales.NewSalesRecord(good.ID, good.Name, good.Unit, req.Quantity, price, soldBy)
		if err != nil {
			return err
		}

		// Guarded deduction: zero rows affected means a concurrent sale or
		// reconciliation got there first, and nothing is written.
		if _, err := repos.StockItemRepo().AdjustStock(ctx, good.ID, req.Quantity.Neg()); err != nil {
			return err
		}

		if err := repos.SalesRepo().Append(ctx, record); err != nil {
			return err
		}
		movement, err := inventory.NewStockMovement(good, req.Quantity.Neg(), inventory.MovementReasonSale, &record.ID, soldBy)
		if err != nil {
			return err
		}
		return repos.MovementRepo().Append(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	return ToSalesRecordResponse(record), nil
}

// ListRecent lists the most recent sales
func (s *SalesService) ListRecent(ctx context.Context, page, pageSize int) ([]*SalesRecordResponse, error) {
	f := shared.DefaultFilter()
	if page > 0 {
		f.Page = page
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}
	records, err := s.salesRepo.FindRecent(ctx, f)
	if err != nil {
		return nil, err
	}
	responses := make([]*SalesRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToSalesRecordResponse(r))
	}
	return responses, nil
}

// ListByGood lists sales of one finished good, newest first
func (s *SalesService) ListByGood(ctx context.Context, goodID uuid.UUID, page, pageSize int) ([]*SalesRecordResponse, error) {
	f := shared.DefaultFilter()
	if page > 0 {
		f.Page = page
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}
	records, err := s.salesRepo.FindByGood(ctx, goodID, f)
	if err != nil {
		return nil, err
	}
	responses := make([]*SalesRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToSalesRecordResponse(r))
	}
	return responses, nil
}

// ListBetween lists sales in a time range, for daily revenue reporting
func (s *SalesService) ListBetween(ctx context.Context, start, end time.Time) ([]*SalesRecordResponse, error) {
	f := shared.DefaultFilter()
	f.PageSize = 500
	records, err := s.salesRepo.FindBetween(ctx, start, end, f)
	if err != nil {
		return nil, err
	}
	responses := make([]*SalesRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToSalesRecordResponse(r))
	}
	return responses, nil
}
