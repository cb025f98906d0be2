package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// SalesRecordRepository defines the append-only store for sales records
type SalesRecordRepository interface {
	Append(ctx context.Context, record *SalesRecord) error
	FindByGood(ctx context.Context, goodID uuid.UUID, filter shared.Filter) ([]*SalesRecord, error)
	FindBetween(ctx context.Context, start, end time.Time, filter shared.Filter) ([]*SalesRecord, error)
	FindRecent(ctx context.Context, filter shared.Filter) ([]*SalesRecord, error)
}

// EndOfDayRecordRepository defines the append-only store for reconciliations
type EndOfDayRecordRepository interface {
	Append(ctx context.Context, record *EndOfDayRecord) error
	FindBetween(ctx context.Context, start, end time.Time, filter shared.Filter) ([]*EndOfDayRecord, error)
	FindRecent(ctx context.Context, filter shared.Filter) ([]*EndOfDayRecord, error)
}
