package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// EndOfDayAction is what happens to unsold fresh stock at close of day
type EndOfDayAction string

const (
	EndOfDayActionWriteOff         EndOfDayAction = "write_off"
	EndOfDayActionTransferToDayOld EndOfDayAction = "transfer_to_day_old"
)

// IsValid checks if the action is a valid EndOfDayAction
func (a EndOfDayAction) IsValid() bool {
	return a == EndOfDayActionWriteOff || a == EndOfDayActionTransferToDayOld
}

// String returns the string representation of EndOfDayAction
func (a EndOfDayAction) String() string {
	return string(a)
}

// EndOfDayRecord is an append-only record of one reconciliation row: a
// quantity of a fresh finished good either written off or moved to its
// discounted day-old counterpart.
type EndOfDayRecord struct {
	shared.BaseEntity
	FinishedGoodID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	FinishedGoodName string           `gorm:"type:varchar(200);not null"`
	Unit             valueobject.Unit `gorm:"type:varchar(10);not null"`
	Action           EndOfDayAction   `gorm:"type:varchar(30);not null"`
	Quantity         decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	DayOldGoodID     *uuid.UUID       `gorm:"type:uuid"`
	DayOldGoodName   string           `gorm:"type:varchar(200)"`
	RecordedBy       string           `gorm:"type:varchar(200);not null"`
	RecordedAt       time.Time        `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (EndOfDayRecord) TableName() string {
	return "end_of_day_records"
}

// NewEndOfDayRecord validates and builds one reconciliation record. Transfer
// rows must carry the day-old target; write-off rows must not.
func NewEndOfDayRecord(goodID uuid.UUID, goodName string, unit valueobject.Unit, action EndOfDayAction, quantity decimal.Decimal, dayOldID *uuid.UUID, dayOldName string, recordedBy string) (*EndOfDayRecord, error) {
	if goodID == uuid.Nil || goodName == "" {
		return nil, shared.NewDomainError("INVALID_GOOD", "Reconciled good reference cannot be empty")
	}
	if !action.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACTION", "End-of-day action must be write_off or transfer_to_day_old")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Reconciliation quantity must be positive")
	}
	if action == EndOfDayActionTransferToDayOld && (dayOldID == nil || *dayOldID == uuid.Nil) {
		return nil, shared.NewDomainError("NO_DAY_OLD_TARGET", "Transfer requires a linked day-old good")
	}
	if action == EndOfDayActionWriteOff {
		dayOldID = nil
		dayOldName = ""
	}
	return &EndOfDayRecord{
		BaseEntity:       shared.NewBaseEntity(),
		FinishedGoodID:   goodID,
		FinishedGoodName: goodName,
		Unit:             unit,
		Action:           action,
		Quantity:         quantity,
		DayOldGoodID:     dayOldID,
		DayOldGoodName:   dayOldName,
		RecordedBy:       recordedBy,
		RecordedAt:       time.Now(),
	}, nil
}
