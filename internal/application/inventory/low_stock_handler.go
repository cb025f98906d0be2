package inventory

import (
	"context"
	"fmt"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LowStockHandler handles StockBelowThreshold events and surfaces low-stock
// alerts. The default notifier logs; other channels can be plugged in.
type LowStockHandler struct {
	logger   *zap.Logger
	notifier LowStockNotifier
}

// LowStockNotifier is the interface for delivering low-stock alerts
type LowStockNotifier interface {
	// NotifyLowStock delivers one low-stock alert
	NotifyLowStock(ctx context.Context, alert LowStockAlert) error
}

// LowStockAlert describes one item that dropped to or below its threshold
type LowStockAlert struct {
	ItemID       string `json:"item_id"`
	ItemName     string `json:"item_name"`
	ItemKind     string `json:"item_kind"`
	CurrentStock string `json:"current_stock"`
	Threshold    string `json:"threshold"`
	AlertType    string `json:"alert_type"` // "low_stock", "out_of_stock"
}

// NewLowStockHandler creates a new handler for stock below threshold events
func NewLowStockHandler(logger *zap.Logger) *LowStockHandler {
	return &LowStockHandler{
		logger: logger,
	}
}

// WithNotifier sets the notifier for delivering alerts
func (h *LowStockHandler) WithNotifier(notifier LowStockNotifier) *LowStockHandler {
	h.notifier = notifier
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *LowStockHandler) EventTypes() []string {
	return []string{inventory.EventTypeStockBelowThreshold}
}

// Handle processes a StockBelowThresholdEvent
func (h *LowStockHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	thresholdEvent, ok := event.(*inventory.StockBelowThresholdEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", inventory.EventTypeStockBelowThreshold),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			inventory.EventTypeStockBelowThreshold, event.EventType())
	}

	h.logger.Warn("stock below threshold",
		zap.String("item_id", thresholdEvent.ItemID.String()),
		zap.String("item_name", thresholdEvent.ItemName),
		zap.String("item_kind", thresholdEvent.ItemKind.String()),
		zap.String("current_stock", thresholdEvent.CurrentStock.String()),
		zap.String("threshold", thresholdEvent.Threshold.String()),
	)

	alertType := "low_stock"
	if thresholdEvent.CurrentStock.IsZero() {
		alertType = "out_of_stock"
	}

	if h.notifier != nil {
		alert := LowStockAlert{
			ItemID:       thresholdEvent.ItemID.String(),
			ItemName:     thresholdEvent.ItemName,
			ItemKind:     thresholdEvent.ItemKind.String(),
			CurrentStock: thresholdEvent.CurrentStock.String(),
			Threshold:    thresholdEvent.Threshold.String(),
			AlertType:    alertType,
		}
		if err := h.notifier.NotifyLowStock(ctx, alert); err != nil {
			// Notification failure must not fail the event handling
			h.logger.Error("failed to deliver low stock alert",
				zap.String("item_id", alert.ItemID),
				zap.Error(err),
			)
		}
	}

	return nil
}

var _ shared.EventHandler = (*LowStockHandler)(nil)

// LoggingLowStockNotifier logs alerts instead of delivering them, useful in
// development.
type LoggingLowStockNotifier struct {
	logger *zap.Logger
}

// NewLoggingLowStockNotifier creates a new logging notifier
func NewLoggingLowStockNotifier(logger *zap.Logger) *LoggingLowStockNotifier {
	return &LoggingLowStockNotifier{
		logger: logger,
	}
}

// NotifyLowStock logs the alert
func (n *LoggingLowStockNotifier) NotifyLowStock(_ context.Context, alert LowStockAlert) error {
	n.logger.Warn("LOW STOCK ALERT",
		zap.String("type", alert.AlertType),
		zap.String("item", alert.ItemName),
		zap.String("current_stock", alert.CurrentStock),
		zap.String("threshold", alert.Threshold),
	)
	return nil
}

var _ LowStockNotifier = (*LoggingLowStockNotifier)(nil)
