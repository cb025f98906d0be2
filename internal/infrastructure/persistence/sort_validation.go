package persistence

import (
	"fmt"
	"strings"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns the defaultField if the input is empty or not whitelisted.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// StockItemSortFields contains allowed sort fields for stock items
var StockItemSortFields = map[string]bool{
	"id":                  true,
	"created_at":          true,
	"updated_at":          true,
	"name":                true,
	"kind":                true,
	"current_stock":       true,
	"low_stock_threshold": true,
}

// RecipeSortFields contains allowed sort fields for recipes
var RecipeSortFields = map[string]bool{
	"id":                 true,
	"created_at":         true,
	"updated_at":         true,
	"name":               true,
	"finished_good_name": true,
	"status":             true,
}

// WorkOrderSortFields contains allowed sort fields for work orders
var WorkOrderSortFields = map[string]bool{
	"id":                 true,
	"created_at":         true,
	"updated_at":         true,
	"scheduled_start":    true,
	"due_by":             true,
	"status":             true,
	"finished_good_name": true,
}

// DemandPlanSortFields contains allowed sort fields for demand plans
var DemandPlanSortFields = map[string]bool{
	"id":                 true,
	"created_at":         true,
	"updated_at":         true,
	"status":             true,
	"pickup_at":          true,
	"finished_good_name": true,
}

// PurchaseOrderSortFields contains allowed sort fields for purchase orders
var PurchaseOrderSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"status":     true,
	"sent_at":    true,
}

func toString(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
