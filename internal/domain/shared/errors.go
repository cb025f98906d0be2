package shared

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrHasDependents     = NewDomainError("HAS_DEPENDENTS", "Resource is referenced by other records")
)

// ShortfallDetail itemizes one stock item that cannot cover a required quantity.
type ShortfallDetail struct {
	ItemID    uuid.UUID       `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Required  decimal.Decimal `json:"required"`
	Available decimal.Decimal `json:"available"`
	Short     decimal.Decimal `json:"short"`
}

// InsufficientStockError is returned when a stock-affecting commit is blocked
// by a live sufficiency check. It carries the itemized shortfall so callers
// can report exactly what is short and by how much.
type InsufficientStockError struct {
	Details []ShortfallDetail
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, fmt.Sprintf("%s: need %s, have %s", d.ItemName, d.Required.String(), d.Available.String()))
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

// ErrorCode returns the domain error code for HTTP mapping
func (e *InsufficientStockError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// NewInsufficientStockError creates an InsufficientStockError from shortfall details
func NewInsufficientStockError(details []ShortfallDetail) *InsufficientStockError {
	return &InsufficientStockError{Details: details}
}
