package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Inventory errors

type InventoryError struct {
	*DomainError
}

func NewInventoryError(message string) *InventoryError {
	return &InventoryError{DomainError: NewDomainError(message)}
}

// NotFoundError reports a lookup for a named item that does not exist
type NotFoundError struct {
	*InventoryError
	Kind string
	Name string
}

func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{
		InventoryError: NewInventoryError(fmt.Sprintf("%s %q not found", kind, name)),
		Kind:           kind,
		Name:           name,
	}
}

// InsufficientStockError reports that fewer sellable units exist than requested
type InsufficientStockError struct {
	*InventoryError
	Item      string
	Requested int
	Available int
}

func NewInsufficientStockError(item string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		InventoryError: NewInventoryError(fmt.Sprintf("insufficient stock of %s: need %d, have %d", item, requested, available)),
		Item:           item,
		Requested:      requested,
		Available:      available,
	}
}
