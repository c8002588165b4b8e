package garden

import "fmt"

// Domain errors for the plant inventory tree

// ErrUnsupportedOperation indicates a structural operation was invoked on a leaf
type ErrUnsupportedOperation struct {
	Operation string
	Component string
}

func (e *ErrUnsupportedOperation) Error() string {
	return fmt.Sprintf("unsupported operation: cannot %s on plant %q", e.Operation, e.Component)
}

// ErrInvalidComponent indicates a child could not be attached to a section
type ErrInvalidComponent struct {
	Section string
	Reason  string
}

func (e *ErrInvalidComponent) Error() string {
	return fmt.Sprintf("cannot add to section %q: %s", e.Section, e.Reason)
}

// ErrNotChild indicates a removal targeted a component the section does not own
type ErrNotChild struct {
	Section   string
	Component string
}

func (e *ErrNotChild) Error() string {
	return fmt.Sprintf("%q is not a child of section %q", e.Component, e.Section)
}

// ErrAlreadySold indicates a unit was sold twice
type ErrAlreadySold struct {
	PlantID string
	Name    string
}

func (e *ErrAlreadySold) Error() string {
	return fmt.Sprintf("plant %s (%s) has already been sold", e.Name, e.PlantID)
}
