package staff

import (
	"fmt"

	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
)

// ErrUnhandledRequest indicates no employee on the roster accepted a request.
// It is reported and counted, never fatal to a run.
type ErrUnhandledRequest struct {
	Category  request.Category
	Requester string
	Reason    string
}

func (e *ErrUnhandledRequest) Error() string {
	return fmt.Sprintf("unhandled %s request from %s: %s", e.Category, e.Requester, e.Reason)
}

// ErrUnknownRole indicates a factory was requested for a role that does not exist
type ErrUnknownRole struct {
	Role string
}

func (e *ErrUnknownRole) Error() string {
	return fmt.Sprintf("unknown employee role: %s", e.Role)
}
