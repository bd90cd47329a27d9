package chat

import (
	"Fintar/pkg/response"
	"fmt"
)

var (
	ErrEmptyMessage       = response.NewError(400, "message is required")
	ErrCompletionService  = response.NewError(502, "completion service error")
	ErrCompletionDisabled = response.NewError(503, "completion service is not configured")
)

// PersistError reports a batch where at least one transaction could not be
// stored. Transactions stored before and after the failure stay stored.
type PersistError struct {
	Persisted int
	Failed    int
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%d of %d transactions could not be saved: %v", e.Failed, e.Persisted+e.Failed, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
