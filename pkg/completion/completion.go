package completion

import (
	"errors"
	"fmt"

	"golang.org/x/net/context"
)

var ErrEmptyResponse = errors.New("completion service returned no content")

type Request struct {
	SystemPrompt string
	UserMessage  string
}

// Client sends one prompt to a text-completion provider and returns the raw
// reply text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Provider() string
	Model() string
}

// ServiceError is a failed call to the provider. Status is the HTTP status
// when one is known and zero otherwise. Message never contains credentials.
type ServiceError struct {
	Provider string
	Status   int
	Message  string
	Err      error
}

func (e *ServiceError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s completion failed with status %d: %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s completion failed: %s", e.Provider, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
