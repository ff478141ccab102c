package progress

import (
	"errors"
	"fmt"
)

// ErrConflict is returned when the per-user compare-and-swap write keeps
// losing against concurrent completions for the same user.
var ErrConflict = errors.New("concurrent progress update conflict")

// NotFoundError reports which identifier failed to resolve. Lookups happen
// before any mutation, so a NotFoundError never leaves partial writes.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
