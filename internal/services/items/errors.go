package items

import (
	"errors"
	"fmt"
)

// ErrNotOwner is returned when a user tries to mutate an item that belongs
// to someone else.
var ErrNotOwner = errors.New("item does not belong to this user")

// ErrTextIndexUnsupported is returned when the SQLite library was compiled
// without FTS5. Binaries need the sqlite_fts5 build tag for indexed text
// search; without it keyword search stays on the substring fallback.
var ErrTextIndexUnsupported = errors.New("full-text indexing requires a build with the sqlite_fts5 tag")

// NotFoundError indicates the requested item does not exist.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %d not found", e.ID)
}

// NewNotFoundError creates a NotFoundError for the given id.
func NewNotFoundError(id uint) *NotFoundError {
	return &NotFoundError{ID: id}
}

// IsNotFound reports whether err is an item not-found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
