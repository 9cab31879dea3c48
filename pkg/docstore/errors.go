package docstore

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by a Store matches exactly one of these
// via errors.Is, while errors.Unwrap still yields the substrate cause.
var (
	ErrRead   = errors.New("docstore: read failed")
	ErrWrite  = errors.New("docstore: write failed")
	ErrUpdate = errors.New("docstore: update failed")
	ErrDelete = errors.New("docstore: delete failed")
	ErrQuery  = errors.New("docstore: query failed")
	ErrClear  = errors.New("docstore: clear failed")
)

// Error is a kinded storage error. Kind is one of the sentinel errors above.
type Error struct {
	Kind error
	Op   string
	Key  string
	Err  error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

func wrapErr(kind error, op, key string, err error) error {
	return &Error{Kind: kind, Op: op, Key: key, Err: err}
}
