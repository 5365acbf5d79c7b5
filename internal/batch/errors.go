// Package batch orchestrates match recomputation: clearing a user's stored
// matches, scoring every resume-job pair, and persisting the survivors as a
// single replaced set. The scoring itself lives in internal/matching; this
// package owns the persistence-replacement policy and the per-user
// serialization it requires.
package batch

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a referenced resume or user does not exist (or a
// user has no resumes at all). Single-user recomputation surfaces it to the
// caller; the global batch treats it as a silent skip.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
