package fetch

import "fmt"

// PullError identifies the ref whose transfer failed and the remote it was
// being pulled from.
type PullError struct {
	Remote string
	Ref    string
	Err    error
}

func (e *PullError) Error() string {
	return fmt.Sprintf("failed to pull %s from %s: %v", e.Ref, e.Remote, e.Err)
}

func (e *PullError) Unwrap() error {
	return e.Err
}
