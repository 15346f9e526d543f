package ostree

import (
	"fmt"
	"strings"
)

// CommandError reports a collaborator invocation that exited unsuccessfully.
// It carries the full argv and captured stderr for diagnostics.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("failed to run %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
