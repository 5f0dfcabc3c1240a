package cli

import "fmt"

// Exit codes used by the commands.
const (
	exitMalformed  = 2
	exitNoSolution = 3
)

// ExitError carries a specific process exit code back to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}
