package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/praxishq/praxis-cli/internal/logger"
)

// Sentinel errors for the client's failure taxonomy. Callers classify with
// errors.Is and decide whether to surface, refetch, or degrade.
var (
	// ErrNotAuthorized means the caller lacks rights for a write (not the
	// group owner, not the record's owner). Never retried.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound means the target row no longer exists, e.g. the group was
	// deleted mid-operation. Callers discard local state and refetch.
	ErrNotFound = errors.New("not found")

	// ErrNotPermitted means the notification agent refused or is unreachable.
	// Non-fatal: reminders degrade to scheduling nothing.
	ErrNotPermitted = errors.New("notifications not permitted")

	// ErrRetryable wraps transient connectivity failures from the storage
	// layer. The client surfaces these without its own retry loop.
	ErrRetryable = errors.New("temporary storage failure")
)

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotAuthorized reports whether err is, or wraps, ErrNotAuthorized.
func IsNotAuthorized(err error) bool {
	return errors.Is(err, ErrNotAuthorized)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
