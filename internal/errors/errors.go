package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/ecolog/internal/logger"
)

// ErrNotInitialized is returned by stores that have no backing file or schema yet.
var ErrNotInitialized = stderrors.New("storage not initialized")

// Format formats an error message with a consistent "Error: " prefix.
// Uninitialized storage gets a hint pointing at 'ecolog init'.
func Format(err error) string {
	if err == nil {
		return ""
	}
	if stderrors.Is(err, ErrNotInitialized) {
		return fmt.Sprintf("Error: %v (run 'ecolog init' first)", err)
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
