package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Generation failure (I/O errors, partial batch writes)
	ExitCommandError = 2 // Command error (bad flags, malformed coordinates, invalid plans)
)

// ExitError carries the process exit code a failed command maps to,
// distinguishing bad invocations from generation failures.
type ExitError struct {
	Code    int    // ExitFailure or ExitCommandError
	Message string // what the command was doing when it failed
	Err     error  // underlying cause, if any
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError attaches an exit code and context to an error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps an error to the code main should exit with. Errors
// that never got classified count as generation failures (1).
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose output (defaults to Writer)
	Verbose   bool
}

// newFormatter builds a formatter bound to the command's writers.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string `json:"status"`         // "ok"
	Data   any    `json:"data,omitempty"` // success payload
}

// Success outputs a successful result as JSON. Text-format output is
// hand-formatted by each command instead.
func (f *OutputFormatter) Success(data any) error {
	return json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status: "ok",
		Data:   data,
	})
}

// VerboseLog writes a progress line when --verbose is set, to ErrWriter
// when one is bound and Writer otherwise.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
