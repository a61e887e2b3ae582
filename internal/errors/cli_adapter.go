package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	stderr  io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		stderr:  os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if bse, ok := As(err); ok {
		return a.exitCodeFromBuildState(bse)
	}

	return 1
}

// exitCodeFromBuildState maps BuildStateError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromBuildState(err *BuildStateError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFileSystem, CategoryDecode:
		return 11 // State file error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if bse, ok := As(err); ok {
		return a.formatBuildState(bse)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatBuildState formats a BuildStateError for display.
func (a *CLIErrorAdapter) formatBuildState(err *BuildStateError) string {
	if a.verbose {
		return err.Error()
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return err.Message
	default:
		if path, ok := err.Context["path"]; ok {
			return fmt.Sprintf("%s: %s (%v)", err.Category, err.Message, path)
		}
		return fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(a.stderr, "%s\n", message)
	a.exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if bse, ok := As(err); ok {
		return bse.Category == CategoryInternal
	}

	return true
}

// logError logs an error with its category and cause.
func (a *CLIErrorAdapter) logError(err error) {
	if bse, ok := As(err); ok {
		attrs := []slog.Attr{
			slog.String("category", string(bse.Category)),
		}
		if bse.Cause != nil {
			attrs = append(attrs, slog.String("cause", bse.Cause.Error()))
		}
		a.logger.LogAttrs(context.Background(), slog.LevelError, bse.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}
