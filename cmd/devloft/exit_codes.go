package main

import (
	"errors"
	"os"

	devloft "github.com/alnah/go-devloft"
	"github.com/alnah/go-devloft/internal/config"
	"github.com/alnah/go-devloft/internal/hints"
)

// Exit codes for the devloft CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, filter or payload
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, devloft.ErrUnknownEngine) ||
		errors.Is(err, devloft.ErrInvalidFilter) ||
		errors.Is(err, devloft.ErrEmptySortKey) ||
		errors.Is(err, devloft.ErrInvalidDirection) ||
		errors.Is(err, devloft.ErrShape) ||
		errors.Is(err, devloft.ErrSyntax) ||
		errors.Is(err, devloft.ErrEmptyInput) ||
		errors.Is(err, devloft.ErrInputTooLarge) ||
		errors.Is(err, devloft.ErrFrontMatter) ||
		errors.Is(err, devloft.ErrStyleNotFound) ||
		errors.Is(err, devloft.ErrTemplateNotFound) ||
		errors.Is(err, devloft.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNoQuery) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}

// describeError formats err for the terminal, appending a hint for
// errors the user can fix.
func describeError(err error) string {
	msg := err.Error()
	var perr *devloft.ParseError

	switch {
	case errors.As(err, &perr):
		return msg + hints.ForFilterSyntax(perr.Expr)
	case errors.Is(err, devloft.ErrInvalidDirection):
		return msg + hints.ForSortDirection()
	case errors.Is(err, devloft.ErrShape):
		return msg + hints.ForRecordShape()
	case errors.Is(err, devloft.ErrUnknownEngine):
		return msg + hints.ForUnknownEngine(devloft.Engines())
	case errors.Is(err, devloft.ErrStyleNotFound):
		return msg + hints.ForStyleNotFound(devloft.StyleNames())
	case errors.Is(err, ErrCreateOutputDir):
		return msg + hints.ForOutputDirectory()
	}
	return msg
}
