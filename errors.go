package devloft

import (
	"errors"

	"github.com/alnah/go-devloft/internal/query"
	"github.com/alnah/go-devloft/internal/recordio"
)

// Sentinel errors for library operations.
var (
	ErrUnknownEngine = errors.New("unknown markdown engine")
	ErrInputTooLarge = errors.New("input exceeds maximum size")
	ErrConversion    = errors.New("markdown conversion failed")
	ErrPageRender    = errors.New("page template rendering failed")
	ErrFrontMatter   = errors.New("invalid front matter")

	// Query errors.
	ErrInvalidFilter    = query.ErrInvalidFilter
	ErrEmptySortKey     = query.ErrEmptySortKey
	ErrInvalidDirection = query.ErrInvalidDirection

	// Record payload errors.
	ErrEmptyInput = recordio.ErrEmptyInput
	ErrSyntax     = recordio.ErrSyntax
	ErrShape      = recordio.ErrShape

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// ParseError reports a filter expression that does not match the grammar.
// It unwraps to ErrInvalidFilter.
type ParseError = query.ParseError

// convertInputError maps internal size-limit errors to ErrInputTooLarge.
func convertInputError(err error) error {
	if errors.Is(err, query.ErrTooManyRecords) || errors.Is(err, recordio.ErrInputTooLarge) {
		return wrapError(ErrInputTooLarge, err)
	}
	return err
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}
