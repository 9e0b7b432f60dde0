package recordio

import "errors"

// Sentinel errors for decoding.
var (
	ErrEmptyInput    = errors.New("record payload is empty")
	ErrSyntax        = errors.New("record payload is not valid")
	ErrShape         = errors.New("record payload must be an array of objects")
	ErrInputTooLarge = errors.New("record payload exceeds maximum size")
)
