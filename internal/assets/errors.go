package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName indicates a name that is not a bare file stem.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the custom directory is missing or not a directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates a custom asset exists but could not be read,
	// including links that leave the custom directory.
	ErrAssetRead = errors.New("failed to read asset")
)
