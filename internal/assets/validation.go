package assets

import (
	"fmt"
	"regexp"
)

// maxAssetNameLength bounds names taken from config files and flags.
const maxAssetNameLength = 64

// Letters, digits, hyphen and underscore only: no separators, dots or spaces.
var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty, too long, or contains
// anything other than letters, digits, hyphens and underscores.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: name longer than %d characters", ErrInvalidAssetName, maxAssetNameLength)
	}
	if !assetNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
