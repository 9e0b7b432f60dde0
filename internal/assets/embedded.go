package assets

import "embed"

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// Embedded returns the assets compiled into the binary.
func Embedded() Source {
	return fsSource{fsys: builtin}
}
