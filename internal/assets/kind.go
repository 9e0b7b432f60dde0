package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Kind is an asset family: a directory of files sharing one extension.
type Kind struct {
	Dir      string
	Ext      string
	notFound error
}

// Asset families.
var (
	Style    = Kind{Dir: "styles", Ext: ".css", notFound: ErrStyleNotFound}
	Template = Kind{Dir: "templates", Ext: ".html", notFound: ErrTemplateNotFound}
)

// Source reads assets by family and name.
type Source interface {
	Load(k Kind, name string) (string, error)
}

// fsSource reads assets from a slash-separated file system.
type fsSource struct {
	fsys fs.FS
}

// Load reads {Dir}/{name}{Ext}.
func (s fsSource) Load(k Kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := fs.ReadFile(s.fsys, path.Join(k.Dir, name+k.Ext))
	switch {
	case err == nil:
		return string(content), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", k.notFound, name)
	default:
		return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, name, err)
	}
}

// Names lists the asset names of family k in lexical order.
func (s fsSource) Names(k Kind) []string {
	matches, err := fs.Glob(s.fsys, path.Join(k.Dir, "*"+k.Ext))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(path.Base(m), k.Ext)
		if ValidateAssetName(name) == nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
