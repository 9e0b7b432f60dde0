package assets

import "errors"

// Library looks assets up in a stack of sources, first match wins.
type Library struct {
	sources []Source
}

// NewLibrary returns the embedded assets, preceded by customPath when set.
// Returns ErrInvalidBasePath if customPath is set but unusable.
func NewLibrary(customPath string) (*Library, error) {
	lib := &Library{}

	if customPath != "" {
		dir, err := OpenDir(customPath)
		if err != nil {
			return nil, err
		}
		lib.sources = append(lib.sources, dir)
	}
	lib.sources = append(lib.sources, Embedded())

	return lib, nil
}

// Load returns the first source's copy of the asset. Only a not-found
// result moves on to the next source.
func (l *Library) Load(k Kind, name string) (string, error) {
	var err error
	for _, src := range l.sources {
		var content string
		if content, err = src.Load(k, name); err == nil {
			return content, nil
		}
		if !errors.Is(err, k.notFound) {
			return "", err
		}
	}
	return "", err
}

// LoadStyle loads a CSS style by name, without the .css extension.
func (l *Library) LoadStyle(name string) (string, error) {
	return l.Load(Style, name)
}

// LoadTemplate loads a page template by name, without the .html extension.
func (l *Library) LoadTemplate(name string) (string, error) {
	return l.Load(Template, name)
}
