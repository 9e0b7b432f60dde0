package assets

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"

// PageTemplateName is the name of the standalone page template.
const PageTemplateName = "page"

// StyleNames lists the built-in style names in lexical order.
func StyleNames() []string {
	return fsSource{fsys: builtin}.Names(Style)
}
