package mdrender

// Options configures a Pipeline.
type Options struct {
	// WrapOrderedLists wraps runs of ordered items in <ol>. Off by default:
	// ordered items are emitted as bare <li> lines while unordered items get
	// a <ul>, and existing output depends on that asymmetry.
	WrapOrderedLists bool
}

// Pipeline is an immutable, ordered list of rewrite rules.
// It is safe for concurrent use.
type Pipeline struct {
	rules []Rule
}

// New builds a Pipeline for the given options.
func New(opts Options) *Pipeline {
	return &Pipeline{rules: rules(opts)}
}

// Render converts a Markdown document to an HTML fragment.
// Empty input gives empty output.
func (p *Pipeline) Render(source string) string {
	if source == "" {
		return ""
	}

	escaped := hasSentinels(source)
	text := source
	if escaped {
		text = escapeSentinels(text)
	}

	s := &stash{}
	for _, r := range p.rules {
		text = r.apply(text, s)
	}
	if escaped {
		text = unescapeSentinels(text)
	}
	return text
}

// Names returns the rule names in application order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.rules))
	for i, r := range p.rules {
		names[i] = r.Name
	}
	return names
}

// defaultPipeline backs the package-level Render.
var defaultPipeline = New(Options{})

// Render converts source with the default options.
func Render(source string) string {
	return defaultPipeline.Render(source)
}
