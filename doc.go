// Package devloft renders Markdown to HTML and filters and sorts record sets.
//
// # Markdown
//
// RenderMarkdown converts a document with the default rule pipeline:
//
//	html := devloft.RenderMarkdown("# Hello\n\nSome **bold** text.")
//
// The pipeline is an ordered list of pattern rewrites. It is total: every
// input produces a fragment and nothing is rejected. Fenced code blocks and
// inline code spans are protected from later rules, so their bodies come out
// escaped and untouched.
//
// Use a Renderer to pick the engine and limits:
//
//	r, err := devloft.NewRenderer(
//	    devloft.WithEngine(devloft.EngineCommonMark),
//	    devloft.WithMaxBytes(1 << 20),
//	)
//	html, err := r.Render(ctx, source)
//
// EngineRules is the rule pipeline. EngineCommonMark is a full GFM parser
// (goldmark) with footnotes, heading IDs and chroma syntax highlighting.
//
// # Pages
//
// RenderPage wraps the fragment in a standalone HTML5 document with an
// embedded style sheet:
//
//	page, err := r.RenderPage(ctx, source, devloft.Page{Style: "dark"})
//
// Styles are built-in names ("default", "dark", "minimal") or paths to CSS
// files. Custom styles and page templates can be loaded from a directory
// with NewAssetLoader:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── page.html
//
// # Records
//
// Records are ordered field/value maps decoded from a JSON or YAML array of
// objects:
//
//	records, err := devloft.DecodeRecords(data, devloft.FormatJSON)
//	out, err := devloft.Apply(records, devloft.Query{
//	    Filter:  "score>=80",
//	    SortKey: "name",
//	    Order:   devloft.Desc,
//	})
//	err = devloft.EncodeRecords(os.Stdout, out)
//
// A filter is a single comparison "field OP literal" with OP one of
// = != > < >= <=. When both sides read as finite numbers they compare
// numerically; otherwise equality is case-insensitive text and ordering
// compares the raw text. Sorting is stable and numeric only when both values
// are numbers in the source payload.
package devloft
