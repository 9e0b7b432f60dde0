// Package assets serves the CSS styles and the page template used to wrap
// rendered Markdown into standalone HTML.
//
// Assets live in two families, each a directory with a fixed extension:
//
//	{root}/
//	├── styles/
//	│   └── {name}.css      # e.g. dark.css
//	└── templates/
//	    └── {name}.html     # html/template layouts, e.g. page.html
//
// A Library stacks sources: a custom directory opened with OpenDir first,
// then the assets compiled into the binary. A missing asset falls through to
// the next source; any other failure stops the lookup, so a broken custom
// directory is reported rather than silently ignored.
//
// Names are validated before any lookup and custom directories are read
// through os.Root, so neither a crafted name nor a symlink can reach files
// outside the directory.
//
// Page templates receive .Title, .Style, .Date and .Body; see the embedded
// templates/page.html.
package assets
