// Package mdrender converts Markdown to an HTML fragment with an ordered list
// of whole-text rewrite rules.
//
// There is no tokenizer and no syntax tree. Each rule scans the entire current
// text and replaces every non-overlapping match of one syntax form before the
// next rule runs. Rule order is part of the contract:
//
//  1. line endings are normalized
//  2. fenced code blocks are rendered and stashed
//  3. block rules: tables, blockquotes, headings, rules, list items
//  4. inline rules: code spans (stashed), emphasis, strikethrough, links, images
//  5. remaining lines are wrapped in paragraphs
//  6. blank runs are collapsed, stashed code is restored, the result is trimmed
//
// Stashed code is held behind Unicode Private Use Area placeholders so that
// no later rule can rewrite a code body. Use Names to inspect the order.
//
// Unparseable input never fails: unmatched syntax stays literal text or ends
// up in a plain paragraph.
package mdrender
