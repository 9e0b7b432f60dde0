package devloft_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-devloft"
)

// Example demonstrates converting Markdown with the rule pipeline.
func Example() {
	html := devloft.RenderMarkdown("# Hello\n\nSome **bold** text.")
	fmt.Println(html)
	// Output:
	// <h1>Hello</h1>
	//
	// <p>Some <strong>bold</strong> text.</p>
}

// ExampleNewRenderer demonstrates selecting the commonmark engine.
func ExampleNewRenderer() {
	r, err := devloft.NewRenderer(devloft.WithEngine(devloft.EngineCommonMark))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html, err := r.Render(context.Background(), "## Setup\n\n1. install\n2. run\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(html, `<h2 id="setup">`) && strings.Contains(html, "<ol>") {
		fmt.Println("heading id and ordered list rendered")
	}
	// Output: heading id and ordered list rendered
}

// ExampleRenderer_RenderPage demonstrates producing a standalone document.
func ExampleRenderer_RenderPage() {
	r, err := devloft.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	page, err := r.RenderPage(context.Background(), "# Changelog\n\nFirst release.", devloft.Page{Style: "minimal"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(page, "<title>Changelog</title>") {
		fmt.Println("page titled from first heading")
	}
	// Output: page titled from first heading
}

// ExampleApply demonstrates filtering and sorting decoded records.
func ExampleApply() {
	data := []byte(`[
		{"name": "Alice", "score": 90},
		{"name": "Bob", "score": 75},
		{"name": "Charlie", "score": 88}
	]`)

	records, err := devloft.DecodeRecords(data, devloft.FormatJSON)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := devloft.Apply(records, devloft.Query{
		Filter:  "score>80",
		SortKey: "score",
		Order:   devloft.Desc,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range out {
		fmt.Println(r.Lookup("name").Text(), r.Lookup("score").Text())
	}
	// Output:
	// Alice 90
	// Charlie 88
}

// ExampleEncodeRecords demonstrates writing records as indented JSON.
func ExampleEncodeRecords() {
	records := []devloft.Record{
		devloft.NewRecord(
			devloft.Field{Name: "name", Value: devloft.StringValue("Alice")},
			devloft.Field{Name: "age", Value: devloft.NumberValue(30)},
		),
	}

	if err := devloft.EncodeRecords(os.Stdout, records); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// [
	//   {
	//     "name": "Alice",
	//     "age": 30
	//   }
	// ]
}

// ExampleParseFilter demonstrates inspecting a filter expression.
func ExampleParseFilter() {
	expr, err := devloft.ParseFilter("status != done")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s | %s | %s\n", expr.Field, expr.Op, expr.Literal)
	// Output: status | != | done
}
