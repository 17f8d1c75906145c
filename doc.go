// Package md2html converts a Markdown document read from a stream into HTML.
//
// # Quick Start
//
// Convert whatever arrives on standard input and write the HTML to standard
// output:
//
//	f := md2html.NewFilter(md2html.NewConverter())
//	if err := f.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Or convert an in-memory document:
//
//	html, err := md2html.NewConverter().Convert([]byte("# Hello"))
//
// # Conversion Rules
//
// Conversion is delegated to Goldmark with its default configuration: CommonMark
// rules, no extensions, no parser or renderer options. The HTML is returned
// exactly as Goldmark produces it.
//
// # Filter Contract
//
// A Filter reads its input until EOF, converts the complete document, then
// writes the result in a single call. Nothing is written when reading or
// conversion fails, so a failed run never leaves partial HTML behind.
package md2html
