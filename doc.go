// Package csview loads delimiter-separated text into an in-memory document,
// serializes it back out, and renders it in several display formats.
//
// The central entry points are [Parse] and [ParseFile], which build a
// [Document] from a byte stream, and [Write] and [Marshal], which render a
// Document in a [Format]: CSV, Table, Markdown, JSON, YAML, or Info.
//
// # Parsing
//
// Input is consumed line by line. Comma is the field delimiter; a double
// quote at the start of a field switches boundary scanning to the next quote
// marker, so commas inside the quoted span are literal. The dialect is
// deliberately simple and not RFC 4180: doubled quote markers are not an
// escape, an unterminated quote consumes the rest of the line, and quoted
// fields cannot span lines. Blank lines produce no row, carriage returns are
// stripped, and lines longer than [DefaultMaxLineLen]-1 bytes are truncated
// ([ParseLimit] and [ParseFileLimit] take the cap as a parameter).
//
//	doc, err := csview.ParseFile("people.csv", true)
//	if err != nil {
//		return err
//	}
//	defer doc.Release()
//
// The column count comes from the header when one is parsed, otherwise from
// the first data row. Rows whose field count differs are kept as-is; every
// renderer states its own policy for them.
//
// # Rendering
//
//	csview.Write(os.Stdout, csview.Table, doc)
//	csview.Write(os.Stdout, csview.Info, doc)
//	out, err := csview.Marshal(csview.JSON, doc)
//
// Table aligns cells to per-column display widths and shows at most
// doc.Columns fields per row. Info prints a summary block with the row count,
// column count, and header presence. Markdown requires a header and renders a
// GitHub-flavored table. JSON and YAML encode the header, column count, and
// rows as a single object.
//
// # Serialization
//
// The CSV format and [WriteFile] write the header and then each row with its
// actual field count, comma-joined and newline-terminated. Fields are not
// re-quoted on output, so a field containing a comma or quote marker is
// ambiguous to re-parse; for content free of delimiter, quote marker, and
// newline characters, serializing and re-parsing reproduces the document.
//
// # Format Selection
//
// Use [ParseFormat] to convert a CLI flag string into a [Format]:
//
//	f, err := csview.ParseFormat(flagValue)
//	csview.Write(os.Stdout, f, doc)
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrNilDocument] — serialization format given a nil document
//   - [ErrNoHeader] — Markdown rendering without a header
//
// Malformed input is never an error: unterminated quotes and ragged rows
// degrade to a best-effort parse.
package csview
