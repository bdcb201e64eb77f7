package csview

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// nilNotice is written by the Table and Info formats when doc is nil.
const nilNotice = "Document is nil."

// cellSep follows every cell, including the last one on a line; the dash rule
// under the header repeats the same trailing-delimiter convention with colSep.
const (
	cellSep = " | "
	colSep  = "-+-"
)

func writeTable(w io.Writer, doc *Document) error {
	if doc == nil {
		_, err := fmt.Fprintln(w, nilNotice)
		return err
	}

	widths := columnWidths(doc)

	if doc.Header != nil {
		var sb strings.Builder
		for i := 0; i < doc.Columns; i++ {
			cell := ""
			if i < len(doc.Header) {
				cell = doc.Header[i]
			}
			sb.WriteString(padCell(cell, widths[i]))
			sb.WriteString(cellSep)
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}

		sb.Reset()
		for i := 0; i < doc.Columns; i++ {
			sb.WriteString(strings.Repeat("-", widths[i]))
			sb.WriteString(colSep)
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}

	for _, row := range doc.Rows {
		var sb strings.Builder
		for i, cell := range row {
			if i >= doc.Columns {
				break
			}
			sb.WriteString(padCell(cell, widths[i]))
			sb.WriteString(cellSep)
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths returns the display width of each of the first doc.Columns
// columns: the maximum over the header field and every row field at that
// index. Rows shorter than doc.Columns contribute nothing for the missing
// columns; fields past doc.Columns are ignored.
func columnWidths(doc *Document) []int {
	widths := make([]int, doc.Columns)
	for i, cell := range doc.Header {
		if i >= doc.Columns {
			break
		}
		if w := runewidth.StringWidth(cell); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range doc.Rows {
		for i, cell := range row {
			if i >= doc.Columns {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func padCell(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
