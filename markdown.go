package csview

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, doc *Document) error {
	if doc.Header == nil {
		return fmt.Errorf("%w: format %q needs column names", ErrNoHeader, Markdown)
	}

	// Minimum width 3 so the separator row stays valid Markdown.
	widths := columnWidths(doc)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, doc.Header, widths); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range doc.Rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = padCell(cell, width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
