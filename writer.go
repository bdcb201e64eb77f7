package csview

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

func writeCSV(w io.Writer, doc *Document) error {
	if doc.Header != nil {
		if _, err := fmt.Fprintln(w, strings.Join(doc.Header, string(delimiter))); err != nil {
			return err
		}
	}
	for _, row := range doc.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, string(delimiter))); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile serializes doc as delimiter-separated text to path, creating or
// truncating the file. Each row is written with its actual field count, not
// clipped or padded to doc.Columns. Fields are not re-quoted, so a field that
// contains the delimiter or quote marker produces output that is ambiguous to
// re-parse. The first write failure aborts; bytes already flushed stay.
func WriteFile(path string, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: cannot serialize", ErrNilDocument)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := writeCSV(bw, doc); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
