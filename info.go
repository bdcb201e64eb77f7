package csview

import (
	"fmt"
	"io"
)

func writeInfo(w io.Writer, doc *Document) error {
	if doc == nil {
		_, err := fmt.Fprintln(w, nilNotice)
		return err
	}

	header := "No"
	if doc.HasHeader() {
		header = "Yes"
	}

	lines := []string{
		"--- CSV Info ---",
		fmt.Sprintf("Rows:    %d", len(doc.Rows)),
		fmt.Sprintf("Columns: %d", doc.Columns),
		fmt.Sprintf("Header:  %s", header),
		"----------------",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
