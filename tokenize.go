package csview

import "strings"

const (
	delimiter   = ','
	quoteMarker = '"'
)

const initialFieldCap = 10

// SplitLine splits one line into an ordered sequence of fields. Comma is the
// delimiter and a double quote at the start of a field switches boundary
// scanning to the next quote marker, so delimiters inside the quoted span are
// taken literally. An unterminated quote consumes the rest of the line.
// Doubled quote markers are not an escape; the second marker closes the field.
// After each field one delimiter and any run of spaces and tabs are skipped.
// An empty line yields zero fields.
func SplitLine(line string) []string {
	fields := make([]string, 0, initialFieldCap)

	i := 0
	for i < len(line) {
		var field string

		if line[i] == quoteMarker {
			start := i + 1
			if end := strings.IndexByte(line[start:], quoteMarker); end >= 0 {
				field = line[start : start+end]
				i = start + end + 1
			} else {
				field = line[start:]
				i = len(line)
			}
		} else {
			if end := strings.IndexByte(line[i:], delimiter); end >= 0 {
				field = line[i : i+end]
				i += end
			} else {
				field = line[i:]
				i = len(line)
			}
		}

		fields = append(fields, field)

		if i < len(line) && line[i] == delimiter {
			i++
		}
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
	}

	return fields
}
