package csview

import (
	"encoding/json"
	"io"
)

// documentPayload is the wire shape shared by the JSON and YAML formats.
type documentPayload struct {
	Header  []string   `json:"header,omitempty" yaml:"header,omitempty"`
	Columns int        `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

func writeJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(documentPayload{
		Header:  doc.Header,
		Columns: doc.Columns,
		Rows:    doc.Rows,
	})
}
