package csview

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(documentPayload{
		Header:  doc.Header,
		Columns: doc.Columns,
		Rows:    doc.Rows,
	}); err != nil {
		return err
	}
	return enc.Close()
}
