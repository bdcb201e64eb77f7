package csview_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bjaus/csview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func mustParse(t *testing.T, input string, hasHeader bool) *csview.Document {
	t.Helper()
	doc, err := csview.Parse(strings.NewReader(input), hasHeader)
	require.NoError(t, err)
	return doc
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    csview.Format
		wantErr require.ErrorAssertionFunc
	}{
		"csv":      {input: "csv", want: csview.CSV, wantErr: require.NoError},
		"table":    {input: "table", want: csview.Table, wantErr: require.NoError},
		"markdown": {input: "markdown", want: csview.Markdown, wantErr: require.NoError},
		"json":     {input: "json", want: csview.JSON, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: csview.YAML, wantErr: require.NoError},
		"info":     {input: "info", want: csview.Info, wantErr: require.NoError},
		"unknown":  {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := csview.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := csview.Formats()
	assert.Equal(t, []csview.Format{
		csview.CSV, csview.Table, csview.Markdown,
		csview.JSON, csview.YAML, csview.Info,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, csview.CSV, csview.Formats()[0])
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "csv", csview.CSV.String())
	assert.Equal(t, "table", csview.Table.String())
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "a\n", false)
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.Format("xml"), doc)
	assert.ErrorIs(t, err, csview.ErrUnsupportedFormat)
}

func TestWriteNilDocument(t *testing.T) {
	t.Parallel()
	for _, f := range []csview.Format{csview.CSV, csview.Markdown, csview.JSON, csview.YAML} {
		f := f
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := csview.Write(&buf, f, nil)
			assert.ErrorIs(t, err, csview.ErrNilDocument)
		})
	}
}

// --- CSV ---

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input     string
		hasHeader bool
		want      string
	}{
		"with header": {
			input:     "a,b,c\n1,2,3\n4,5,6\n",
			hasHeader: true,
			want:      "a,b,c\n1,2,3\n4,5,6\n",
		},
		"no header": {
			input: "1,2\n3,4\n",
			want:  "1,2\n3,4\n",
		},
		"ragged rows keep their own field counts": {
			input: "1\n2,3,4\n",
			want:  "1\n2,3,4\n",
		},
		"blank lines dropped": {
			input: "1,2\n\n3,4\n",
			want:  "1,2\n3,4\n",
		},
	}
	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc := mustParse(t, tt.input, tt.hasHeader)
			var buf bytes.Buffer
			err := csview.Write(&buf, csview.CSV, doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteCSVNoRequoting(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "\"x,y\",z\n", false)
	require.Equal(t, [][]string{{"x,y", "z"}}, doc.Rows)

	var buf bytes.Buffer
	err := csview.Write(&buf, csview.CSV, doc)
	require.NoError(t, err)
	// Fields are written verbatim, so the output is ambiguous to re-parse.
	assert.Equal(t, "x,y,z\n", buf.String())
}

func TestWriteCSVError(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "1,2\n", false)
	err := csview.Write(errWriter{}, csview.CSV, doc)
	assert.ErrorIs(t, err, errWriteFailed)
}

// --- Table ---

func TestWriteTable(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "a,b,c\n1,2,3\n4,5,6\n", true)
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.Table, doc)
	require.NoError(t, err)
	want := "a | b | c | \n" +
		"--+---+---+-\n" +
		"1 | 2 | 3 | \n" +
		"4 | 5 | 6 | \n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableColumnWidths(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "id,name\n1,Alice\n42,Bo\n", true)
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.Table, doc)
	require.NoError(t, err)
	want := "id | name  | \n" +
		"---+-------+-\n" +
		"1  | Alice | \n" +
		"42 | Bo    | \n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableNoHeaderOmitsRule(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "1\n2,3,4\n", false)
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.Table, doc)
	require.NoError(t, err)
	// Column count is 1, so only the first field of the second row shows.
	assert.Equal(t, "1 | \n2 | \n", buf.String())
}

func TestWriteTableExtraFieldsHidden(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "a,b\n1,2,3,4\n", true)
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.Table, doc)
	require.NoError(t, err)
	want := "a | b | \n" +
		"--+---+-\n" +
		"1 | 2 | \n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableNilDocument(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.Table, nil)
	require.NoError(t, err)
	assert.Equal(t, "Document is nil.\n", buf.String())
}

// --- Info ---

func TestWriteInfo(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input     string
		hasHeader bool
		want      string
	}{
		"with header": {
			input:     "a,b,c\n1,2,3\n4,5,6\n",
			hasHeader: true,
			want: "--- CSV Info ---\n" +
				"Rows:    2\n" +
				"Columns: 3\n" +
				"Header:  Yes\n" +
				"----------------\n",
		},
		"without header": {
			input: "1,2\n",
			want: "--- CSV Info ---\n" +
				"Rows:    1\n" +
				"Columns: 2\n" +
				"Header:  No\n" +
				"----------------\n",
		},
	}
	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc := mustParse(t, tt.input, tt.hasHeader)
			var buf bytes.Buffer
			err := csview.Write(&buf, csview.Info, doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteInfoNilDocument(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.Info, nil)
	require.NoError(t, err)
	assert.Equal(t, "Document is nil.\n", buf.String())
}

// --- Markdown ---

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "Name,Age\nAlice,30\nBob,25\n", true)
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.Markdown, doc)
	require.NoError(t, err)
	want := "| Name  | Age |\n" +
		"| ----- | --- |\n" +
		"| Alice | 30  |\n" +
		"| Bob   | 25  |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMarkdownRaggedRows(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "a,b\n1\n", true)
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.Markdown, doc)
	require.NoError(t, err)
	want := "| a   | b   |\n" +
		"| --- | --- |\n" +
		"| 1   |     |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMarkdownNoHeader(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "1,2\n", false)
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.Markdown, doc)
	assert.ErrorIs(t, err, csview.ErrNoHeader)
}

// --- JSON ---

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "a,b\n1,2\n", true)
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.JSON, doc)
	require.NoError(t, err)
	assert.Equal(t, `{"header":["a","b"],"columns":2,"rows":[["1","2"]]}`+"\n", buf.String())
}

func TestWriteJSONNoHeader(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "1,2\n", false)
	var buf bytes.Buffer
	err := csview.Write(&buf, csview.JSON, doc)
	require.NoError(t, err)
	assert.Equal(t, `{"columns":2,"rows":[["1","2"]]}`+"\n", buf.String())
}

// --- YAML ---

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "a,b\nx,y\n", true)
	out, err := csview.Marshal(csview.YAML, doc)
	require.NoError(t, err)

	var decoded struct {
		Header  []string   `yaml:"header"`
		Columns int        `yaml:"columns"`
		Rows    [][]string `yaml:"rows"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, []string{"a", "b"}, decoded.Header)
	assert.Equal(t, 2, decoded.Columns)
	assert.Equal(t, [][]string{{"x", "y"}}, decoded.Rows)
}

// --- Marshal ---

func TestMarshal(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "1,2\n", false)
	out, err := csview.Marshal(csview.CSV, doc)
	require.NoError(t, err)
	assert.Equal(t, "1,2\n", string(out))
}

func TestMarshalError(t *testing.T) {
	t.Parallel()
	out, err := csview.Marshal(csview.CSV, nil)
	assert.ErrorIs(t, err, csview.ErrNilDocument)
	assert.Nil(t, out)
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "a,b\n1,2\n3,4\n", true)
	out, err := csview.Marshal(csview.JSON, doc)
	require.NoError(t, err)

	var decoded struct {
		Header  []string   `json:"header"`
		Columns int        `json:"columns"`
		Rows    [][]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, doc.Header, decoded.Header)
	assert.Equal(t, doc.Columns, decoded.Columns)
	assert.Equal(t, doc.Rows, decoded.Rows)
}
