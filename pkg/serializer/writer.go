// Package serializer formats verification reports and other structured
// values for files and terminals. It supports JSON, YAML, and a flattened
// key/value table suited to quick terminal inspection.
package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Writer serializes values to an output stream in a fixed format.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer

	// fpath defers file creation to the first Serialize call.
	fpath string
}

// NewWriter creates a Writer targeting out. An unknown format falls back
// to JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a Writer targeting the named file, or
// stdout when path is empty or StdoutURI. File creation is deferred to
// the first Serialize call so that a failing command does not leave an
// empty output file behind.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format)
	}
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, fpath: path}
}

// Serialize writes v to the writer's output in the configured format.
func (w *Writer) Serialize(v any) error {
	if w.out == nil {
		f, err := os.Create(w.fpath)
		if err != nil {
			return fmt.Errorf("creating output file %q: %w", w.fpath, err)
		}
		w.out = f
		w.closer = f
	}

	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return w.serializeTable(v)
	default:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}

// Close releases the underlying file, if any.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// serializeTable renders v as a two-column FIELD/VALUE table with
// flattened hierarchical keys such as "Results[0].Name".
func (w *Writer) serializeTable(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("flattening value: %w", err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("flattening value: %w", err)
	}

	rows := map[string]string{}
	flatten("", tree, rows)
	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, rows[k])
	}
	return tw.Flush()
}

func flatten(prefix string, v any, rows map[string]string) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, rows)
		}
	case []any:
		for i, child := range t {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), child, rows)
		}
	case nil:
		rows[prefix] = ""
	case string:
		rows[prefix] = t
	default:
		rows[prefix] = strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
