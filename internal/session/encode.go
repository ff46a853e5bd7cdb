package session

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"sigs.k8s.io/yaml"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Encoder writes records in one of the supported formats.
type Encoder struct {
	w      io.Writer
	format string
}

func NewEncoder(w io.Writer, format string) (*Encoder, error) {
	switch format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Encoder{w: w, format: format}, nil
}

// Encode writes the records of a single result. JSON is written one record per line, YAML as
// one document per result, and text as an aligned table.
func (e *Encoder) Encode(res *Result) error {
	switch e.format {
	case FormatYAML:
		return e.encodeYAML(res)
	case FormatText:
		return e.encodeText(res)
	default:
		return e.encodeJSON(res)
	}
}

func (e *Encoder) encodeJSON(res *Result) error {
	enc := json.NewEncoder(e.w)
	for _, rec := range res.Records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeYAML(res *Result) error {
	records := res.Records
	if records == nil {
		records = []Record{}
	}
	doc, err := yaml.Marshal(records)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, "---\n"); err != nil {
		return err
	}
	_, err = e.w.Write(doc)
	return err
}

func (e *Encoder) encodeText(res *Result) error {
	tw := tabwriter.NewWriter(e.w, 0, 4, 2, ' ', 0)
	for _, rec := range res.Records {
		kw := ""
		if rec.Keyword {
			kw = "keyword"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s-%s\t%s\t%v\t%s\n", rec.Source, rec.Start, rec.End, rec.Kind, formatValue(rec.Value), kw); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}
