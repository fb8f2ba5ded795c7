package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/memo/pkg/core"
)

// FilePrefix starts every export file name.
const FilePrefix = "notes_export_"

// Document is a serialized note collection ready to be written out.
type Document struct {
	Name   string
	Format Format
	Data   []byte
	Count  int
}

// FileName returns notes_export_YYYY-MM-DD with the format's extension,
// using the UTC calendar date of now.
func FileName(now time.Time, format Format) string {
	return FilePrefix + now.UTC().Format(time.DateOnly) + format.Ext()
}

// Export serializes every field of every note as an indented document.
// An empty collection fails with core.ErrEmptyCollection.
func Export(notes []core.Note, now time.Time, format Format) (Document, error) {
	if len(notes) == 0 {
		return Document{}, core.ErrEmptyCollection
	}

	data, err := encode(notes, format)
	if err != nil {
		return Document{}, fmt.Errorf("failed to encode export: %w", err)
	}

	return Document{
		Name:   FileName(now, format),
		Format: format,
		Data:   data,
		Count:  len(notes),
	}, nil
}

func encode(notes []core.Note, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(notes); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON, "":
		return json.MarshalIndent(notes, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
