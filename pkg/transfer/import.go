package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/memo/pkg/core"
)

// wireNote is the accepted shape of one imported note. Every field is
// optional; present fields must have the right type. The id is never trusted.
type wireNote struct {
	ID        any     `json:"id"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	CreatedAt *string `json:"createdAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	UpdatedAt *string `json:"updatedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Pinned    *bool   `json:"pinned"`
}

// Parse decodes raw as a note collection.
// Text that is not valid JSON/YAML fails with *ParseError; a valid document
// whose top-level value is not an array, or whose elements are not note
// objects, fails with *SchemaError. Imported content is not validated.
func Parse(raw []byte, format Format) ([]core.Note, error) {
	var doc any
	if err := decode(raw, format, &doc); err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, &SchemaError{Index: -1, Reason: fmt.Sprintf("top-level value is %s, not an array", kind(doc))}
	}

	notes := make([]core.Note, 0, len(items))
	for i, item := range items {
		n, err := toNote(i, item)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

func decode(raw []byte, format Format, out *any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(raw, out)
	case FormatJSON, "":
		return json.Unmarshal(raw, out)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func toNote(index int, item any) (core.Note, error) {
	if _, ok := item.(map[string]any); !ok {
		return core.Note{}, &SchemaError{Index: index, Reason: fmt.Sprintf("is %s, not an object", kind(item))}
	}

	// Round-trip through JSON so YAML and JSON documents share one set of type rules.
	data, err := json.Marshal(item)
	if err != nil {
		return core.Note{}, &SchemaError{Index: index, Reason: err.Error()}
	}

	var w wireNote
	if err := json.Unmarshal(data, &w); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return core.Note{}, &SchemaError{Index: index, Field: typeErr.Field, Reason: "must be " + typeErr.Type.String()}
		}
		return core.Note{}, &SchemaError{Index: index, Reason: err.Error()}
	}

	if err := core.Validator().Struct(w); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return core.Note{}, &SchemaError{Index: index, Field: jsonName(verrs[0].Field()), Reason: "must be an RFC 3339 timestamp"}
		}
		return core.Note{}, &SchemaError{Index: index, Reason: err.Error()}
	}

	n := core.Note{
		Title:    deref(w.Title),
		Content:  deref(w.Content),
		Category: core.Category(deref(w.Category)),
	}
	if w.Pinned != nil {
		n.Pinned = *w.Pinned
	}
	if w.CreatedAt != nil {
		n.CreatedAt, _ = time.Parse(time.RFC3339, *w.CreatedAt)
	}
	if w.UpdatedAt != nil {
		n.UpdatedAt, _ = time.Parse(time.RFC3339, *w.UpdatedAt)
	}
	return n, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case float64, int, int64, uint64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Merge assigns every imported note a fresh id from newID and places the
// imported notes ahead of existing ones. Both groups keep their order and
// all other fields are kept as imported.
func Merge(existing, imported []core.Note, newID core.IDGenerator) []core.Note {
	out := make([]core.Note, 0, len(imported)+len(existing))
	for _, n := range imported {
		n.ID = newID()
		out = append(out, n)
	}
	return append(out, existing...)
}
