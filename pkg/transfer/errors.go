package transfer

import (
	"fmt"

	"github.com/aretw0/memo/pkg/core"
)

// ParseError reports a document that is not valid structured text.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %v", core.ErrParse, e.Format, e.Err)
}

// Unwrap exposes both core.ErrParse and the decoder error.
func (e *ParseError) Unwrap() []error {
	return []error{core.ErrParse, e.Err}
}

// SchemaError reports a document that parses but does not have the note
// collection shape. Index is -1 for problems with the top-level value.
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("%s: %s", core.ErrSchema, e.Reason)
	case e.Field == "":
		return fmt.Sprintf("%s: note %d: %s", core.ErrSchema, e.Index, e.Reason)
	default:
		return fmt.Sprintf("%s: note %d: field %q %s", core.ErrSchema, e.Index, e.Field, e.Reason)
	}
}

// Unwrap lets errors.Is match core.ErrSchema.
func (e *SchemaError) Unwrap() error {
	return core.ErrSchema
}
