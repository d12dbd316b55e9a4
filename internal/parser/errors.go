package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// ErrSchema is matched by every *SchemaError via errors.Is.
var ErrSchema = errors.New("schema error")

// SchemaError reports a match sheet that lacks required columns. It is fatal
// for that match.
type SchemaError struct {
	Match   model.MatchID
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("match %q: missing required columns: %s", e.Match, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }
