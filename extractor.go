package claims

import (
	"encoding/json"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
)

// Extractor performs null-safe typed extraction over generic JSON objects.
// It is immutable after construction and safe for concurrent use; every
// operation completes in bounded local computation over its input.
type Extractor struct {
	cfg Config
}

// New creates an extractor with the default configuration
func New() *Extractor {
	e, _ := NewWithConfig(DefaultConfig())
	return e
}

// NewWithConfig creates an extractor with a custom configuration.
// Unset config fields are filled with defaults.
func NewWithConfig(cfg *Config) (*Extractor, error) {
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{cfg: *cfg}, nil
}

// Config returns a copy of the extractor's configuration
func (e *Extractor) Config() Config {
	return e.cfg
}

func (e *Extractor) logger() *zap.Logger {
	return e.cfg.Logger
}

// ParseObject decodes a JSON document into a generic object through the
// extractor's codec
func (e *Extractor) ParseObject(jsonStr string) (Object, error) {
	var obj Object
	if err := e.cfg.Codec.UnmarshalFromString(jsonStr, &obj); err != nil {
		return nil, newParseError("parse_object", err)
	}
	return obj, nil
}

// ToArray encodes a set of strings as a JSON array value. A nil set encodes
// as a JSON null.
func (e *Extractor) ToArray(items mapset.Set[string]) (json.RawMessage, error) {
	if items == nil {
		return json.RawMessage("null"), nil
	}
	raw, err := e.cfg.Codec.Marshal(items.ToSlice())
	if err != nil {
		return nil, newParseError("to_array", err)
	}
	return json.RawMessage(raw), nil
}

// scalarMember returns the scalar value of a member. The second result is
// false when the member is missing, null, or not a scalar — all of which the
// accessors report as absence.
func scalarMember(o Object, member string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o[member]
	if !ok || v == nil || !isScalar(v) {
		return nil, false
	}
	return v, true
}

// rawMember returns the raw value of a member, reporting absence for
// missing members and explicit nulls
func rawMember(o Object, member string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o[member]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
