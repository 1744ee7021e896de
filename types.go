package claims

import (
	"fmt"
	"strconv"
)

// Object is a generic JSON object as decoded by the codec: an unordered
// mapping from member name to JSON value (string, number, boolean, array,
// nested object, or nil). Objects are caller-owned and never mutated here.
type Object = map[string]any

// ScalarKind identifies the variant held by a Scalar
type ScalarKind int

const (
	// ScalarInvalid is the zero Scalar; it holds no value
	ScalarInvalid ScalarKind = iota
	// ScalarString holds a JSON string
	ScalarString
	// ScalarInt64 holds a JSON number read as a 64-bit integer
	ScalarInt64
	// ScalarBool holds a JSON boolean
	ScalarBool
)

// String returns a human-readable kind name
func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarInt64:
		return "int64"
	case ScalarBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Scalar is a tagged variant over the scalar kinds the streaming helpers
// produce: string, 64-bit integer, or boolean. Consumers switch on Kind
// instead of type-asserting an unchecked any. Scalar is comparable and can
// be used as a map key or set element.
type Scalar struct {
	kind ScalarKind
	str  string
	num  int64
	b    bool
}

// StringScalar wraps a string value
func StringScalar(v string) Scalar {
	return Scalar{kind: ScalarString, str: v}
}

// Int64Scalar wraps a 64-bit integer value
func Int64Scalar(v int64) Scalar {
	return Scalar{kind: ScalarInt64, num: v}
}

// BoolScalar wraps a boolean value
func BoolScalar(v bool) Scalar {
	return Scalar{kind: ScalarBool, b: v}
}

// Kind returns the variant held by the scalar
func (s Scalar) Kind() ScalarKind {
	return s.kind
}

// StringValue returns the string variant and whether the scalar holds one
func (s Scalar) StringValue() (string, bool) {
	return s.str, s.kind == ScalarString
}

// Int64Value returns the integer variant and whether the scalar holds one
func (s Scalar) Int64Value() (int64, bool) {
	return s.num, s.kind == ScalarInt64
}

// BoolValue returns the boolean variant and whether the scalar holds one
func (s Scalar) BoolValue() (bool, bool) {
	return s.b, s.kind == ScalarBool
}

// Interface returns the held value as an any, or nil for the zero Scalar
func (s Scalar) Interface() any {
	switch s.kind {
	case ScalarString:
		return s.str
	case ScalarInt64:
		return s.num
	case ScalarBool:
		return s.b
	default:
		return nil
	}
}

// String implements fmt.Stringer for diagnostics
func (s Scalar) String() string {
	switch s.kind {
	case ScalarString:
		return s.str
	case ScalarInt64:
		return strconv.FormatInt(s.num, 10)
	case ScalarBool:
		return strconv.FormatBool(s.b)
	default:
		return fmt.Sprintf("Scalar(%s)", s.kind)
	}
}
