package claims

import (
	"encoding/json"
	"strconv"
)

// Scalar coercion rules for present values. Absence is handled before these
// are called; a false result here means a present scalar of the wrong kind,
// which surfaces as ErrTypeMismatch.

// convertToString converts a scalar value to string
func convertToString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		// Integral values must keep their exact decimal digits, never
		// scientific notation
		if v >= -(1<<63) && v < (1<<63) && v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), true
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		if v >= -(1<<63) && v < (1<<63) && v == float32(int64(v)) {
			return strconv.FormatInt(int64(v), 10), true
		}
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

// convertToBool converts a scalar value to bool. Strings parse per
// strconv.ParseBool; numbers do not coerce to booleans.
func convertToBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b, true
		}
	}
	return false, false
}

// convertToInt64 converts a scalar value to int64. Floats convert only when
// integral; numeric strings parse; booleans do not coerce to integers.
func convertToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) <= 1<<63-1 {
			return int64(v), true
		}
	case uint64:
		if v <= 1<<63-1 {
			return int64(v), true
		}
	case float32:
		if v == float32(int64(v)) {
			return int64(v), true
		}
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	case string:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i, true
		}
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
	}
	return 0, false
}

// isScalar reports whether a decoded JSON value is a scalar
// (string, number, or boolean; not array, object, or null)
func isScalar(value any) bool {
	switch value.(type) {
	case string, bool, float64, float32, int, int32, int64, uint, uint64, json.Number:
		return true
	}
	return false
}
