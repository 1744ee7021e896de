package claims

import (
	"encoding/json"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	jsoniter "github.com/json-iterator/go"
)

// ParseObject decodes a JSON document into a generic object
func ParseObject(jsonStr string) (Object, error) {
	return getDefaultExtractor().ParseObject(jsonStr)
}

// ToArray encodes a set of strings as a JSON array value
func ToArray(items mapset.Set[string]) (json.RawMessage, error) {
	return getDefaultExtractor().ToArray(items)
}

// GetString returns the member's value as a string
func GetString(o Object, member string) (Optional[string], error) {
	return getDefaultExtractor().GetString(o, member)
}

// GetBool returns the member's value as a boolean
func GetBool(o Object, member string) (Optional[bool], error) {
	return getDefaultExtractor().GetBool(o, member)
}

// GetInt64 returns the member's value as a 64-bit integer
func GetInt64(o Object, member string) (Optional[int64], error) {
	return getDefaultExtractor().GetInt64(o, member)
}

// GetTime returns the member's epoch-seconds value as a UTC instant
func GetTime(o Object, member string) (Optional[time.Time], error) {
	return getDefaultExtractor().GetTime(o, member)
}

// GetStringList returns the member's value as an ordered string slice
func GetStringList(o Object, member string) (Optional[[]string], error) {
	return getDefaultExtractor().GetStringList(o, member)
}

// GetStringSet returns the member's value as a set of strings
func GetStringSet(o Object, member string) (Optional[mapset.Set[string]], error) {
	return getDefaultExtractor().GetStringSet(o, member)
}

// GetJWSAlgorithm returns the member's value as a JWS algorithm identifier
func GetJWSAlgorithm(o Object, member string) (Optional[JWSAlgorithm], error) {
	return getDefaultExtractor().GetJWSAlgorithm(o, member)
}

// GetJWEAlgorithm returns the member's value as a JWE key management
// algorithm identifier
func GetJWEAlgorithm(o Object, member string) (Optional[JWEAlgorithm], error) {
	return getDefaultExtractor().GetJWEAlgorithm(o, member)
}

// GetEncryptionMethod returns the member's value as a JWE content encryption
// method identifier
func GetEncryptionMethod(o Object, member string) (Optional[EncryptionMethod], error) {
	return getDefaultExtractor().GetEncryptionMethod(o, member)
}

// GetJWSAlgorithmList returns the member's value as an ordered list of JWS
// algorithm identifiers
func GetJWSAlgorithmList(o Object, member string) (Optional[[]JWSAlgorithm], error) {
	return getDefaultExtractor().GetJWSAlgorithmList(o, member)
}

// GetJWEAlgorithmList returns the member's value as an ordered list of JWE
// key management algorithm identifiers
func GetJWEAlgorithmList(o Object, member string) (Optional[[]JWEAlgorithm], error) {
	return getDefaultExtractor().GetJWEAlgorithmList(o, member)
}

// GetEncryptionMethodList returns the member's value as an ordered list of
// JWE content encryption method identifiers
func GetEncryptionMethodList(o Object, member string) (Optional[[]EncryptionMethod], error) {
	return getDefaultExtractor().GetEncryptionMethodList(o, member)
}

// ReadScalarMap consumes a JSON object from the iterator into a mapping from
// member name to Scalar
func ReadScalarMap(iter *jsoniter.Iterator) (map[string]Scalar, error) {
	return getDefaultExtractor().ReadScalarMap(iter)
}

// ReadScalarSet consumes a JSON array from the iterator into a homogeneous
// set of Scalars
func ReadScalarSet(iter *jsoniter.Iterator) (mapset.Set[Scalar], error) {
	return getDefaultExtractor().ReadScalarSet(iter)
}

// GetStringWithDefault returns the member's string value with a fallback on
// absence or mismatch
func GetStringWithDefault(o Object, member, defaultValue string) string {
	result, err := GetString(o, member)
	if err != nil {
		return defaultValue
	}
	return result.OrElse(defaultValue)
}

// GetBoolWithDefault returns the member's boolean value with a fallback on
// absence or mismatch
func GetBoolWithDefault(o Object, member string, defaultValue bool) bool {
	result, err := GetBool(o, member)
	if err != nil {
		return defaultValue
	}
	return result.OrElse(defaultValue)
}

// GetInt64WithDefault returns the member's integer value with a fallback on
// absence or mismatch
func GetInt64WithDefault(o Object, member string, defaultValue int64) int64 {
	result, err := GetInt64(o, member)
	if err != nil {
		return defaultValue
	}
	return result.OrElse(defaultValue)
}

// GetTimeWithDefault returns the member's instant value with a fallback on
// absence or mismatch
func GetTimeWithDefault(o Object, member string, defaultValue time.Time) time.Time {
	result, err := GetTime(o, member)
	if err != nil {
		return defaultValue
	}
	return result.OrElse(defaultValue)
}
