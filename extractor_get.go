package claims

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// GetString returns the member's value as a string. Numbers and booleans
// coerce to their textual form.
func (e *Extractor) GetString(o Object, member string) (Optional[string], error) {
	v, ok := scalarMember(o, member)
	if !ok {
		return None[string](), nil
	}
	s, ok := convertToString(v)
	if !ok {
		return None[string](), newTypeError("get_string", member, "value does not coerce to string")
	}
	return Some(s), nil
}

// GetBool returns the member's value as a boolean. Strings parse per
// strconv.ParseBool.
func (e *Extractor) GetBool(o Object, member string) (Optional[bool], error) {
	v, ok := scalarMember(o, member)
	if !ok {
		return None[bool](), nil
	}
	b, ok := convertToBool(v)
	if !ok {
		return None[bool](), newTypeError("get_bool", member, "value does not coerce to bool")
	}
	return Some(b), nil
}

// GetInt64 returns the member's value as a 64-bit integer. Integral floats
// and numeric strings coerce; anything else is a type mismatch.
func (e *Extractor) GetInt64(o Object, member string) (Optional[int64], error) {
	v, ok := scalarMember(o, member)
	if !ok {
		return None[int64](), nil
	}
	n, ok := convertToInt64(v)
	if !ok {
		return None[int64](), newTypeError("get_int64", member, "value does not coerce to int64")
	}
	return Some(n), nil
}

// GetTime returns the member's value, expressed as integer seconds since the
// epoch, as a UTC instant
func (e *Extractor) GetTime(o Object, member string) (Optional[time.Time], error) {
	n, err := e.GetInt64(o, member)
	if err != nil {
		return None[time.Time](), err
	}
	seconds, ok := n.Get()
	if !ok {
		return None[time.Time](), nil
	}
	millis := seconds * 1000
	return Some(time.UnixMilli(millis).UTC()), nil
}

// GetStringList returns the member's value as an ordered string slice. An
// array keeps its original order; a single scalar wraps as a one-element
// slice, so callers can treat the field as "one or many".
func (e *Extractor) GetStringList(o Object, member string) (Optional[[]string], error) {
	v, ok := rawMember(o, member)
	if !ok {
		return None[[]string](), nil
	}
	switch arr := v.(type) {
	case []any:
		raw, err := e.cfg.Codec.Marshal(arr)
		if err != nil {
			return None[[]string](), newTypeError("get_string_list", member, "array is not encodable")
		}
		var out []string
		if err := e.cfg.Codec.Unmarshal(raw, &out); err != nil {
			return None[[]string](), newTypeError("get_string_list", member, "array members are not strings")
		}
		return Some(out), nil
	case []string:
		return Some(append([]string(nil), arr...)), nil
	default:
		s, ok := convertToString(v)
		if !ok {
			return None[[]string](), newTypeError("get_string_list", member, "value does not coerce to string")
		}
		return Some([]string{s}), nil
	}
}

// GetStringSet returns the member's value as a set of strings. Duplicates in
// the underlying array collapse; a single scalar wraps as a one-element set.
func (e *Extractor) GetStringSet(o Object, member string) (Optional[mapset.Set[string]], error) {
	list, err := e.GetStringList(o, member)
	if err != nil {
		return None[mapset.Set[string]](), err
	}
	items, ok := list.Get()
	if !ok {
		return None[mapset.Set[string]](), nil
	}
	return Some(mapset.NewSet(items...)), nil
}

// GetJWSAlgorithm returns the member's value parsed as a JWS algorithm
// identifier
func (e *Extractor) GetJWSAlgorithm(o Object, member string) (Optional[JWSAlgorithm], error) {
	return algorithmMember(e, o, member, "get_jws_algorithm", ParseJWSAlgorithm)
}

// GetJWEAlgorithm returns the member's value parsed as a JWE key-encryption
// algorithm identifier
func (e *Extractor) GetJWEAlgorithm(o Object, member string) (Optional[JWEAlgorithm], error) {
	return algorithmMember(e, o, member, "get_jwe_algorithm", ParseJWEAlgorithm)
}

// GetEncryptionMethod returns the member's value parsed as a JWE content
// encryption method identifier
func (e *Extractor) GetEncryptionMethod(o Object, member string) (Optional[EncryptionMethod], error) {
	return algorithmMember(e, o, member, "get_encryption_method", ParseEncryptionMethod)
}

// GetJWSAlgorithmList returns the member's value as an ordered list of JWS
// algorithm identifiers
func (e *Extractor) GetJWSAlgorithmList(o Object, member string) (Optional[[]JWSAlgorithm], error) {
	return algorithmList(e, o, member, "get_jws_algorithm_list", ParseJWSAlgorithm)
}

// GetJWEAlgorithmList returns the member's value as an ordered list of JWE
// key-encryption algorithm identifiers
func (e *Extractor) GetJWEAlgorithmList(o Object, member string) (Optional[[]JWEAlgorithm], error) {
	return algorithmList(e, o, member, "get_jwe_algorithm_list", ParseJWEAlgorithm)
}

// GetEncryptionMethodList returns the member's value as an ordered list of
// JWE content encryption method identifiers
func (e *Extractor) GetEncryptionMethodList(o Object, member string) (Optional[[]EncryptionMethod], error) {
	return algorithmList(e, o, member, "get_encryption_method_list", ParseEncryptionMethod)
}

// algorithmMember reads a string member and parses it with the given
// canonical parser
func algorithmMember[T any](e *Extractor, o Object, member, op string, parse func(string) (T, error)) (Optional[T], error) {
	s, err := e.GetString(o, member)
	if err != nil {
		return None[T](), err
	}
	name, ok := s.Get()
	if !ok {
		return None[T](), nil
	}
	alg, err := parse(name)
	if err != nil {
		return None[T](), newAlgorithmError(op, member, err)
	}
	return Some(alg), nil
}

// algorithmList reads a string list member and parses each element with the
// given canonical parser, preserving order
func algorithmList[T any](e *Extractor, o Object, member, op string, parse func(string) (T, error)) (Optional[[]T], error) {
	strs, err := e.GetStringList(o, member)
	if err != nil {
		return None[[]T](), err
	}
	names, ok := strs.Get()
	if !ok {
		return None[[]T](), nil
	}
	algs := make([]T, 0, len(names))
	for _, name := range names {
		alg, err := parse(name)
		if err != nil {
			return None[[]T](), newAlgorithmError(op, member, err)
		}
		algs = append(algs, alg)
	}
	return Some(algs), nil
}
