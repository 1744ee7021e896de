// Package claims provides null-safe typed access over generic JSON objects,
// tailored to the claim documents an identity/token server passes around.
//
// The package has one flat component: a stateless field-extraction utility.
// Every accessor is total over absence — a missing field, an explicit null,
// or an unexpected shape yields an empty Optional, never an error. Coercion
// failures on a present scalar of the wrong kind surface as typed errors.
//
// # Basic Usage
//
// Field accessors over a decoded JSON object:
//
//	obj, err := claims.ParseObject(`{"exp":1609459200,"aud":"client1"}`)
//	exp, err := claims.GetTime(obj, "exp")       // Optional[time.Time]
//	aud, err := claims.GetStringSet(obj, "aud")  // one-element set
//
// Scalar fields may stand in for one-element collections: a string value
// under "aud" is returned as a one-element set or list, so callers can treat
// a field as "one or many" without requiring array syntax.
//
// Algorithm identifier accessors parse JOSE algorithm names:
//
//	alg, err := claims.GetJWSAlgorithm(obj, "id_token_signed_response_alg")
//
// # Extractors
//
// The package-level API is backed by a lazily created default Extractor.
// Construct one explicitly to control the codec, blob handle, or logger:
//
//	cfg := claims.DefaultConfig()
//	cfg.Logger = logger
//	ext, err := claims.NewWithConfig(cfg)
//	name, err := ext.GetString(obj, "client_name")
//
// # Streaming Helpers
//
// ReadScalarMap and ReadScalarSet consume one JSON object or array from a
// jsoniter iterator into Scalar values; WriteNullSafeArray writes a string
// set as a JSON array, or a JSON null when the set is nil. Both readers
// leave the iterator positioned just past the construct they consumed.
//
// # Legacy Blobs
//
// DecodeBlob and EncodeBlob convert between base64url strings and structured
// values through a configurable self-describing codec handle (JSON by
// default, CBOR for re-encoded binary blobs). Decode failures are returned
// as typed errors distinguishable from absence.
//
// # Core Types Organization
//
//   - types.go: Object, Scalar, ScalarKind
//   - optional.go: Optional[T] and constructors
//   - config.go: Config and constructors
//   - extractor.go: Extractor struct and object-level helpers
//   - extractor_get.go: accessor methods
//   - api_get.go: package-level API functions
//   - alg.go: JOSE algorithm identifier types and parsers
//   - stream.go: streaming reader/writer helpers
//   - decode.go: legacy blob codec
package claims
