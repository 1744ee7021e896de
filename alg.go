package claims

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// JOSE algorithm identifiers: parsed, validated representations of the
// cryptographic algorithm names that appear in claim documents. Parsing
// follows JOSE registry practice — registered names map to the constants
// below, unknown but well-formed names are accepted as non-standard
// identifiers, and empty or whitespace-bearing names are rejected.

// JWSAlgorithm identifies a JSON Web Signature algorithm (RFC 7518 §3.1)
type JWSAlgorithm string

// Registered JWS algorithm identifiers
const (
	HS256 JWSAlgorithm = "HS256"
	HS384 JWSAlgorithm = "HS384"
	HS512 JWSAlgorithm = "HS512"
	RS256 JWSAlgorithm = "RS256"
	RS384 JWSAlgorithm = "RS384"
	RS512 JWSAlgorithm = "RS512"
	ES256 JWSAlgorithm = "ES256"
	ES384 JWSAlgorithm = "ES384"
	ES512 JWSAlgorithm = "ES512"
	PS256 JWSAlgorithm = "PS256"
	PS384 JWSAlgorithm = "PS384"
	PS512 JWSAlgorithm = "PS512"
	EdDSA JWSAlgorithm = "EdDSA"
	// NoneAlgorithm is the unsecured "none" algorithm
	NoneAlgorithm JWSAlgorithm = "none"
)

// JWEAlgorithm identifies a JWE key management algorithm (RFC 7518 §4.1)
type JWEAlgorithm string

// Registered JWE key management algorithm identifiers
const (
	RSA15            JWEAlgorithm = "RSA1_5"
	RSAOAEP          JWEAlgorithm = "RSA-OAEP"
	RSAOAEP256       JWEAlgorithm = "RSA-OAEP-256"
	A128KW           JWEAlgorithm = "A128KW"
	A192KW           JWEAlgorithm = "A192KW"
	A256KW           JWEAlgorithm = "A256KW"
	Dir              JWEAlgorithm = "dir"
	ECDHES           JWEAlgorithm = "ECDH-ES"
	ECDHESA128KW     JWEAlgorithm = "ECDH-ES+A128KW"
	ECDHESA192KW     JWEAlgorithm = "ECDH-ES+A192KW"
	ECDHESA256KW     JWEAlgorithm = "ECDH-ES+A256KW"
	A128GCMKW        JWEAlgorithm = "A128GCMKW"
	A192GCMKW        JWEAlgorithm = "A192GCMKW"
	A256GCMKW        JWEAlgorithm = "A256GCMKW"
	PBES2HS256A128KW JWEAlgorithm = "PBES2-HS256+A128KW"
	PBES2HS384A192KW JWEAlgorithm = "PBES2-HS384+A192KW"
	PBES2HS512A256KW JWEAlgorithm = "PBES2-HS512+A256KW"
)

// EncryptionMethod identifies a JWE content encryption algorithm
// (RFC 7518 §5.1)
type EncryptionMethod string

// Registered JWE content encryption method identifiers
const (
	A128CBCHS256 EncryptionMethod = "A128CBC-HS256"
	A192CBCHS384 EncryptionMethod = "A192CBC-HS384"
	A256CBCHS512 EncryptionMethod = "A256CBC-HS512"
	A128GCM      EncryptionMethod = "A128GCM"
	A192GCM      EncryptionMethod = "A192GCM"
	A256GCM      EncryptionMethod = "A256GCM"
)

var jwsRegistry = map[JWSAlgorithm]struct{}{
	HS256: {}, HS384: {}, HS512: {},
	RS256: {}, RS384: {}, RS512: {},
	ES256: {}, ES384: {}, ES512: {},
	PS256: {}, PS384: {}, PS512: {},
	EdDSA: {}, NoneAlgorithm: {},
}

var jweRegistry = map[JWEAlgorithm]struct{}{
	RSA15: {}, RSAOAEP: {}, RSAOAEP256: {},
	A128KW: {}, A192KW: {}, A256KW: {},
	Dir: {}, ECDHES: {},
	ECDHESA128KW: {}, ECDHESA192KW: {}, ECDHESA256KW: {},
	A128GCMKW: {}, A192GCMKW: {}, A256GCMKW: {},
	PBES2HS256A128KW: {}, PBES2HS384A192KW: {}, PBES2HS512A256KW: {},
}

var encRegistry = map[EncryptionMethod]int{
	A128CBCHS256: 256,
	A192CBCHS384: 384,
	A256CBCHS512: 512,
	A128GCM:      128,
	A192GCM:      192,
	A256GCM:      256,
}

// validAlgorithmName rejects names that cannot appear as a JOSE header
// value: empty strings and names containing whitespace or control characters
func validAlgorithmName(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty name", ErrMalformedAlgorithm)
	}
	for _, r := range s {
		if r <= 0x20 || r == 0x7f {
			return fmt.Errorf("%w: %q contains whitespace or control characters", ErrMalformedAlgorithm, s)
		}
	}
	return nil
}

// ParseJWSAlgorithm parses a JWS algorithm name
func ParseJWSAlgorithm(s string) (JWSAlgorithm, error) {
	if err := validAlgorithmName(s); err != nil {
		return "", err
	}
	return JWSAlgorithm(s), nil
}

// ParseJWEAlgorithm parses a JWE key management algorithm name
func ParseJWEAlgorithm(s string) (JWEAlgorithm, error) {
	if err := validAlgorithmName(s); err != nil {
		return "", err
	}
	return JWEAlgorithm(s), nil
}

// ParseEncryptionMethod parses a JWE content encryption method name
func ParseEncryptionMethod(s string) (EncryptionMethod, error) {
	if err := validAlgorithmName(s); err != nil {
		return "", err
	}
	return EncryptionMethod(s), nil
}

// String returns the algorithm name
func (a JWSAlgorithm) String() string { return string(a) }

// IsRegistered reports whether the identifier is in the RFC 7518 registry
func (a JWSAlgorithm) IsRegistered() bool {
	_, ok := jwsRegistry[a]
	return ok
}

// SigningMethod resolves the identifier to a jwt.SigningMethod so it can be
// handed directly to a token verifier. The second result is false for
// identifiers with no registered implementation.
func (a JWSAlgorithm) SigningMethod() (jwt.SigningMethod, bool) {
	m := jwt.GetSigningMethod(string(a))
	return m, m != nil
}

// String returns the algorithm name
func (a JWEAlgorithm) String() string { return string(a) }

// IsRegistered reports whether the identifier is in the RFC 7518 registry
func (a JWEAlgorithm) IsRegistered() bool {
	_, ok := jweRegistry[a]
	return ok
}

// String returns the method name
func (m EncryptionMethod) String() string { return string(m) }

// IsRegistered reports whether the identifier is in the RFC 7518 registry
func (m EncryptionMethod) IsRegistered() bool {
	_, ok := encRegistry[m]
	return ok
}

// CEKBitLength returns the content encryption key length in bits, or 0 for
// identifiers outside the registry
func (m EncryptionMethod) CEKBitLength() int {
	return encRegistry[m]
}
