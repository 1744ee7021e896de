package claims

import (
	"errors"
	"testing"
)

// TestParseJWSAlgorithm tests registered, non-standard, and malformed names
func TestParseJWSAlgorithm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   JWSAlgorithm
		registered bool
		wantErr    bool
	}{
		{name: "RS256", input: "RS256", expected: RS256, registered: true},
		{name: "HS512", input: "HS512", expected: HS512, registered: true},
		{name: "EdDSA", input: "EdDSA", expected: EdDSA, registered: true},
		{name: "none", input: "none", expected: NoneAlgorithm, registered: true},
		{name: "non-standard name", input: "X-CUSTOM", expected: JWSAlgorithm("X-CUSTOM"), registered: false},
		{name: "empty name", input: "", wantErr: true},
		{name: "embedded space", input: "RS 256", wantErr: true},
		{name: "control character", input: "RS256\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, err := ParseJWSAlgorithm(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedAlgorithm) {
					t.Errorf("expected ErrMalformedAlgorithm, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if alg != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, alg)
			}
			if alg.IsRegistered() != tt.registered {
				t.Errorf("IsRegistered: expected %v for %q", tt.registered, alg)
			}
		})
	}
}

// TestParseJWEAlgorithm tests JWE key management algorithm parsing
func TestParseJWEAlgorithm(t *testing.T) {
	for _, registered := range []JWEAlgorithm{RSAOAEP, RSAOAEP256, RSA15, Dir, ECDHESA256KW, PBES2HS512A256KW} {
		alg, err := ParseJWEAlgorithm(string(registered))
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", registered, err)
		}
		if alg != registered || !alg.IsRegistered() {
			t.Errorf("expected registered %q, got %q", registered, alg)
		}
	}

	alg, err := ParseJWEAlgorithm("RSA-OAEP-512")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alg.IsRegistered() {
		t.Errorf("RSA-OAEP-512 should not be registered")
	}

	if _, err := ParseJWEAlgorithm(""); !errors.Is(err, ErrMalformedAlgorithm) {
		t.Errorf("expected ErrMalformedAlgorithm for empty name, got %v", err)
	}
}

// TestEncryptionMethodCEKBitLength tests content key lengths
func TestEncryptionMethodCEKBitLength(t *testing.T) {
	tests := []struct {
		method   EncryptionMethod
		expected int
	}{
		{method: A128CBCHS256, expected: 256},
		{method: A192CBCHS384, expected: 384},
		{method: A256CBCHS512, expected: 512},
		{method: A128GCM, expected: 128},
		{method: A192GCM, expected: 192},
		{method: A256GCM, expected: 256},
		{method: EncryptionMethod("A512GCM"), expected: 0},
	}

	for _, tt := range tests {
		if got := tt.method.CEKBitLength(); got != tt.expected {
			t.Errorf("%s: expected %d bits, got %d", tt.method, tt.expected, got)
		}
	}
}

// TestJWSAlgorithmSigningMethod tests the bridge to the JWT verifier
// registry
func TestJWSAlgorithmSigningMethod(t *testing.T) {
	for _, alg := range []JWSAlgorithm{HS256, RS384, ES512, PS256, EdDSA, NoneAlgorithm} {
		m, ok := alg.SigningMethod()
		if !ok || m == nil {
			t.Errorf("expected signing method for %q", alg)
			continue
		}
		if m.Alg() != alg.String() {
			t.Errorf("signing method name mismatch: %q vs %q", m.Alg(), alg)
		}
	}

	if _, ok := JWSAlgorithm("X-CUSTOM").SigningMethod(); ok {
		t.Error("non-standard identifier should have no signing method")
	}
}
