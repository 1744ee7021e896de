package claims

import (
	"encoding/json"
	"testing"
)

// TestConvertToString tests scalar-to-string coercion
func TestConvertToString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
		ok       bool
	}{
		{name: "string", input: "abc", expected: "abc", ok: true},
		{name: "bool", input: true, expected: "true", ok: true},
		{name: "integral float", input: float64(42), expected: "42", ok: true},
		{name: "large integral float keeps decimal digits", input: float64(1609459200), expected: "1609459200", ok: true},
		{name: "negative integral float", input: float64(-1609459200), expected: "-1609459200", ok: true},
		{name: "fractional float", input: 1.5, expected: "1.5", ok: true},
		{name: "int64", input: int64(-3), expected: "-3", ok: true},
		{name: "json.Number", input: json.Number("99"), expected: "99", ok: true},
		{name: "slice", input: []any{"a"}, ok: false},
		{name: "map", input: map[string]any{}, ok: false},
		{name: "nil", input: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertToString(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok: expected %v, got %v", tt.ok, ok)
			}
			if ok && got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// TestConvertToBool tests scalar-to-bool coercion
func TestConvertToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected bool
		ok       bool
	}{
		{name: "true", input: true, expected: true, ok: true},
		{name: "false", input: false, expected: false, ok: true},
		{name: "string true", input: "true", expected: true, ok: true},
		{name: "string 1", input: "1", expected: true, ok: true},
		{name: "string garbage", input: "yes", ok: false},
		{name: "number", input: float64(1), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertToBool(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok: expected %v, got %v", tt.ok, ok)
			}
			if ok && got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestConvertToInt64 tests scalar-to-int64 coercion
func TestConvertToInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int64
		ok       bool
	}{
		{name: "int", input: 7, expected: 7, ok: true},
		{name: "int64", input: int64(1 << 40), expected: 1 << 40, ok: true},
		{name: "integral float", input: float64(1609459200), expected: 1609459200, ok: true},
		{name: "fractional float", input: 1.5, ok: false},
		{name: "numeric string", input: "1234", expected: 1234, ok: true},
		{name: "non-numeric string", input: "abc", ok: false},
		{name: "bool", input: true, ok: false},
		{name: "json.Number", input: json.Number("55"), expected: 55, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertToInt64(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok: expected %v, got %v", tt.ok, ok)
			}
			if ok && got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

// TestIsScalar tests the scalar shape check
func TestIsScalar(t *testing.T) {
	scalars := []any{"s", true, float64(1), int64(2), json.Number("3")}
	for _, v := range scalars {
		if !isScalar(v) {
			t.Errorf("%T should be scalar", v)
		}
	}
	nonScalars := []any{nil, []any{}, map[string]any{}, []string{"a"}}
	for _, v := range nonScalars {
		if isScalar(v) {
			t.Errorf("%T should not be scalar", v)
		}
	}
}
