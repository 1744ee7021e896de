package claims

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// TestHelper provides assertion utilities for the package tests
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// AssertEqual checks if two values are equal
func (h *TestHelper) AssertEqual(expected, actual any, msgAndArgs ...any) {
	h.t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg := "Values are not equal"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s\nExpected: %v (%T)\nActual: %v (%T)", msg, expected, expected, actual, actual)
	}
}

// AssertNoError checks that error is nil
func (h *TestHelper) AssertNoError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err != nil {
		msg := "Expected no error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s, but got: %v", msg, err)
	}
}

// AssertError checks that error is not nil
func (h *TestHelper) AssertError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err == nil {
		msg := "Expected an error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg + ", but got nil")
	}
}

// AssertErrorIs checks that error matches a sentinel via errors.Is
func (h *TestHelper) AssertErrorIs(err, target error, msgAndArgs ...any) {
	h.t.Helper()
	if !errors.Is(err, target) {
		msg := fmt.Sprintf("Expected error matching %v", target)
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s, but got: %v", msg, err)
	}
}

// AssertAbsent checks that an Optional is absent
func AssertAbsent[T any](t *testing.T, o Optional[T], msgAndArgs ...any) {
	t.Helper()
	if o.IsPresent() {
		msg := "Expected absent Optional"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		v, _ := o.Get()
		t.Errorf("%s, but got value: %v", msg, v)
	}
}

// AssertPresent checks that an Optional holds the expected value
func AssertPresent[T any](t *testing.T, o Optional[T], expected T, msgAndArgs ...any) {
	t.Helper()
	v, ok := o.Get()
	if !ok {
		msg := "Expected present Optional"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		t.Errorf("%s, but it is absent", msg)
		return
	}
	if !reflect.DeepEqual(expected, v) {
		t.Errorf("Optional value mismatch\nExpected: %v (%T)\nActual: %v (%T)", expected, expected, v, v)
	}
}
