package claims

import "testing"

// TestOptional tests presence, fallback, and panic behavior
func TestOptional(t *testing.T) {
	h := NewTestHelper(t)

	some := Some("value")
	if !some.IsPresent() {
		t.Error("Some should be present")
	}
	v, ok := some.Get()
	h.AssertEqual(true, ok)
	h.AssertEqual("value", v)
	h.AssertEqual("value", some.OrElse("fallback"))
	h.AssertEqual("value", some.MustGet())
	h.AssertEqual("Some(value)", some.String())

	none := None[string]()
	if none.IsPresent() {
		t.Error("None should be absent")
	}
	_, ok = none.Get()
	h.AssertEqual(false, ok)
	h.AssertEqual("fallback", none.OrElse("fallback"))
	h.AssertEqual("None", none.String())

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustGet on None should panic")
		}
	}()
	none.MustGet()
}

// TestOptionalZeroValueIsAbsent tests that the zero Optional reads as absent
func TestOptionalZeroValueIsAbsent(t *testing.T) {
	var o Optional[int]
	if o.IsPresent() {
		t.Error("zero Optional should be absent")
	}
	if got := o.OrElse(42); got != 42 {
		t.Errorf("expected fallback 42, got %d", got)
	}
}
