package claims

import "fmt"

// Optional represents a value that may be absent. Accessors return an empty
// Optional for missing, null, or unexpectedly shaped fields instead of a
// shared null sentinel, so absence is explicit in the type system.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a present value
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None returns the absent marker for type T
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether a value is present
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the value, panicking if it is absent
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("claims: MustGet on absent Optional")
	}
	return o.value
}

// OrElse returns the value if present, otherwise the fallback
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// String implements fmt.Stringer for diagnostics
func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
