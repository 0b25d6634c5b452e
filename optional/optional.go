// Package optional provides an explicit wrapper for inputs that may be absent.
//
// A Value makes "this input may be missing" visible in a function signature
// instead of relying on nil slices, nil pointers, or empty strings as sentinels.
// The zero value of Value is absent.
//
//	text := optional.Of("hello")
//	missing := optional.None[string]()
//
//	if s, ok := text.Get(); ok {
//	    fmt.Println(s)
//	}
package optional

import "fmt"

// Value holds a value of type T or nothing.
type Value[T any] struct {
	value   T
	present bool
}

// Of returns a present Value holding v.
// A nil slice or map wrapped with Of is present; only None is absent.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns an absent Value for a nil pointer and a present copy of *p otherwise.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// Get returns the held value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is held.
func (o Value[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the held value, or fallback when absent.
func (o Value[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (o Value[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// String renders the value for diagnostics.
func (o Value[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
