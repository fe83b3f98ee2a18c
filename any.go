package breach

import "reflect"

// Payload is a type-erased box holding zero or one value. Selectable nodes
// carry one to link scene geometry back to the domain object it represents
// (a *Wall, *Target, *Breach, ...) without the scene graph depending on
// those types.
//
// Retrieval is exact: Get succeeds only when the stored value's dynamic type
// equals the requested type. Copying a Payload copies the handle, not the
// value behind it; the caller must keep the referenced object alive for as
// long as the box is in use.
type Payload struct {
	value any
}

// NewPayload returns a box holding v.
func NewPayload(v any) Payload {
	return Payload{value: v}
}

// Set stores v, replacing any previously held value.
func (p *Payload) Set(v any) {
	p.value = v
}

// IsSet reports whether a value is held.
func (p Payload) IsSet() bool {
	return p.value != nil
}

// Clear removes any held value.
func (p *Payload) Clear() {
	p.value = nil
}

// Get retrieves the held value as type T. It returns the zero value and
// false when the box is empty or holds a value of any other type. A failed
// retrieval is a normal query outcome, not an error.
func Get[T any](p Payload) (T, bool) {
	var zero T
	if p.value == nil {
		return zero, false
	}
	// Exact type identity only: a request for an interface type the value
	// happens to satisfy, or for a base capability, does not match.
	if reflect.TypeOf(p.value) != reflect.TypeFor[T]() {
		return zero, false
	}
	return p.value.(T), true
}
