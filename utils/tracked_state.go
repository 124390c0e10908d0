package utils

// TrackedState remembers the previous value of a field so callers can act on
// transitions instead of levels.
type TrackedState[T comparable] struct {
	LastValue T
	Value     T
	Changes   uint64
}

func (t *TrackedState[T]) Update(val T) (updated bool) {
	t.LastValue = t.Value
	if t.Value != val {
		t.Value = val
		t.Changes++
		return true
	}
	return false
}

// Rising reports whether the last update moved the value from zero to non-zero.
func (t *TrackedState[T]) Rising() bool {
	var zero T
	return t.LastValue == zero && t.Value != zero
}

// Falling reports whether the last update moved the value back to zero.
func (t *TrackedState[T]) Falling() bool {
	var zero T
	return t.LastValue != zero && t.Value == zero
}
