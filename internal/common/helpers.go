package common

// Must returns the value or panics if err is not nil. Meant for values
// that are known to be valid, e.g. constants in tests.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ToPtr returns a pointer to a copy of the given value.
func ToPtr[T any](x T) *T {
	return &x
}

// ValueOrEmpty returns the value behind the pointer or the zero value
// of T for nil.
func ValueOrEmpty[T any](ref *T) T {
	var v T
	if ref != nil {
		v = *ref
	}
	return v
}
