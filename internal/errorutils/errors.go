package errorutils

// Must returns value when err is nil and panics otherwise.
// Only use it where an error means a bug, not bad input.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
