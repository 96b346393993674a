package ptr

// Ptr returns a pointer to the given value.
// Удобно для передачи опциональных параметров в фильтры и запросы.
func Ptr[T any](v T) *T {
	return &v
}
