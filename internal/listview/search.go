package listview

import "strings"

// Field extracts one searchable string from a record.
type Field[T any] func(T) string

// SearchFunc reports whether record matches a non-empty search text.
type SearchFunc[T any] func(record T, text string) bool

// Contains matches when any field contains text verbatim.
// No case folding is applied.
func Contains[T any](fields ...Field[T]) SearchFunc[T] {
	return func(record T, text string) bool {
		for _, f := range fields {
			if strings.Contains(f(record), text) {
				return true
			}
		}
		return false
	}
}

// ContainsFold matches when any field contains text after lower-casing both sides.
func ContainsFold[T any](fields ...Field[T]) SearchFunc[T] {
	return func(record T, text string) bool {
		needle := strings.ToLower(text)
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(record)), needle) {
				return true
			}
		}
		return false
	}
}
