package listview

import (
	"errors"
	"fmt"
)

// AllValue is the query/select value that stands for "no filter".
const AllValue = "all"

// ErrUnknownValue is returned when a filter string names no known enumerant.
var ErrUnknownValue = errors.New("unknown filter value")

// Filter selects records by a closed enumeration C.
// The zero value is Any: every record matches.
type Filter[C comparable] struct {
	value C
	set   bool
}

// Any returns the filter that matches every record.
func Any[C comparable]() Filter[C] {
	return Filter[C]{}
}

// Only returns a filter that matches records whose category equals v.
// A value the domain never produces is accepted and matches nothing.
func Only[C comparable](v C) Filter[C] {
	return Filter[C]{value: v, set: true}
}

// IsAny reports whether the filter is the "no filter" variant.
func (f Filter[C]) IsAny() bool {
	return !f.set
}

// Value returns the selected enumerant and whether one is selected.
func (f Filter[C]) Value() (C, bool) {
	return f.value, f.set
}

// Matches reports whether a record with category v passes the filter.
func (f Filter[C]) Matches(v C) bool {
	return !f.set || f.value == v
}

// String renders the filter the way it travels in query strings.
func (f Filter[C]) String() string {
	if !f.set {
		return AllValue
	}
	return fmt.Sprint(f.value)
}

// ParseFilter maps a query/select string onto a closed enumeration.
// "" and "all" yield Any. Strings outside known are rejected so a typo
// cannot silently produce an empty list.
func ParseFilter[C ~string](s string, known ...C) (Filter[C], error) {
	if s == "" || s == AllValue {
		return Any[C](), nil
	}
	for _, k := range known {
		if string(k) == s {
			return Only(k), nil
		}
	}
	return Any[C](), fmt.Errorf("%w: %q", ErrUnknownValue, s)
}

// Scope narrows records beyond the category filter, e.g. a status tab.
// A nil Scope matches every record.
type Scope[T any] func(T) bool

func (s Scope[T]) matches(r T) bool {
	return s == nil || s(r)
}
