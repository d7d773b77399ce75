// Package query implements the category, search and sort pipeline applied to
// catalog listings.
//
// A listing is described once per record type by its search fields and sort
// keys; each request then supplies a Category and a search term. Filtering
// never reorders records and sorting is stable, so identical input always
// yields the same output order.
package query

import (
	"strings"
)

type categoryKind int

const (
	kindAll categoryKind = iota
	kindEquals
	kindPredicate
)

// Category restricts a listing to a single tab. The zero value selects all records.
type Category[T any] struct {
	kind      categoryKind
	accessor  func(T) (string, bool)
	value     string
	predicate func(T) bool
}

// All keeps every record.
func All[T any]() Category[T] {
	return Category[T]{kind: kindAll}
}

// Equals keeps records whose field equals value exactly.
func Equals[T any](field func(T) string, value string) Category[T] {
	if field == nil {
		return Category[T]{kind: kindEquals, value: value}
	}
	return Category[T]{
		kind:     kindEquals,
		value:    value,
		accessor: func(r T) (string, bool) { return field(r), true },
	}
}

// EqualsOptional is Equals for fields that may be absent. Absent fields never match.
func EqualsOptional[T any](field func(T) *string, value string) Category[T] {
	if field == nil {
		return Category[T]{kind: kindEquals, value: value}
	}
	return Category[T]{
		kind:  kindEquals,
		value: value,
		accessor: func(r T) (string, bool) {
			v := field(r)
			if v == nil {
				return "", false
			}
			return *v, true
		},
	}
}

// Predicate keeps records for which fn reports true.
func Predicate[T any](fn func(T) bool) Category[T] {
	return Category[T]{kind: kindPredicate, predicate: fn}
}

// IsAll reports whether the category keeps every record.
func (c Category[T]) IsAll() bool {
	return c.kind == kindAll
}

// Match reports whether the record belongs to the category.
func (c Category[T]) Match(record T) bool {
	switch c.kind {
	case kindEquals:
		if c.accessor == nil {
			return false
		}
		v, ok := c.accessor(record)
		return ok && v == c.value
	case kindPredicate:
		return c.predicate != nil && c.predicate(record)
	default:
		return true
	}
}

// Field extracts the searchable values of a record.
type Field[T any] func(T) []string

// Text builds a single valued search field.
func Text[T any](fn func(T) string) Field[T] {
	if fn == nil {
		return nil
	}
	return func(r T) []string { return []string{fn(r)} }
}

// Optional builds a search field for a value that may be absent.
func Optional[T any](fn func(T) *string) Field[T] {
	if fn == nil {
		return nil
	}
	return func(r T) []string {
		if v := fn(r); v != nil {
			return []string{*v}
		}
		return nil
	}
}

// Texts builds a multi valued search field. A record matches if any value does.
func Texts[T any](fn func(T) []string) Field[T] {
	return Field[T](fn)
}

// Select filters records by category and then by a case-insensitive substring
// search over fields. An empty or whitespace-only term disables the search
// step. The input slice is never modified and the result preserves input order.
func Select[T any](records []T, category Category[T], term string, fields ...Field[T]) []T {
	needle := ""
	if strings.TrimSpace(term) != "" {
		needle = strings.ToLower(term)
	}

	keepAll := category.IsAll()
	out := make([]T, 0, len(records))
	for _, record := range records {
		if !keepAll && !category.Match(record) {
			continue
		}
		if needle != "" && !matches(record, needle, fields) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matches[T any](record T, needle string, fields []Field[T]) bool {
	for _, field := range fields {
		if field == nil {
			continue
		}
		for _, value := range field(record) {
			if strings.Contains(strings.ToLower(value), needle) {
				return true
			}
		}
	}
	return false
}

// Spec bundles the per-request inputs of a listing.
type Spec[T any] struct {
	Category Category[T]
	Term     string
	Fields   []Field[T]
	Sort     []SortKey[T]
}

// Apply runs Select followed by Sort.
func (s Spec[T]) Apply(records []T) []T {
	selected := Select(records, s.Category, s.Term, s.Fields...)
	if len(s.Sort) == 0 {
		return selected
	}
	return Sort(selected, s.Sort...)
}

// Page returns the 1-based page of records along with the total count.
// Pages outside the result are empty.
func Page[T any](records []T, page, size int) ([]T, int) {
	total := len(records)
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return []T{}, total
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	if page-1 >= pages {
		return []T{}, total
	}
	start := (page - 1) * size
	end := total
	if total-start > size {
		end = start + size
	}
	window := make([]T, end-start)
	copy(window, records[start:end])
	return window, total
}
