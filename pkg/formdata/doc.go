// Package formdata holds the generic helpers for working with untyped form
// value trees: the JSON-shaped mappings, sequences, and scalars that carry
// a passport's field values. All helpers are pure; mutation helpers return
// new structures and never touch their input.
package formdata
