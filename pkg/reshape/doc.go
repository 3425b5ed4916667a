// Package reshape turns trees of records into lookup tables.
//
// A record set is a tree whose entries are themselves trees (records)
// mapping field names to scalar values, for example rows keyed by a
// primary key:
//
//	users := tree.FromMap(map[string]any{
//		"u1": map[string]any{"name": "ann", "role": "admin"},
//		"u2": map[string]any{"name": "bob", "role": "user"},
//	})
//
// Rotate re-keys such a set by one field, RotateCategory groups records
// sharing a field value, and Rotations and Sorts build one such table for
// every field at once. Entries that are not records are skipped, and so
// are records whose field value cannot be used as a key.
//
// All functions return new trees; their inputs are never modified.
package reshape
