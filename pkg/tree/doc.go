// Package tree provides an ordered, path-addressed container of nested
// values.
//
// A Tree maps keys to leaves or to nested trees and remembers insertion
// order. Keys are names or integer indices; canonical decimal strings such
// as "8" are the same key as the integer 8, while "08" stays a name.
//
// # Paths
//
// Get and Set accept a single key, a delimited string ("a/b/c" with the
// default delimiter), or an explicit Path. Missing containers along the
// way are created on demand:
//
//	t := tree.New()
//	t.Set("server/ports/[ ]", 8080) // append under server/ports
//	t.Set([]string{"8", "name"}, "x")
//	port := t.Get("server/ports/0")
//
// The segment "[ ]" (Append), an empty string in an explicit path, or a
// nil key appends a new element at the tree's next index. Lookup resolves
// the same paths without creating anything.
//
// A path that runs into a leaf where a container is needed is reported to
// the configured UndefinedFunc. The default handler logs a notice and
// returns nil; PanicOnUndefined turns it into a panic.
//
// # Ownership
//
// Nested trees are owned by their parent. The *Tree returned by Get is the
// live child, so writes through it are visible from the root. Storing a
// tree that is already owned elsewhere stores a copy.
//
// # Configuration
//
// Settings are applied with functional options, either per tree through
// Configure or for every tree built by a Factory. Children inherit the
// configuration of their nearest configured ancestor.
//
// # Encoding
//
// Trees encode to JSON preserving key order (list-shaped trees become
// arrays) and to a compact versioned binary form through MarshalBinary.
package tree
