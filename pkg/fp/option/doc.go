// Package option provides Option[T], a value that is either present or
// absent.
//
// Highlights:
// - Present/Absent/Of: construct an Option (Of maps nil to Absent)
// - FromPtr/FromOk: bridge pointers and comma-ok lookups
// - Map/FlatMap: transform the value when present
// - Fold: reduce to a concrete value via absent/present handlers
// - Tap: side effects on presence only
package option
