// Package models contains domain types for scriptsplit entities.
// Derivation and rule logic lives in internal/core; persistence shapes
// live in ports/secondary.
package models

// UnitKind identifies what kind of movable piece a ScriptUnit is.
type UnitKind string

const (
	UnitFunction  UnitKind = "function"
	UnitImport    UnitKind = "import"
	UnitCodeBlock UnitKind = "codeBlock"
)

// LineRange is an inclusive 0-indexed range into the example script text.
type LineRange struct {
	Start int
	End   int
}

// Contains reports whether line falls inside the range.
func (r LineRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// ScriptUnit is a movable piece of the example script: a function body,
// a single import statement, or a named code-block group. Units are
// computed once at script-model construction and never change.
type ScriptUnit struct {
	Kind  UnitKind
	Name  string
	Range LineRange
	Color string // display tag from the fixed palette, cosmetic only
}
