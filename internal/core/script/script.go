// Package script contains the Script Model: the immutable example source
// text and the catalog of movable units derived from it by line-range
// slicing. This is deliberately not a Python parser - functions are
// delimited by "next sibling def or end of file", imports are matched by
// line pattern, and code blocks are hand-picked literal ranges.
package script

import (
	"regexp"
	"strings"

	"github.com/example/scriptsplit/internal/models"
)

// Palette is the fixed color rotation used for unit display tags.
// Assignment is round-robin by discovery order and carries no meaning
// beyond stable test output.
var Palette = []string{"primary", "secondary", "success", "error", "warning", "info"}

var (
	importRe     = regexp.MustCompile(`^import\s+([\w.]+)`)
	fromImportRe = regexp.MustCompile(`^from\s+([\w.]+)\s+import\s+`)
	defRe        = regexp.MustCompile(`^def\s+(\w+)\s*\(`)
	mainGuardRe  = regexp.MustCompile(`^if\s+__name__\s*==\s*["']__main__["']\s*:`)
)

// BlockSpec is a hand-picked contiguous range offered as a coarser
// alternative to moving functions one by one. Ranges overlap function
// units by design.
type BlockSpec struct {
	Name  string
	Range models.LineRange
}

// Model owns the example script text and the unit catalog computed from
// it. Both are immutable after construction.
type Model struct {
	lines []string
	units []models.ScriptUnit

	headerEnd int // last header import line index
	mainGuard int // line index of the if __name__ marker, -1 if absent
}

// New scans source top to bottom and builds the unit catalog. Import
// lines become single-line import units keyed by the imported module.
// A def header opens a function unit extending to the line before the
// next def header, the __main__ guard, or end of text. Blocks are taken
// as given.
func New(source string, blocks []BlockSpec) *Model {
	lines := strings.Split(source, "\n")
	m := &Model{lines: lines, mainGuard: -1}

	var units []models.ScriptUnit
	openFn := -1 // start line of the function unit being collected
	openName := ""

	closeFn := func(end int) {
		if openFn < 0 {
			return
		}
		units = append(units, models.ScriptUnit{
			Kind:  models.UnitFunction,
			Name:  openName,
			Range: models.LineRange{Start: openFn, End: end},
		})
		openFn = -1
	}

	for i, line := range lines {
		if mainGuardRe.MatchString(line) {
			closeFn(i - 1)
			m.mainGuard = i
			break
		}
		if match := defRe.FindStringSubmatch(line); match != nil {
			closeFn(i - 1)
			openFn = i
			openName = match[1]
			continue
		}
		if openFn >= 0 {
			continue
		}
		if match := importRe.FindStringSubmatch(line); match != nil {
			units = append(units, models.ScriptUnit{
				Kind:  models.UnitImport,
				Name:  match[1],
				Range: models.LineRange{Start: i, End: i},
			})
			m.headerEnd = i
			continue
		}
		if match := fromImportRe.FindStringSubmatch(line); match != nil {
			units = append(units, models.ScriptUnit{
				Kind:  models.UnitImport,
				Name:  match[1],
				Range: models.LineRange{Start: i, End: i},
			})
			m.headerEnd = i
		}
	}
	closeFn(len(lines) - 1)

	for _, b := range blocks {
		units = append(units, models.ScriptUnit{
			Kind:  models.UnitCodeBlock,
			Name:  b.Name,
			Range: b.Range,
		})
	}

	for i := range units {
		units[i].Color = Palette[i%len(Palette)]
	}

	m.units = units
	return m
}

// Lines returns the script as a line slice. Callers must not mutate it.
func (m *Model) Lines() []string {
	return m.lines
}

// Slice returns the text of an inclusive line range, clamped to the
// script bounds.
func (m *Model) Slice(r models.LineRange) string {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end >= len(m.lines) {
		end = len(m.lines) - 1
	}
	if start > end {
		return ""
	}
	return strings.Join(m.lines[start:end+1], "\n")
}

// Units returns the full unit catalog in discovery order.
func (m *Model) Units() []models.ScriptUnit {
	return m.units
}

// Unit finds a unit by kind and name.
func (m *Model) Unit(kind models.UnitKind, name string) (models.ScriptUnit, bool) {
	for _, u := range m.units {
		if u.Kind == kind && u.Name == name {
			return u, true
		}
	}
	return models.ScriptUnit{}, false
}

// FunctionNames returns the names of every function unit in order.
func (m *Model) FunctionNames() []string {
	return m.namesOf(models.UnitFunction)
}

// ImportNames returns the names of every import unit in order.
func (m *Model) ImportNames() []string {
	return m.namesOf(models.UnitImport)
}

// CodeBlockNames returns the names of every code-block unit in order.
func (m *Model) CodeBlockNames() []string {
	return m.namesOf(models.UnitCodeBlock)
}

func (m *Model) namesOf(kind models.UnitKind) []string {
	var names []string
	for _, u := range m.units {
		if u.Kind == kind {
			names = append(names, u.Name)
		}
	}
	return names
}

// HeaderRange is the fixed header import block, emitted verbatim by the
// generator.
func (m *Model) HeaderRange() models.LineRange {
	return models.LineRange{Start: 0, End: m.headerEnd}
}

// BodyRange is everything between the header imports and the __main__
// guard. The generator iterates it, skipping claimed lines.
func (m *Model) BodyRange() models.LineRange {
	end := len(m.lines) - 1
	if m.mainGuard >= 0 {
		end = m.mainGuard - 1
	}
	return models.LineRange{Start: m.headerEnd + 1, End: end}
}

// TrailerRange is the __main__ execution block through end of text.
// Empty range (Start > End) when the script has no guard.
func (m *Model) TrailerRange() models.LineRange {
	if m.mainGuard < 0 {
		return models.LineRange{Start: len(m.lines), End: len(m.lines) - 1}
	}
	return models.LineRange{Start: m.mainGuard, End: len(m.lines) - 1}
}
