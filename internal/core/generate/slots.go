// Package generate renders the synthetic main script from the script
// model, the current unit assignments, and the learner's edits to the
// known editable text slots. Slot handling is pattern matching over
// text, not parsing - the shallowness is intentional and must stay.
package generate

import (
	"regexp"
	"strings"
)

// SlotKind tags an editable region of the generated main script.
type SlotKind string

const (
	SlotFilesList      SlotKind = "filesList"      // files = [...] literal
	SlotLoadPrefix     SlotKind = "loadPrefix"     // load_file(f"<prefix>{filename}")
	SlotComparisonPath SlotKind = "comparisonPath" // output_path=f"<prefix>_comparison.png")
	SlotOverviewPath   SlotKind = "overviewPath"   // output_path=f"<name>.png")
	SlotImportModule   SlotKind = "importModule"   // from <module> import ...
	SlotImportItems    SlotKind = "importItems"    // from ... import <items>
)

// Values holds the current value of every editable slot. Zero values
// are meaningless on their own; use Defaults and merge extractions.
type Values struct {
	Files            []string
	LoadPrefix       string
	ComparisonPrefix string
	OverviewName     string
	ImportModule     string
	ImportItems      string
}

// Found records which slots an extraction pass actually located in the
// previous text. Missing slots keep their prior value - a learner
// deleting a line must not crash regeneration.
type Found struct {
	Files            bool
	LoadPrefix       bool
	ComparisonPrefix bool
	OverviewName     bool
	Import           bool
}

// Default values for the import template line emitted below the header.
const (
	DefaultImportModule = "module_name"
	DefaultImportItems  = "function_name"
)

var (
	filesRe      = regexp.MustCompile(`files\s*=\s*\[([^\]]*)\]`)
	elementRe    = regexp.MustCompile(`'([^']*)'|"([^"]*)"`)
	loadRe       = regexp.MustCompile(`load_file\(f"([^"]*)\{filename\}"\)`)
	comparisonRe = regexp.MustCompile(`output_path=f"([^"]*)_comparison\.png"\)`)
	overviewRe   = regexp.MustCompile(`output_path=f"([^"]*)\.png"\)`)
	fromImportRe = regexp.MustCompile(`^from\s+(\S+)\s+import\s+(.+)$`)
)

// Extract pattern-matches the previous main text and pulls out the
// learner's current slot values. knownLines are lines the scan must not
// mistake for the import template (the fixed header imports and the
// learner's own custom import lines).
func Extract(previous string, knownLines []string) (Values, Found) {
	var v Values
	var f Found

	if m := filesRe.FindStringSubmatch(previous); m != nil {
		v.Files = parseFileElements(m[1])
		f.Files = true
	}
	if m := loadRe.FindStringSubmatch(previous); m != nil {
		v.LoadPrefix = m[1]
		f.LoadPrefix = true
	}

	known := make(map[string]bool, len(knownLines))
	for _, line := range knownLines {
		known[strings.TrimSpace(line)] = true
	}

	for _, line := range strings.Split(previous, "\n") {
		trimmed := strings.TrimSpace(line)
		if !f.ComparisonPrefix {
			if m := comparisonRe.FindStringSubmatch(trimmed); m != nil {
				v.ComparisonPrefix = m[1]
				f.ComparisonPrefix = true
				continue
			}
		}
		if !f.OverviewName && !strings.Contains(trimmed, "_comparison") {
			if m := overviewRe.FindStringSubmatch(trimmed); m != nil {
				v.OverviewName = m[1]
				f.OverviewName = true
				continue
			}
		}
		if !f.Import && !known[trimmed] {
			if m := fromImportRe.FindStringSubmatch(trimmed); m != nil {
				v.ImportModule = m[1]
				v.ImportItems = m[2]
				f.Import = true
			}
		}
	}

	return v, f
}

// parseFileElements splits the inside of a files = [...] literal into
// its quoted elements. Anything unquoted is ignored; a fully malformed
// literal degrades to an empty list rather than an error.
func parseFileElements(inner string) []string {
	matches := elementRe.FindAllStringSubmatch(inner, -1)
	elements := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.HasPrefix(m[0], "'") {
			elements = append(elements, m[1])
		} else {
			elements = append(elements, m[2])
		}
	}
	return elements
}

// Merge overlays the slots found in an extraction onto base.
func Merge(base Values, extracted Values, found Found) Values {
	if found.Files {
		base.Files = extracted.Files
	}
	if found.LoadPrefix {
		base.LoadPrefix = extracted.LoadPrefix
	}
	if found.ComparisonPrefix {
		base.ComparisonPrefix = extracted.ComparisonPrefix
	}
	if found.OverviewName {
		base.OverviewName = extracted.OverviewName
	}
	if found.Import {
		base.ImportModule = extracted.ImportModule
		base.ImportItems = extracted.ImportItems
	}
	return base
}
