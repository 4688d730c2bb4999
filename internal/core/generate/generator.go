package generate

import (
	"strings"

	"github.com/example/scriptsplit/internal/core/script"
	"github.com/example/scriptsplit/internal/models"
)

// Input is everything a generation pass needs: which units have been
// claimed by non-main files, the learner's custom import lines, and the
// previous main text (empty on first render) whose slot values must
// survive the regeneration.
type Input struct {
	AssignedUnits []models.ScriptUnit
	CustomImports []string
	Previous      string
}

// Defaults returns the slot values of the pristine script: whatever the
// trailer of the example text declares, plus the import template
// placeholders. These are the silent fallbacks when a slot pattern has
// gone missing from the previous text.
func Defaults(m *script.Model) Values {
	trailer := m.Slice(m.TrailerRange())
	v, _ := Extract(trailer, nil)
	v.ImportModule = DefaultImportModule
	v.ImportItems = DefaultImportItems
	return v
}

// Generate re-renders the main script text. Header imports are emitted
// verbatim, followed by the learner's custom imports and the import
// template slot. Body lines claimed by any non-main file are stripped;
// the rest pass through unchanged. The trailing execution block is
// emitted with the known slots substituted.
func Generate(m *script.Model, in Input) string {
	values := Defaults(m)
	if in.Previous != "" {
		known := append(HeaderLines(m), in.CustomImports...)
		extracted, found := Extract(in.Previous, known)
		values = Merge(values, extracted, found)
	}

	excluded := make(map[int]bool)
	for _, u := range in.AssignedUnits {
		for line := u.Range.Start; line <= u.Range.End; line++ {
			excluded[line] = true
		}
	}

	var out []string
	out = append(out, HeaderLines(m)...)
	for _, imp := range in.CustomImports {
		out = append(out, imp)
	}
	out = append(out, "from "+values.ImportModule+" import "+values.ImportItems)

	body := m.BodyRange()
	lines := m.Lines()
	for i := body.Start; i <= body.End; i++ {
		if excluded[i] {
			continue
		}
		out = append(out, lines[i])
	}

	trailer := m.TrailerRange()
	for i := trailer.Start; i <= trailer.End && i < len(lines); i++ {
		out = append(out, substituteSlots(lines[i], values))
	}

	return strings.Join(out, "\n")
}

// HeaderLines returns the fixed header import lines of the example
// script. Extraction passes use them to avoid mistaking a header import
// for the editable import template.
func HeaderLines(m *script.Model) []string {
	header := m.HeaderRange()
	return m.Lines()[header.Start : header.End+1]
}

// substituteSlots rewrites one trailer line, replacing any slot pattern
// it carries with the current value. Lines without slots pass through.
func substituteSlots(line string, v Values) string {
	if filesRe.MatchString(line) {
		return filesRe.ReplaceAllLiteralString(line, "files = ["+renderFileList(v.Files)+"]")
	}
	if loadRe.MatchString(line) {
		return loadRe.ReplaceAllLiteralString(line, `load_file(f"`+v.LoadPrefix+`{filename}")`)
	}
	if comparisonRe.MatchString(line) {
		return comparisonRe.ReplaceAllLiteralString(line, `output_path=f"`+v.ComparisonPrefix+`_comparison.png")`)
	}
	if !strings.Contains(line, "_comparison") && overviewRe.MatchString(line) {
		return overviewRe.ReplaceAllLiteralString(line, `output_path=f"`+v.OverviewName+`.png")`)
	}
	return line
}

func renderFileList(files []string) string {
	quoted := make([]string, len(files))
	for i, f := range files {
		quoted[i] = "'" + f + "'"
	}
	return strings.Join(quoted, ", ")
}
