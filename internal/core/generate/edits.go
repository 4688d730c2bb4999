package generate

import (
	"fmt"
	"strings"
)

// ApplyEdit returns a copy of v with one slot changed. The files-list
// slot takes a comma-separated value; everything else is taken verbatim.
func ApplyEdit(v Values, kind SlotKind, value string) (Values, error) {
	switch kind {
	case SlotFilesList:
		var files []string
		for _, part := range strings.Split(value, ",") {
			files = append(files, strings.TrimSpace(part))
		}
		v.Files = files
	case SlotLoadPrefix:
		v.LoadPrefix = value
	case SlotComparisonPath:
		v.ComparisonPrefix = value
	case SlotOverviewPath:
		v.OverviewName = value
	case SlotImportModule:
		v.ImportModule = value
	case SlotImportItems:
		v.ImportItems = value
	default:
		return v, fmt.Errorf("unknown slot %q", kind)
	}
	return v, nil
}

// Render re-emits the slot values as previous-text for a generation
// pass. Used when a slot edit, rather than a hand-edit of the full
// text, triggers the regeneration.
func Render(v Values) string {
	var b strings.Builder
	b.WriteString("from " + v.ImportModule + " import " + v.ImportItems + "\n")
	b.WriteString("files = [" + renderFileList(v.Files) + "]\n")
	b.WriteString(`load_file(f"` + v.LoadPrefix + `{filename}")` + "\n")
	b.WriteString(`output_path=f"` + v.ComparisonPrefix + `_comparison.png")` + "\n")
	b.WriteString(`output_path=f"` + v.OverviewName + `.png")` + "\n")
	return b.String()
}
