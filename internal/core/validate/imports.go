package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/example/scriptsplit/internal/models"
)

var fromImportLineRe = regexp.MustCompile(`^from\s+([\w.]+)\s+import\s+(.+)$`)

// knownModules are third-party and stdlib modules whose import lines do
// not count toward coverage of the learner's own files.
var knownModules = map[string]bool{
	"numpy":      true,
	"matplotlib": true,
	"nd2reader":  true,
	"scipy":      true,
	"tifffile":   true,
	"os":         true,
	"sys":        true,
	"math":       true,
	"pathlib":    true,
}

// checkImportCoverage is rule group A: every Python file placed inside
// a folder must have its module name appear in some custom
// `from X import Y` line of the main script. The check is deliberately
// shallow - it does not verify the import is reachable or used.
func checkImportCoverage(in Input, result *models.ValidationResult) {
	var organized []*models.File
	for _, f := range in.Files {
		if f.IsMain() || f.Type != models.FileTypePython || f.InRoot() {
			continue
		}
		if f.Name == "__init__.py" {
			continue
		}
		organized = append(organized, f)
	}

	if len(organized) == 0 {
		result.AddWarning("no Python files have been placed into folders yet - nothing to check for imports")
		return
	}

	imported := importedNames(in.MainText)

	var covered []string
	allCovered := true
	for _, f := range organized {
		module := strings.TrimSuffix(f.Name, ".py")
		folder := folderName(in.Folders, f.Folder)
		if imported[module] {
			covered = append(covered, fmt.Sprintf("%s (%s)", f.Name, folder))
			continue
		}
		allCovered = false
		result.AddError(fmt.Sprintf(
			"%s in folder %q is never imported in main.py - add: from %s import %s",
			f.Name, folder, folder, module,
		))
	}

	if allCovered {
		result.AddSuccess("every organized Python file is imported in main.py: " + strings.Join(covered, ", "))
	}
}

// importedNames collects every item imported through a from-import line
// whose source module is not a known third-party/stdlib module. Aliases
// (`import x as y`) keep the original name.
func importedNames(mainText string) map[string]bool {
	names := make(map[string]bool)
	for _, line := range strings.Split(mainText, "\n") {
		m := fromImportLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		root := m[1]
		if i := strings.Index(root, "."); i >= 0 {
			root = root[:i]
		}
		if knownModules[root] {
			continue
		}
		for _, item := range strings.Split(m[2], ",") {
			item = strings.TrimSpace(item)
			if i := strings.Index(item, " as "); i >= 0 {
				item = strings.TrimSpace(item[:i])
			}
			if item != "" {
				names[item] = true
			}
		}
	}
	return names
}
