// Package validate checks the organized project against the generated
// main script text. Three independent rule groups run on every pass and
// accumulate into one flat result; nothing short-circuits, so the
// learner always sees every problem at once.
package validate

import (
	"github.com/example/scriptsplit/internal/models"
)

// DefaultResultsFolder is the folder name expected for output artifacts
// that have not been placed anywhere yet.
const DefaultResultsFolder = "results"

// Input is the full state one validation pass reads. The validator
// never mutates any of it.
type Input struct {
	Files    []*models.File
	Folders  []*models.Folder
	MainText string

	// ResultsFolder overrides DefaultResultsFolder when set.
	ResultsFolder string
}

// Run evaluates all rule groups and returns the accumulated result.
// IsValid is false iff any group produced an error.
func Run(in Input) *models.ValidationResult {
	result := models.NewValidationResult()

	checkImportCoverage(in, result)
	checkDataFilePaths(in, result)
	checkOutputPaths(in, result)

	return result
}

// folderName resolves a folder id to its name, empty when dangling or
// root.
func folderName(folders []*models.Folder, id string) string {
	for _, f := range folders {
		if f.ID == id {
			return f.Name
		}
	}
	return ""
}

// fileByName finds a file entity by its display name.
func fileByName(files []*models.File, name string) *models.File {
	for _, f := range files {
		if f.Name == name {
			return f
		}
	}
	return nil
}
