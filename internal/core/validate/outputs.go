package validate

import (
	"fmt"
	"strings"

	"github.com/example/scriptsplit/internal/core/script"
	"github.com/example/scriptsplit/internal/models"
)

// checkOutputPaths is rule group C: the two output-path slots must
// match, character for character, the location of the corresponding
// output artifact. The expected line is included in every error so the
// learner can copy it verbatim.
func checkOutputPaths(in Input, result *models.ValidationResult) {
	resultsFolder := in.ResultsFolder
	if resultsFolder == "" {
		resultsFolder = DefaultResultsFolder
	}

	comparisonFolder := artifactFolder(in, script.ComparisonImage, resultsFolder)
	expected := fmt.Sprintf(`output_path=f"%s/%s")`, comparisonFolder, script.ComparisonImage)
	checkExactLine(in.MainText, expected, script.ComparisonImage, isComparisonLine, result)

	overviewFolder := artifactFolder(in, script.OverviewImage, resultsFolder)
	expected = fmt.Sprintf(`output_path=f"%s/%s")`, overviewFolder, script.OverviewImage)
	checkExactLine(in.MainText, expected, script.OverviewImage, isOverviewLine, result)
}

// artifactFolder is where an output artifact has been placed, or the
// results default when it is unplaced or still in root.
func artifactFolder(in Input, artifactName, fallback string) string {
	f := fileByName(in.Files, artifactName)
	if f == nil || f.InRoot() {
		return fallback
	}
	if name := folderName(in.Folders, f.Folder); name != "" {
		return name
	}
	return fallback
}

func isComparisonLine(trimmed string) bool {
	return strings.Contains(trimmed, "output_path=f") && strings.Contains(trimmed, "_comparison")
}

func isOverviewLine(trimmed string) bool {
	return strings.Contains(trimmed, "output_path=f") && !strings.Contains(trimmed, "_comparison")
}

// checkExactLine finds the slot-carrying line and compares it exactly
// against the expected text. Partial matches and whitespace differences
// are errors like any other deviation.
func checkExactLine(mainText, expected, artifactName string, match func(string) bool, result *models.ValidationResult) {
	for _, line := range strings.Split(mainText, "\n") {
		trimmed := strings.TrimSpace(line)
		if !match(trimmed) {
			continue
		}
		if trimmed == expected {
			result.AddSuccess(fmt.Sprintf("the output path for %s is correct", artifactName))
		} else {
			result.AddError(fmt.Sprintf(
				"the output path for %s must match its location exactly - expected: %s",
				artifactName, expected))
		}
		return
	}
	result.AddError(fmt.Sprintf(
		"main.py no longer sets the output path for %s - expected: %s", artifactName, expected))
}
