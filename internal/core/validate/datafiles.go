package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/example/scriptsplit/internal/core/generate"
	"github.com/example/scriptsplit/internal/models"
)

var tooManySlashesRe = regexp.MustCompile(`[/\\]{3,}`)

// checkDataFilePaths is rule group B: the load_file path prefix and the
// files = [...] entries must agree with where the recognized data files
// actually live. The structural case is decided by how many distinct
// folders currently contain data files.
func checkDataFilePaths(in Input, result *models.ValidationResult) {
	var dataFiles []*models.File
	for _, f := range in.Files {
		if f.Type == models.FileTypeData {
			dataFiles = append(dataFiles, f)
		}
	}
	if len(dataFiles) == 0 {
		return
	}

	slots, found := generate.Extract(in.MainText, nil)
	prefix := ""
	if found.LoadPrefix {
		prefix = slots.LoadPrefix
	}
	var entries []string
	if found.Files {
		entries = slots.Files
	}

	folderSet := make(map[string]bool)
	for _, f := range dataFiles {
		if !f.InRoot() {
			folderSet[f.Folder] = true
		}
	}

	switch len(folderSet) {
	case 0:
		checkAllInRoot(prefix, entries, result)
	case 1:
		var folderID string
		for id := range folderSet {
			folderID = id
		}
		checkSharedFolder(folderName(in.Folders, folderID), dataFiles, prefix, entries, result)
	default:
		checkSplitFolders(in, dataFiles, prefix, entries, result)
	}
}

// checkAllInRoot: every data file sits in the project root, so the
// prefix must be empty and no files entry may carry a path.
func checkAllInRoot(prefix string, entries []string, result *models.ValidationResult) {
	ok := true
	if strings.TrimSpace(prefix) != "" {
		result.AddError(fmt.Sprintf(
			"the data files are in the project root but load_file uses the path prefix %q - remove it", prefix))
		ok = false
	}
	for _, e := range entries {
		if hasPathSeparator(e) {
			result.AddError(fmt.Sprintf(
				"%q points into a folder but the data files are in the project root", e))
			ok = false
		}
	}
	if ok {
		result.AddSuccess("data files load from the project root")
	}
}

// checkSharedFolder: all data files share one folder. The learner may
// use the shared path prefix OR per-filename paths, never both.
func checkSharedFolder(folder string, dataFiles []*models.File, prefix string, entries []string, result *models.ValidationResult) {
	usesPrefix := strings.TrimSpace(prefix) != ""
	usesPaths := false
	for _, e := range entries {
		if hasPathSeparator(e) {
			usesPaths = true
			break
		}
	}

	switch {
	case usesPrefix && usesPaths:
		result.AddError(
			"cannot mix the load_file path prefix with folder paths inside the files list - pick one approach")
	case !usesPrefix && !usesPaths:
		result.AddError(fmt.Sprintf(
			"the data files moved into %q but the script still loads them from the root - "+
				`either set load_file(f"%s/{filename}") or prefix each files entry with "%s/"`,
			folder, folder, folder))
	case usesPrefix:
		checkPrefixAgainstFolder(folder, prefix, result)
	default:
		checkEntriesAgainstFolder(folder, dataFiles, entries, result)
	}
}

// checkPrefixAgainstFolder validates the shared-prefix approach,
// distinguishing "forgot the slash" from "wrong folder name".
func checkPrefixAgainstFolder(folder string, prefix string, result *models.ValidationResult) {
	p := strings.TrimSpace(prefix)

	if tooManySlashesRe.MatchString(p) {
		result.AddError(fmt.Sprintf("too many slashes in the path prefix %q", prefix))
		return
	}
	if !strings.HasSuffix(p, "/") && !strings.HasSuffix(p, `\`) {
		result.AddError(fmt.Sprintf(
			`the path prefix %q is missing its trailing slash - write "%s/"`, prefix, p))
		return
	}
	if got := strings.TrimRight(p, `/\`); got != folder {
		result.AddError(fmt.Sprintf(
			"the path prefix points at %q but the data files are in %q", got, folder))
		return
	}
	result.AddSuccess(fmt.Sprintf("load_file reads the data files from %q", folder))
}

// checkEntriesAgainstFolder validates the per-filename approach for a
// single shared folder.
func checkEntriesAgainstFolder(folder string, dataFiles []*models.File, entries []string, result *models.ValidationResult) {
	ok := true
	for _, f := range dataFiles {
		if !containsEntry(entries, folder, f.Name) {
			result.AddError(fmt.Sprintf(
				"the files entry for %s must include its folder: %s/%s", f.Name, folder, f.Name))
			ok = false
		}
	}
	if ok {
		result.AddSuccess(fmt.Sprintf("every files entry points into %q", folder))
	}
}

// checkSplitFolders: data files live in two or more different folders,
// so only per-filename paths can work and the prefix must be empty.
func checkSplitFolders(in Input, dataFiles []*models.File, prefix string, entries []string, result *models.ValidationResult) {
	ok := true
	if strings.TrimSpace(prefix) != "" {
		result.AddError(
			"the data files live in different folders - a shared load_file prefix cannot reach them all, remove it and put each path in the files list")
		ok = false
	}
	for _, f := range dataFiles {
		if f.InRoot() {
			if !stringInList(entries, f.Name) {
				result.AddError(fmt.Sprintf("the files list is missing %q", f.Name))
				ok = false
			}
			continue
		}
		folder := folderName(in.Folders, f.Folder)
		if !containsEntry(entries, folder, f.Name) {
			result.AddError(fmt.Sprintf("the files list is missing %q", folder+"/"+f.Name))
			ok = false
		}
	}
	if ok {
		result.AddSuccess("every files entry matches its data file's folder")
	}
}

func hasPathSeparator(s string) bool {
	return strings.ContainsAny(s, `/\`)
}

// containsEntry reports whether entries carries folder/name with either
// separator style.
func containsEntry(entries []string, folder, name string) bool {
	return stringInList(entries, folder+"/"+name) || stringInList(entries, folder+`\`+name)
}

func stringInList(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
