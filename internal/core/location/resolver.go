// Package location derives filesystem-like path strings for files from
// the folder graph. Locations are recomputed from scratch on every call;
// nothing here is cached, because a stale path silently breaks the
// validator.
package location

import "github.com/example/scriptsplit/internal/models"

// Resolve builds a location record for every file. A file whose folder
// id is dangling (the folder was deleted out from under it) resolves to
// the root rather than erroring.
func Resolve(files []*models.File, folders []*models.Folder) map[string]models.FileLocation {
	byID := make(map[string]*models.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}

	locations := make(map[string]models.FileLocation, len(files))
	for _, file := range files {
		path := folderPath(file.Folder, byID)
		full := "." + path + file.Name
		locations[file.ID] = models.FileLocation{
			FileID:       file.ID,
			Path:         path,
			FullLocation: full,
			IsInRoot:     path == "/",
		}
	}
	return locations
}

// folderPath walks the parent chain from the file's folder outward and
// joins ancestor names outermost first, each wrapped in slashes. Root
// and dangling references both yield "/".
func folderPath(folderID string, byID map[string]*models.Folder) string {
	if folderID == "" {
		return "/"
	}

	var names []string
	seen := make(map[string]bool)
	for id := folderID; id != ""; {
		folder, ok := byID[id]
		if !ok {
			// dangling link, treat the whole chain as root
			return "/"
		}
		if seen[id] {
			break
		}
		seen[id] = true
		names = append(names, folder.Name)
		id = folder.Parent
	}

	path := "/"
	for i := len(names) - 1; i >= 0; i-- {
		path += names[i] + "/"
	}
	return path
}
