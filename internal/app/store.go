// Package app contains the application services orchestrating the
// organization store, the core rule packages, and the session boundary.
package app

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/example/scriptsplit/internal/core/script"
	"github.com/example/scriptsplit/internal/models"
)

// Store is the single authoritative owner of Files and Folders, plus
// the learner's custom import lines. All consumers read through it;
// the original's parallel per-view copies collapse into this one
// object. Mutation methods apply unconditionally - preconditions are
// the service's job, via the organize guards.
type Store struct {
	model   *script.Model
	files   []*models.File
	folders []*models.Folder

	customImports []string

	entropy *ulid.MonotonicEntropy
}

// NewStore creates a store seeded with the default project files: the
// synthetic main, one starter module, and the organize-stage assets
// (package init, the data files, the output images).
func NewStore(model *script.Model) *Store {
	s := &Store{
		model:   model,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	s.seedDefaults()
	return s
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Store) seedDefaults() {
	s.files = []*models.File{
		{
			ID:           models.MainFileID,
			Name:         "main.py",
			Type:         models.FileTypePython,
			Description:  "Entry point holding everything not yet moved elsewhere",
			Seeded:       true,
			NonDraggable: true,
		},
		{
			ID:          s.newID(),
			Name:        "file1.py",
			Type:        models.FileTypePython,
			Description: "Python script",
			Color:       script.Palette[0],
		},
		{
			ID:          s.newID(),
			Name:        "__init__.py",
			Type:        models.FileTypePython,
			Description: "Python package initialization file",
			Seeded:      true,
		},
		{
			ID:          s.newID(),
			Name:        script.DataFileND2,
			Type:        models.FileTypeData,
			Description: "Microscopy data file",
			Seeded:      true,
		},
		{
			ID:          s.newID(),
			Name:        script.DataFileTIFF,
			Type:        models.FileTypeData,
			Description: "Microscopy data file",
			Seeded:      true,
		},
		{
			ID:          s.newID(),
			Name:        script.DataFileNPY,
			Type:        models.FileTypeData,
			Description: "Microscopy data file",
			Seeded:      true,
		},
		{
			ID:          s.newID(),
			Name:        script.ComparisonImage,
			Type:        models.FileTypeImage,
			Description: "Comparison plot produced by the script",
			Seeded:      true,
		},
		{
			ID:          s.newID(),
			Name:        script.OverviewImage,
			Type:        models.FileTypeImage,
			Description: "Overview plot produced by the script",
			Seeded:      true,
		},
	}
	s.folders = nil
	s.customImports = nil
}

// Model returns the script model the store was built around.
func (s *Store) Model() *script.Model {
	return s.model
}

// Files returns every file, main included.
func (s *Store) Files() []*models.File {
	return s.files
}

// Folders returns every folder.
func (s *Store) Folders() []*models.Folder {
	return s.folders
}

// CustomImports returns the learner's added import lines.
func (s *Store) CustomImports() []string {
	return s.customImports
}

// FileByID finds a file, nil when absent.
func (s *Store) FileByID(id string) *models.File {
	for _, f := range s.files {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// FolderByID finds a folder, nil when absent.
func (s *Store) FolderByID(id string) *models.Folder {
	for _, f := range s.folders {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Main returns the synthetic main file.
func (s *Store) Main() *models.File {
	return s.FileByID(models.MainFileID)
}

// UserFiles returns the learner-created files (main and seeds excluded).
func (s *Store) UserFiles() []*models.File {
	var out []*models.File
	for _, f := range s.files {
		if !f.IsMain() && !f.Seeded {
			out = append(out, f)
		}
	}
	return out
}

// FilesInFolder returns the files placed in the given folder.
func (s *Store) FilesInFolder(folderID string) []*models.File {
	var out []*models.File
	for _, f := range s.files {
		if f.Folder == folderID && folderID != "" {
			out = append(out, f)
		}
	}
	return out
}

// RootFiles returns the files not placed in any folder.
func (s *Store) RootFiles() []*models.File {
	var out []*models.File
	for _, f := range s.files {
		if f.InRoot() {
			out = append(out, f)
		}
	}
	return out
}

// HolderOf finds the non-main file currently claiming a unit, nil when
// the unit is unassigned.
func (s *Store) HolderOf(name string, kind models.UnitKind) *models.File {
	for _, f := range s.files {
		if f.IsMain() {
			continue
		}
		switch kind {
		case models.UnitFunction:
			if f.HoldsFunction(name) {
				return f
			}
		case models.UnitImport:
			if f.HoldsImport(name) {
				return f
			}
		case models.UnitCodeBlock:
			if f.HoldsCodeBlock(name) {
				return f
			}
		}
	}
	return nil
}

// UnassignedFunctions is the function universe minus the union of every
// file's claims. This set is main's effective function list.
func (s *Store) UnassignedFunctions() []string {
	claimed := make(map[string]bool)
	for _, f := range s.files {
		for _, name := range f.AssignedFunctions {
			claimed[name] = true
		}
	}
	var out []string
	for _, name := range s.model.FunctionNames() {
		if !claimed[name] {
			out = append(out, name)
		}
	}
	return out
}

// AssignedUnits resolves every unit claimed by any non-main file into
// its script unit, for the generator's excluded-line set.
func (s *Store) AssignedUnits() []models.ScriptUnit {
	var out []models.ScriptUnit
	for _, f := range s.files {
		if f.IsMain() {
			continue
		}
		for _, name := range f.AssignedFunctions {
			if u, ok := s.model.Unit(models.UnitFunction, name); ok {
				out = append(out, u)
			}
		}
		for _, name := range f.AssignedImports {
			if u, ok := s.model.Unit(models.UnitImport, name); ok {
				out = append(out, u)
			}
		}
		for _, name := range f.AssignedCodeBlocks {
			if u, ok := s.model.Unit(models.UnitCodeBlock, name); ok {
				out = append(out, u)
			}
		}
	}
	return out
}

// AddFile appends a new user file and returns it.
func (s *Store) AddFile(name string) *models.File {
	f := &models.File{
		ID:          s.newID(),
		Name:        name,
		Type:        models.FileTypePython,
		Description: "Python script",
		Color:       script.Palette[len(s.UserFiles())%len(script.Palette)],
	}
	s.files = append(s.files, f)
	s.refreshContent(f)
	return f
}

// RemoveFile drops a file. Its claimed units simply stop being claimed,
// which returns them to the unassigned pool.
func (s *Store) RemoveFile(id string) {
	for i, f := range s.files {
		if f.ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			return
		}
	}
}

// AssignFunction moves a function atomically: it is removed from
// whichever file holds it before being appended to the target.
func (s *Store) AssignFunction(name, targetID string) {
	if holder := s.HolderOf(name, models.UnitFunction); holder != nil {
		holder.AssignedFunctions = remove(holder.AssignedFunctions, name)
		s.refreshContent(holder)
	}
	target := s.FileByID(targetID)
	if !target.HoldsFunction(name) {
		target.AssignedFunctions = append(target.AssignedFunctions, name)
	}
	s.refreshContent(target)
}

// AssignImport copies an import to the target. Imports stay wherever
// else they are already assigned.
func (s *Store) AssignImport(name, targetID string) {
	target := s.FileByID(targetID)
	if !target.HoldsImport(name) {
		target.AssignedImports = append(target.AssignedImports, name)
	}
	s.refreshContent(target)
}

// AssignCodeBlock moves a code block atomically, like a function.
func (s *Store) AssignCodeBlock(name, targetID string) {
	if holder := s.HolderOf(name, models.UnitCodeBlock); holder != nil {
		holder.AssignedCodeBlocks = remove(holder.AssignedCodeBlocks, name)
		s.refreshContent(holder)
	}
	target := s.FileByID(targetID)
	if !target.HoldsCodeBlock(name) {
		target.AssignedCodeBlocks = append(target.AssignedCodeBlocks, name)
	}
	s.refreshContent(target)
}

// Unassign removes a unit from every file holding it (drop to trash).
func (s *Store) Unassign(name string, kind models.UnitKind) {
	for _, f := range s.files {
		changed := false
		switch kind {
		case models.UnitFunction:
			if f.HoldsFunction(name) {
				f.AssignedFunctions = remove(f.AssignedFunctions, name)
				changed = true
			}
		case models.UnitImport:
			if f.HoldsImport(name) {
				f.AssignedImports = remove(f.AssignedImports, name)
				changed = true
			}
		case models.UnitCodeBlock:
			if f.HoldsCodeBlock(name) {
				f.AssignedCodeBlocks = remove(f.AssignedCodeBlocks, name)
				changed = true
			}
		}
		if changed {
			s.refreshContent(f)
		}
	}
}

// AddFolder appends a new root-level folder and returns it.
func (s *Store) AddFolder(name string) *models.Folder {
	folder := &models.Folder{ID: s.newID(), Name: strings.TrimSpace(name)}
	s.folders = append(s.folders, folder)
	return folder
}

// RemoveFolder drops a folder and reassigns its files to the root.
func (s *Store) RemoveFolder(id string) {
	for _, f := range s.files {
		if f.Folder == id {
			f.Folder = ""
		}
	}
	for i, folder := range s.folders {
		if folder.ID == id {
			s.folders = append(s.folders[:i], s.folders[i+1:]...)
			return
		}
	}
}

// AddImportLine records a custom import line for the generated main.
func (s *Store) AddImportLine(line string) {
	s.customImports = append(s.customImports, strings.TrimSpace(line))
}

// HasImportStatement reports whether the learner has declared any
// custom import line yet.
func (s *Store) HasImportStatement() bool {
	return len(s.customImports) > 0
}

// refreshContent recomputes a file's derived content from its assigned
// unit lists. Content mirrors the original's generated file preview:
// a name header, then each unit's source slice.
func (s *Store) refreshContent(f *models.File) {
	if f.IsMain() {
		return
	}
	var b strings.Builder
	b.WriteString("# " + f.Name + "\n")
	for _, name := range f.AssignedImports {
		if u, ok := s.model.Unit(models.UnitImport, name); ok {
			b.WriteString("\n" + s.model.Slice(u.Range) + "\n")
		}
	}
	for _, name := range f.AssignedFunctions {
		if u, ok := s.model.Unit(models.UnitFunction, name); ok {
			b.WriteString("\n" + s.model.Slice(u.Range) + "\n")
		}
	}
	for _, name := range f.AssignedCodeBlocks {
		if u, ok := s.model.Unit(models.UnitCodeBlock, name); ok {
			b.WriteString("\n# " + name + "\n" + s.model.Slice(u.Range) + "\n")
		}
	}
	f.Content = b.String()
}

func remove(list []string, name string) []string {
	out := list[:0]
	for _, n := range list {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
