package models

// MainFileID is the id of the distinguished synthetic main file. It is
// never user-deletable and always stays in the root.
const MainFileID = "main"

// FileType identifies the kind of project file. This replaces the
// original's duck-typed string field with a closed set.
type FileType string

const (
	FileTypePython FileType = "python"
	FileTypeImage  FileType = "image"
	FileTypeData   FileType = "data"
	FileTypeText   FileType = "text"
)

// Label returns the user-facing label for the file type.
func (t FileType) Label() string {
	switch t {
	case FileTypePython:
		return "Python file"
	case FileTypeImage:
		return "Image file"
	case FileTypeData:
		return "Data file"
	case FileTypeText:
		return "Text file"
	default:
		return "File"
	}
}

// File is a user-created organizational unit representing one output
// module (or a seeded project asset in the organize stage).
//
// Invariant: a function or code-block name appears in at most one File's
// assigned list at any time. Imports are non-exclusive and may be
// assigned to several files at once.
type File struct {
	ID          string
	Name        string
	Type        FileType
	Description string
	Color       string

	AssignedFunctions  []string
	AssignedImports    []string
	AssignedCodeBlocks []string

	// Folder is the containing folder id, empty string means root.
	Folder string

	// Content is derived from the assigned-unit lists; it is recomputed
	// on every assignment change and never independently authoritative.
	Content string

	// Seeded files come from the organize-stage defaults rather than the
	// refactor stage. NonDraggable files reject folder moves.
	Seeded       bool
	NonDraggable bool
}

// IsMain reports whether this is the synthetic main file.
func (f *File) IsMain() bool {
	return f.ID == MainFileID
}

// InRoot reports whether the file is not placed in any folder.
func (f *File) InRoot() bool {
	return f.Folder == ""
}

// HoldsFunction reports whether the file has claimed the named function.
func (f *File) HoldsFunction(name string) bool {
	return contains(f.AssignedFunctions, name)
}

// HoldsImport reports whether the file has the named import assigned.
func (f *File) HoldsImport(name string) bool {
	return contains(f.AssignedImports, name)
}

// HoldsCodeBlock reports whether the file has claimed the named block.
func (f *File) HoldsCodeBlock(name string) bool {
	return contains(f.AssignedCodeBlocks, name)
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
