// Package primary defines the primary ports: the interfaces through
// which the presentation layer drives the organization engine.
package primary

import (
	"context"

	"github.com/example/scriptsplit/internal/core/generate"
	"github.com/example/scriptsplit/internal/models"
)

// OrganizationService is the in-process API for the whole activity:
// store mutations, the derive pipeline, slot editing, stage gates, and
// the session boundary.
type OrganizationService interface {
	// CreateFile creates a new Python file from a base name.
	CreateFile(ctx context.Context, req CreateFileRequest) (*models.File, error)

	// RenameFile renames an existing file; name rules are re-checked.
	RenameFile(ctx context.Context, req RenameFileRequest) error

	// DeleteFile removes a file, returning any functions it held to
	// the unassigned pool.
	DeleteFile(ctx context.Context, fileID string) error

	// AssignUnit places a unit into a target file. Functions and
	// code blocks move atomically; imports are copied, not moved.
	AssignUnit(ctx context.Context, req AssignRequest) error

	// UnassignUnit removes a unit from whichever file holds it.
	UnassignUnit(ctx context.Context, unitName string, kind models.UnitKind) error

	// CreateFolder creates a root-level folder with a unique name.
	CreateFolder(ctx context.Context, name string) (*models.Folder, error)

	// DeleteFolder removes a folder; its files move back to the root.
	DeleteFolder(ctx context.Context, req DeleteFolderRequest) error

	// MoveFile places a file into a folder, or back to the root when
	// folderID is empty.
	MoveFile(ctx context.Context, fileID, folderID string) error

	// ListFiles returns all files, main included.
	ListFiles(ctx context.Context) []*models.File

	// ListFolders returns all folders.
	ListFolders(ctx context.Context) []*models.Folder

	// FilesInFolder returns the files placed in a folder.
	FilesInFolder(ctx context.Context, folderID string) []*models.File

	// RootFiles returns the files not placed in any folder.
	RootFiles(ctx context.Context) []*models.File

	// UnassignedFunctions is the function universe minus every claim;
	// it is also main's effective function list.
	UnassignedFunctions(ctx context.Context) []string

	// Units returns the unit catalog of the example script.
	Units(ctx context.Context) []models.ScriptUnit

	// MainText returns the current generated main script text.
	MainText(ctx context.Context) string

	// SetMainText accepts a hand-edited main text from the
	// presentation layer; known slot values in it survive the next
	// regeneration.
	SetMainText(ctx context.Context, text string) error

	// EditSlot changes one editable slot and regenerates.
	EditSlot(ctx context.Context, kind generate.SlotKind, value string) error

	// AddImportLine appends a custom import line to the main script.
	AddImportLine(ctx context.Context, line string) error

	// Derive recomputes locations, main text, and validation in one
	// pass over the current store state.
	Derive(ctx context.Context) (*Derived, error)

	// RequestValidation schedules a debounced validation pass; the
	// callback receives the result unless a newer request superseded
	// this one first.
	RequestValidation(ctx context.Context, deliver func(*models.ValidationResult))

	// Gates evaluates every stage-advancement predicate at once.
	Gates(ctx context.Context) *GateReport

	// SaveSession persists the file list snapshot for the next stage.
	SaveSession(ctx context.Context) error

	// LoadSession restores a prior snapshot; absence is not an error
	// and leaves the defaults in place.
	LoadSession(ctx context.Context) error
}

// CreateFileRequest contains parameters for creating a file.
type CreateFileRequest struct {
	BaseName string
}

// RenameFileRequest contains parameters for renaming a file.
type RenameFileRequest struct {
	FileID   string
	BaseName string
}

// AssignRequest contains parameters for assigning a unit to a file.
type AssignRequest struct {
	UnitName string
	Kind     models.UnitKind
	TargetID string
}

// DeleteFolderRequest contains parameters for deleting a folder.
// Confirmed mirrors the confirmation step of the original dialog.
type DeleteFolderRequest struct {
	FolderID  string
	Confirmed bool
}

// Derived is the output of one derive pipeline pass.
type Derived struct {
	Locations  map[string]models.FileLocation
	MainText   string
	Validation *models.ValidationResult
}

// GateReport carries every stage gate's current verdict.
type GateReport struct {
	CanFinishRefactor  bool
	RefactorReason     string
	CanProceedOrganize bool
	ProceedReason      string
	AllUserFilesPlaced bool
	PlacedReason       string
	CanFinishOrganize  bool
	OrganizeReason     string
}
