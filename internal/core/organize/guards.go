// Package organize contains the pure business rules for organization
// store mutations. Guards evaluate preconditions without side effects;
// callers populate contexts with pre-fetched state. A rejected guard
// leaves the store untouched - operations are never partially applied.
package organize

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // user-facing reason, populated when not allowed
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

func allow() GuardResult {
	return GuardResult{Allowed: true}
}

func deny(format string, args ...interface{}) GuardResult {
	return GuardResult{Allowed: false, Reason: fmt.Sprintf(format, args...)}
}

// PyExtension is the required extension for module filenames.
const PyExtension = ".py"

// CheckFileName validates a proposed base name (without extension).
// Spaces and hyphens are rejected with a message, never silently fixed.
func CheckFileName(baseName string) GuardResult {
	trimmed := strings.TrimSpace(baseName)
	if trimmed == "" {
		return deny("file name cannot be empty")
	}
	if strings.ContainsAny(trimmed, " ") {
		return deny("file name %q cannot contain spaces - Python module names use underscores instead", trimmed)
	}
	if strings.Contains(trimmed, "-") {
		return deny("file name %q cannot contain hyphens - Python module names use underscores instead", trimmed)
	}
	return allow()
}

// FinalFileName normalizes a validated base name into the stored form:
// lowercased with the .py extension appended.
func FinalFileName(baseName string) string {
	name := strings.ToLower(strings.TrimSpace(baseName))
	if !strings.HasSuffix(name, PyExtension) {
		name += PyExtension
	}
	return name
}

// CreateFileContext provides context for file creation guards.
type CreateFileContext struct {
	BaseName string
	// UserFileCount is the number of files the learner has already
	// created (seeded files and main excluded).
	UserFileCount int
	// HasImportStatement reports whether the current generated main
	// script declares at least one custom import line.
	HasImportStatement bool
}

// CanCreateFile evaluates whether a new file may be created. The first
// file is free; every further file requires the learner to have written
// at least one import in the main script. This is a pedagogical gate,
// not a technical one.
func CanCreateFile(ctx CreateFileContext) GuardResult {
	if result := CheckFileName(ctx.BaseName); !result.Allowed {
		return result
	}
	if ctx.UserFileCount >= 1 && !ctx.HasImportStatement {
		return deny("add an import statement for %s to the main script before creating another file", FinalFileName(ctx.BaseName))
	}
	return allow()
}

// RenameFileContext provides context for file rename guards.
type RenameFileContext struct {
	FileID     string
	FileExists bool
	IsMain     bool
	BaseName   string
}

// CanRenameFile evaluates whether a file can be renamed.
func CanRenameFile(ctx RenameFileContext) GuardResult {
	if !ctx.FileExists {
		return deny("file %s not found", ctx.FileID)
	}
	if ctx.IsMain {
		return deny("the main script cannot be renamed")
	}
	return CheckFileName(ctx.BaseName)
}

// DeleteFileContext provides context for file deletion guards.
type DeleteFileContext struct {
	FileID     string
	FileExists bool
	IsMain     bool
	Seeded     bool
}

// CanDeleteFile evaluates whether a file can be deleted. Deleting a
// file returns its functions to the unassigned pool.
func CanDeleteFile(ctx DeleteFileContext) GuardResult {
	if !ctx.FileExists {
		return deny("file %s not found", ctx.FileID)
	}
	if ctx.IsMain {
		return deny("the main script cannot be deleted")
	}
	if ctx.Seeded {
		return deny("project file %s is part of the activity and cannot be deleted", ctx.FileID)
	}
	return allow()
}

// AssignContext provides context for unit assignment guards.
type AssignContext struct {
	UnitName     string
	UnitExists   bool
	TargetID     string
	TargetExists bool
	TargetIsMain bool
	TargetIsPy   bool
}

// CanAssignUnit evaluates whether a unit can be assigned to a target
// file. Main never receives explicit assignments - its lists are the
// complement of everything claimed elsewhere.
func CanAssignUnit(ctx AssignContext) GuardResult {
	if !ctx.UnitExists {
		return deny("unknown unit %q", ctx.UnitName)
	}
	if !ctx.TargetExists {
		return deny("file %s not found", ctx.TargetID)
	}
	if ctx.TargetIsMain {
		return deny("units cannot be assigned to the main script - anything left unassigned stays there")
	}
	if !ctx.TargetIsPy {
		return deny("units can only be assigned to Python files")
	}
	return allow()
}

// CreateFolderContext provides context for folder creation guards.
type CreateFolderContext struct {
	Name string
	// ExistingNames are current folder names; comparison is
	// case-insensitive.
	ExistingNames []string
}

// CanCreateFolder evaluates whether a folder can be created.
func CanCreateFolder(ctx CreateFolderContext) GuardResult {
	name := strings.TrimSpace(ctx.Name)
	if name == "" {
		return deny("folder name cannot be empty")
	}
	for _, existing := range ctx.ExistingNames {
		if strings.EqualFold(existing, name) {
			return deny("a folder named %q already exists", existing)
		}
	}
	return allow()
}

// DeleteFolderContext provides context for folder deletion guards.
type DeleteFolderContext struct {
	FolderID     string
	FolderExists bool
	FileCount    int
	Confirmed    bool
}

// CanDeleteFolder evaluates whether a folder can be deleted. Deletion
// always requires confirmation; deleting a non-empty folder moves its
// files back to the root rather than cascading.
func CanDeleteFolder(ctx DeleteFolderContext) GuardResult {
	if !ctx.FolderExists {
		return deny("folder %s not found", ctx.FolderID)
	}
	if !ctx.Confirmed {
		if ctx.FileCount > 0 {
			return deny("folder contains %d file(s) that will move back to the project root - confirm to delete", ctx.FileCount)
		}
		return deny("confirm to delete the folder")
	}
	return allow()
}

// MoveFileContext provides context for file placement guards.
type MoveFileContext struct {
	FileID       string
	FileExists   bool
	IsMain       bool
	NonDraggable bool
	TargetFolder string // empty means move to root
	FolderExists bool   // only checked when TargetFolder != ""
}

// CanMoveFile evaluates whether a file can be placed into a folder or
// back to the root.
func CanMoveFile(ctx MoveFileContext) GuardResult {
	if !ctx.FileExists {
		return deny("file %s not found", ctx.FileID)
	}
	if ctx.IsMain {
		return deny("main.py must stay in the project root")
	}
	if ctx.NonDraggable {
		return deny("file %s cannot be moved", ctx.FileID)
	}
	if ctx.TargetFolder != "" && !ctx.FolderExists {
		return deny("folder %s not found", ctx.TargetFolder)
	}
	return allow()
}
