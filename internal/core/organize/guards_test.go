package organize

import "testing"

func TestCheckFileName(t *testing.T) {
	tests := []struct {
		name        string
		baseName    string
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "plain name is allowed",
			baseName:    "loading",
			wantAllowed: true,
		},
		{
			name:        "name with underscore is allowed",
			baseName:    "image_processing",
			wantAllowed: true,
		},
		{
			name:        "empty name is rejected",
			baseName:    "   ",
			wantAllowed: false,
			wantReason:  "file name cannot be empty",
		},
		{
			name:        "spaces are rejected, not fixed",
			baseName:    "my module",
			wantAllowed: false,
			wantReason:  `file name "my module" cannot contain spaces - Python module names use underscores instead`,
		},
		{
			name:        "hyphens are rejected, not fixed",
			baseName:    "my-module",
			wantAllowed: false,
			wantReason:  `file name "my-module" cannot contain hyphens - Python module names use underscores instead`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckFileName(tt.baseName)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestFinalFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Loading", "loading.py"},
		{"loading.py", "loading.py"},
		{"  Helpers  ", "helpers.py"},
	}
	for _, tt := range tests {
		if got := FinalFileName(tt.in); got != tt.want {
			t.Errorf("FinalFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanCreateFile(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateFileContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "first file is free",
			ctx:         CreateFileContext{BaseName: "loading", UserFileCount: 0},
			wantAllowed: true,
		},
		{
			name: "second file requires an import statement",
			ctx:  CreateFileContext{BaseName: "plotting", UserFileCount: 1},
			wantAllowed: false,
			wantReason:  "add an import statement for plotting.py to the main script before creating another file",
		},
		{
			name: "second file allowed once an import exists",
			ctx: CreateFileContext{
				BaseName:           "plotting",
				UserFileCount:      1,
				HasImportStatement: true,
			},
			wantAllowed: true,
		},
		{
			name:        "name rules run first",
			ctx:         CreateFileContext{BaseName: "bad name", UserFileCount: 0},
			wantAllowed: false,
			wantReason:  `file name "bad name" cannot contain spaces - Python module names use underscores instead`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateFile(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanDeleteFile(t *testing.T) {
	tests := []struct {
		name        string
		ctx         DeleteFileContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "user file can be deleted",
			ctx:         DeleteFileContext{FileID: "F1", FileExists: true},
			wantAllowed: true,
		},
		{
			name:        "missing file is rejected",
			ctx:         DeleteFileContext{FileID: "F9"},
			wantAllowed: false,
			wantReason:  "file F9 not found",
		},
		{
			name:        "main cannot be deleted",
			ctx:         DeleteFileContext{FileID: "main", FileExists: true, IsMain: true},
			wantAllowed: false,
			wantReason:  "the main script cannot be deleted",
		},
		{
			name:        "seeded project files cannot be deleted",
			ctx:         DeleteFileContext{FileID: "F2", FileExists: true, Seeded: true},
			wantAllowed: false,
			wantReason:  "project file F2 is part of the activity and cannot be deleted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanDeleteFile(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanRenameFile(t *testing.T) {
	tests := []struct {
		name        string
		ctx         RenameFileContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "rename with valid name",
			ctx:         RenameFileContext{FileID: "F1", FileExists: true, BaseName: "loading"},
			wantAllowed: true,
		},
		{
			name:        "main cannot be renamed",
			ctx:         RenameFileContext{FileID: "main", FileExists: true, IsMain: true, BaseName: "app"},
			wantAllowed: false,
			wantReason:  "the main script cannot be renamed",
		},
		{
			name:        "new name still follows the name rules",
			ctx:         RenameFileContext{FileID: "F1", FileExists: true, BaseName: "bad-name"},
			wantAllowed: false,
			wantReason:  `file name "bad-name" cannot contain hyphens - Python module names use underscores instead`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanRenameFile(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanAssignUnit(t *testing.T) {
	tests := []struct {
		name        string
		ctx         AssignContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "assign to a python file",
			ctx: AssignContext{
				UnitName: "load_file", UnitExists: true,
				TargetID: "F1", TargetExists: true, TargetIsPy: true,
			},
			wantAllowed: true,
		},
		{
			name:        "unknown unit",
			ctx:         AssignContext{UnitName: "mystery"},
			wantAllowed: false,
			wantReason:  `unknown unit "mystery"`,
		},
		{
			name: "main never receives assignments",
			ctx: AssignContext{
				UnitName: "load_file", UnitExists: true,
				TargetID: "main", TargetExists: true, TargetIsMain: true, TargetIsPy: true,
			},
			wantAllowed: false,
			wantReason:  "units cannot be assigned to the main script - anything left unassigned stays there",
		},
		{
			name: "data files cannot hold units",
			ctx: AssignContext{
				UnitName: "load_file", UnitExists: true,
				TargetID: "F3", TargetExists: true,
			},
			wantAllowed: false,
			wantReason:  "units can only be assigned to Python files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanAssignUnit(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanCreateFolder(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateFolderContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "new folder name",
			ctx:         CreateFolderContext{Name: "src"},
			wantAllowed: true,
		},
		{
			name:        "empty name rejected",
			ctx:         CreateFolderContext{Name: "  "},
			wantAllowed: false,
			wantReason:  "folder name cannot be empty",
		},
		{
			name:        "duplicate name rejected case-insensitively",
			ctx:         CreateFolderContext{Name: "SRC", ExistingNames: []string{"src", "data"}},
			wantAllowed: false,
			wantReason:  `a folder named "src" already exists`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateFolder(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanDeleteFolder(t *testing.T) {
	tests := []struct {
		name        string
		ctx         DeleteFolderContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "confirmed deletion of empty folder",
			ctx:         DeleteFolderContext{FolderID: "D1", FolderExists: true, Confirmed: true},
			wantAllowed: true,
		},
		{
			name:        "confirmed deletion of non-empty folder",
			ctx:         DeleteFolderContext{FolderID: "D1", FolderExists: true, FileCount: 3, Confirmed: true},
			wantAllowed: true,
		},
		{
			name:        "unconfirmed empty folder",
			ctx:         DeleteFolderContext{FolderID: "D1", FolderExists: true},
			wantAllowed: false,
			wantReason:  "confirm to delete the folder",
		},
		{
			name:        "unconfirmed non-empty folder names the consequence",
			ctx:         DeleteFolderContext{FolderID: "D1", FolderExists: true, FileCount: 2},
			wantAllowed: false,
			wantReason:  "folder contains 2 file(s) that will move back to the project root - confirm to delete",
		},
		{
			name:        "missing folder",
			ctx:         DeleteFolderContext{FolderID: "D9", Confirmed: true},
			wantAllowed: false,
			wantReason:  "folder D9 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanDeleteFolder(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanMoveFile(t *testing.T) {
	tests := []struct {
		name        string
		ctx         MoveFileContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "move into existing folder",
			ctx: MoveFileContext{
				FileID: "F1", FileExists: true,
				TargetFolder: "D1", FolderExists: true,
			},
			wantAllowed: true,
		},
		{
			name:        "move back to root needs no folder",
			ctx:         MoveFileContext{FileID: "F1", FileExists: true},
			wantAllowed: true,
		},
		{
			name:        "main stays in root",
			ctx:         MoveFileContext{FileID: "main", FileExists: true, IsMain: true, TargetFolder: "D1", FolderExists: true},
			wantAllowed: false,
			wantReason:  "main.py must stay in the project root",
		},
		{
			name:        "non-draggable file",
			ctx:         MoveFileContext{FileID: "F2", FileExists: true, NonDraggable: true, TargetFolder: "D1", FolderExists: true},
			wantAllowed: false,
			wantReason:  "file F2 cannot be moved",
		},
		{
			name:        "missing destination folder",
			ctx:         MoveFileContext{FileID: "F1", FileExists: true, TargetFolder: "D9"},
			wantAllowed: false,
			wantReason:  "folder D9 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanMoveFile(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestGuardResultError(t *testing.T) {
	if err := allow().Error(); err != nil {
		t.Errorf("allow().Error() = %v, want nil", err)
	}
	if err := deny("nope").Error(); err == nil || err.Error() != "nope" {
		t.Errorf("deny().Error() = %v, want nope", err)
	}
}
