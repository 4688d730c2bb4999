package organize

import "testing"

func TestCanFinishRefactor(t *testing.T) {
	tests := []struct {
		name        string
		ctx         GateContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "two files open the gate",
			ctx:         GateContext{FileCount: 2},
			wantAllowed: true,
		},
		{
			name:        "main alone is not a split",
			ctx:         GateContext{FileCount: 1},
			wantAllowed: false,
			wantReason:  "split the script into at least two files to continue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanFinishRefactor(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanProceedOrganize(t *testing.T) {
	tests := []struct {
		name        string
		ctx         GateContext
		wantAllowed bool
	}{
		{
			name:        "a folder with a placed file suffices",
			ctx:         GateContext{FolderCount: 1, PlacedCount: 1, UnplacedNonMain: 5},
			wantAllowed: true,
		},
		{
			name:        "folder without placed files stays closed",
			ctx:         GateContext{FolderCount: 1},
			wantAllowed: false,
		},
		{
			name:        "no folders stays closed",
			ctx:         GateContext{PlacedCount: 3},
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := CanProceedOrganize(tt.ctx); result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
		})
	}
}

func TestAllUserFilesPlaced(t *testing.T) {
	if result := AllUserFilesPlaced(GateContext{UnplacedUserOnly: 0, UnplacedNonMain: 4}); !result.Allowed {
		t.Errorf("seeded root files must not close this gate: %s", result.Reason)
	}

	result := AllUserFilesPlaced(GateContext{UnplacedUserOnly: 2})
	if result.Allowed {
		t.Fatal("gate open with user files still in root")
	}
	want := "2 of your files are still in the project root - move them into folders"
	if result.Reason != want {
		t.Errorf("Reason = %q, want %q", result.Reason, want)
	}
}

func TestCanFinishOrganize(t *testing.T) {
	tests := []struct {
		name        string
		ctx         GateContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "everything placed, main in root",
			ctx:         GateContext{FolderCount: 2, MainInRoot: true},
			wantAllowed: true,
		},
		{
			name:        "no folders",
			ctx:         GateContext{MainInRoot: true},
			wantAllowed: false,
			wantReason:  "create at least one folder to organize the project",
		},
		{
			name:        "main displaced",
			ctx:         GateContext{FolderCount: 1},
			wantAllowed: false,
			wantReason:  "main.py must stay in the project root",
		},
		{
			name:        "stragglers in root",
			ctx:         GateContext{FolderCount: 1, MainInRoot: true, UnplacedNonMain: 3},
			wantAllowed: false,
			wantReason:  "3 file(s) are still in the project root - only main.py belongs there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanFinishOrganize(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}
