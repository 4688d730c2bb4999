// Package secondary defines the secondary ports: the interfaces through
// which the engine drives external systems. The only one here is the
// session store, the stand-in for the original's browser-local slot.
package secondary

import "context"

// Session slot names. RefactoredFilesSlot carries the file list across
// the stage boundary; the others keep a CLI session usable between
// invocations. Payloads are opaque JSON with no versioning guarantees.
const (
	RefactoredFilesSlot = "refactoredFiles"
	FoldersSlot         = "folders"
	ScriptSlot          = "script"
)

// SessionRepository persists named opaque payloads for the session.
type SessionRepository interface {
	// Save stores a payload under a slot, replacing any prior value.
	Save(ctx context.Context, slot, payload string) error

	// Load retrieves a slot's payload. A missing slot returns
	// ok=false with no error - first runs fall back to defaults.
	Load(ctx context.Context, slot string) (payload string, ok bool, err error)

	// Clear removes every slot (full-session reset).
	Clear(ctx context.Context) error
}
