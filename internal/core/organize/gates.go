package organize

// GateContext provides the counts the stage-advancement predicates need.
// Callers populate it from the current store state.
type GateContext struct {
	FileCount        int // all files including main
	FolderCount      int
	PlacedCount      int // files with a folder assigned
	UnplacedNonMain  int // non-main files still in root
	UnplacedUserOnly int // learner-created files still in root
	MainInRoot       bool
}

// CanFinishRefactor reports whether the refactor stage is complete:
// the script has been split into at least two files.
func CanFinishRefactor(ctx GateContext) GuardResult {
	if ctx.FileCount < 2 {
		return deny("split the script into at least two files to continue")
	}
	return allow()
}

// CanProceedOrganize is the loose organize gate: some organization has
// happened (a folder exists and at least one file was placed).
func CanProceedOrganize(ctx GateContext) GuardResult {
	if ctx.FolderCount == 0 || ctx.PlacedCount == 0 {
		return deny("create at least one folder and move a file into it to proceed")
	}
	return allow()
}

// AllUserFilesPlaced is the stricter intermediate gate: every file the
// learner created must be inside a folder.
func AllUserFilesPlaced(ctx GateContext) GuardResult {
	if ctx.UnplacedUserOnly > 0 {
		return deny("%d of your files are still in the project root - move them into folders", ctx.UnplacedUserOnly)
	}
	return allow()
}

// CanFinishOrganize is the final organize gate: every non-main file is
// placed, main itself stays in the root, and at least one folder exists.
func CanFinishOrganize(ctx GateContext) GuardResult {
	if ctx.FolderCount == 0 {
		return deny("create at least one folder to organize the project")
	}
	if !ctx.MainInRoot {
		return deny("main.py must stay in the project root")
	}
	if ctx.UnplacedNonMain > 0 {
		return deny("%d file(s) are still in the project root - only main.py belongs there", ctx.UnplacedNonMain)
	}
	return allow()
}
