package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/scriptsplit/internal/core/generate"
	"github.com/example/scriptsplit/internal/core/location"
	"github.com/example/scriptsplit/internal/core/organize"
	"github.com/example/scriptsplit/internal/core/validate"
	"github.com/example/scriptsplit/internal/models"
	"github.com/example/scriptsplit/internal/ports/primary"
	"github.com/example/scriptsplit/internal/ports/secondary"
)

// OrganizationServiceImpl implements primary.OrganizationService. Every
// mutation runs its guard first, applies to the store only when
// allowed, then re-derives locations, main text, and validation in one
// explicit pipeline pass - there is no hidden effect ordering.
type OrganizationServiceImpl struct {
	store    *Store
	sessions secondary.SessionRepository

	mainText      string
	derived       *primary.Derived
	resultsFolder string

	sched   *revalidator
	deliver func(*models.ValidationResult)
}

// NewOrganizationService creates the service around a seeded store.
// sessions may be nil when no persistence boundary is wanted (tests).
func NewOrganizationService(store *Store, sessions secondary.SessionRepository, debounce time.Duration) *OrganizationServiceImpl {
	if debounce <= 0 {
		debounce = 400 * time.Millisecond
	}
	s := &OrganizationServiceImpl{
		store:    store,
		sessions: sessions,
		sched:    newRevalidator(debounce),
	}
	s.rederive()
	return s
}

var _ primary.OrganizationService = (*OrganizationServiceImpl)(nil)

// rederive is the single pipeline invoked after every store mutation:
// regenerate the main text (carrying slot edits over from the previous
// text), resolve locations, and validate.
func (s *OrganizationServiceImpl) rederive() {
	s.mainText = generate.Generate(s.store.Model(), generate.Input{
		AssignedUnits: s.store.AssignedUnits(),
		CustomImports: s.store.CustomImports(),
		Previous:      s.mainText,
	})

	locations := location.Resolve(s.store.Files(), s.store.Folders())
	validation := validate.Run(validate.Input{
		Files:         s.store.Files(),
		Folders:       s.store.Folders(),
		MainText:      s.mainText,
		ResultsFolder: s.resultsFolder,
	})

	s.derived = &primary.Derived{
		Locations:  locations,
		MainText:   s.mainText,
		Validation: validation,
	}
	s.scheduleRevalidation()
}

// scheduleRevalidation queues the debounced pass that feeds whichever
// listener RequestValidation registered. The input is snapshotted here,
// on the caller's goroutine: the timer goroutine validates the copy, so
// a mutation landing during the debounce window cannot race the read.
// Any such mutation schedules a newer request whose snapshot carries it,
// and this one is discarded as stale.
func (s *OrganizationServiceImpl) scheduleRevalidation() {
	deliver := s.deliver
	if deliver == nil {
		return
	}
	input := s.validationInput()
	s.sched.Request(func(stale func() bool) {
		result := validate.Run(input)
		if stale() {
			return
		}
		deliver(result)
	})
}

// validationInput deep-copies the state a validation pass reads. Files
// are cloned including their assigned-unit lists; the store hands out
// live pointers that later mutations write through.
func (s *OrganizationServiceImpl) validationInput() validate.Input {
	files := make([]*models.File, 0, len(s.store.Files()))
	for _, f := range s.store.Files() {
		clone := *f
		clone.AssignedFunctions = append([]string(nil), f.AssignedFunctions...)
		clone.AssignedImports = append([]string(nil), f.AssignedImports...)
		clone.AssignedCodeBlocks = append([]string(nil), f.AssignedCodeBlocks...)
		files = append(files, &clone)
	}
	folders := make([]*models.Folder, 0, len(s.store.Folders()))
	for _, f := range s.store.Folders() {
		clone := *f
		folders = append(folders, &clone)
	}
	return validate.Input{
		Files:         files,
		Folders:       folders,
		MainText:      s.mainText,
		ResultsFolder: s.resultsFolder,
	}
}

// SetResultsFolder overrides the default expected output folder name.
func (s *OrganizationServiceImpl) SetResultsFolder(name string) {
	s.resultsFolder = name
	s.rederive()
}

// CreateFile creates a new Python file from a base name.
func (s *OrganizationServiceImpl) CreateFile(ctx context.Context, req primary.CreateFileRequest) (*models.File, error) {
	guardCtx := organize.CreateFileContext{
		BaseName:           req.BaseName,
		UserFileCount:      len(s.store.UserFiles()),
		HasImportStatement: s.store.HasImportStatement(),
	}
	if result := organize.CanCreateFile(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	file := s.store.AddFile(organize.FinalFileName(req.BaseName))
	s.rederive()
	return file, s.persist(ctx)
}

// RenameFile renames an existing file.
func (s *OrganizationServiceImpl) RenameFile(ctx context.Context, req primary.RenameFileRequest) error {
	file := s.store.FileByID(req.FileID)
	guardCtx := organize.RenameFileContext{
		FileID:     req.FileID,
		FileExists: file != nil,
		IsMain:     file != nil && file.IsMain(),
		BaseName:   req.BaseName,
	}
	if result := organize.CanRenameFile(guardCtx); !result.Allowed {
		return result.Error()
	}

	file.Name = organize.FinalFileName(req.BaseName)
	s.store.refreshContent(file)
	s.rederive()
	return s.persist(ctx)
}

// DeleteFile removes a file; its functions return to the pool.
func (s *OrganizationServiceImpl) DeleteFile(ctx context.Context, fileID string) error {
	file := s.store.FileByID(fileID)
	guardCtx := organize.DeleteFileContext{
		FileID:     fileID,
		FileExists: file != nil,
		IsMain:     file != nil && file.IsMain(),
		Seeded:     file != nil && file.Seeded,
	}
	if result := organize.CanDeleteFile(guardCtx); !result.Allowed {
		return result.Error()
	}

	s.store.RemoveFile(fileID)
	s.rederive()
	return s.persist(ctx)
}

// AssignUnit places a unit into a target file.
func (s *OrganizationServiceImpl) AssignUnit(ctx context.Context, req primary.AssignRequest) error {
	_, unitExists := s.store.Model().Unit(req.Kind, req.UnitName)
	target := s.store.FileByID(req.TargetID)
	guardCtx := organize.AssignContext{
		UnitName:     req.UnitName,
		UnitExists:   unitExists,
		TargetID:     req.TargetID,
		TargetExists: target != nil,
		TargetIsMain: target != nil && target.IsMain(),
		TargetIsPy:   target != nil && target.Type == models.FileTypePython,
	}
	if result := organize.CanAssignUnit(guardCtx); !result.Allowed {
		return result.Error()
	}

	switch req.Kind {
	case models.UnitFunction:
		s.store.AssignFunction(req.UnitName, req.TargetID)
	case models.UnitImport:
		s.store.AssignImport(req.UnitName, req.TargetID)
	case models.UnitCodeBlock:
		s.store.AssignCodeBlock(req.UnitName, req.TargetID)
	default:
		return fmt.Errorf("unknown unit kind %q", req.Kind)
	}
	s.rederive()
	return s.persist(ctx)
}

// UnassignUnit removes a unit from whichever file holds it.
func (s *OrganizationServiceImpl) UnassignUnit(ctx context.Context, unitName string, kind models.UnitKind) error {
	if _, ok := s.store.Model().Unit(kind, unitName); !ok {
		return fmt.Errorf("unknown unit %q", unitName)
	}
	s.store.Unassign(unitName, kind)
	s.rederive()
	return s.persist(ctx)
}

// CreateFolder creates a root-level folder with a unique name.
func (s *OrganizationServiceImpl) CreateFolder(ctx context.Context, name string) (*models.Folder, error) {
	var existing []string
	for _, f := range s.store.Folders() {
		existing = append(existing, f.Name)
	}
	guardCtx := organize.CreateFolderContext{Name: name, ExistingNames: existing}
	if result := organize.CanCreateFolder(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	folder := s.store.AddFolder(name)
	s.rederive()
	return folder, s.persist(ctx)
}

// DeleteFolder removes a folder after confirmation; contained files
// move back to the root rather than being deleted with it.
func (s *OrganizationServiceImpl) DeleteFolder(ctx context.Context, req primary.DeleteFolderRequest) error {
	folder := s.store.FolderByID(req.FolderID)
	guardCtx := organize.DeleteFolderContext{
		FolderID:     req.FolderID,
		FolderExists: folder != nil,
		FileCount:    len(s.store.FilesInFolder(req.FolderID)),
		Confirmed:    req.Confirmed,
	}
	if result := organize.CanDeleteFolder(guardCtx); !result.Allowed {
		return result.Error()
	}

	s.store.RemoveFolder(req.FolderID)
	s.rederive()
	return s.persist(ctx)
}

// MoveFile places a file into a folder (or the root when folderID is
// empty).
func (s *OrganizationServiceImpl) MoveFile(ctx context.Context, fileID, folderID string) error {
	file := s.store.FileByID(fileID)
	guardCtx := organize.MoveFileContext{
		FileID:       fileID,
		FileExists:   file != nil,
		IsMain:       file != nil && file.IsMain(),
		NonDraggable: file != nil && file.NonDraggable,
		TargetFolder: folderID,
		FolderExists: s.store.FolderByID(folderID) != nil,
	}
	if result := organize.CanMoveFile(guardCtx); !result.Allowed {
		return result.Error()
	}

	file.Folder = folderID
	s.rederive()
	return s.persist(ctx)
}

// ListFiles returns all files, main included.
func (s *OrganizationServiceImpl) ListFiles(ctx context.Context) []*models.File {
	return s.store.Files()
}

// ListFolders returns all folders.
func (s *OrganizationServiceImpl) ListFolders(ctx context.Context) []*models.Folder {
	return s.store.Folders()
}

// FilesInFolder returns the files placed in a folder.
func (s *OrganizationServiceImpl) FilesInFolder(ctx context.Context, folderID string) []*models.File {
	return s.store.FilesInFolder(folderID)
}

// RootFiles returns the files not placed in any folder.
func (s *OrganizationServiceImpl) RootFiles(ctx context.Context) []*models.File {
	return s.store.RootFiles()
}

// UnassignedFunctions returns main's effective function list.
func (s *OrganizationServiceImpl) UnassignedFunctions(ctx context.Context) []string {
	return s.store.UnassignedFunctions()
}

// Units returns the unit catalog of the example script.
func (s *OrganizationServiceImpl) Units(ctx context.Context) []models.ScriptUnit {
	return s.store.Model().Units()
}

// MainText returns the current generated main script text.
func (s *OrganizationServiceImpl) MainText(ctx context.Context) string {
	return s.mainText
}

// SetMainText accepts a hand-edited main text. The edit is not applied
// verbatim: the next regeneration extracts the known slot values from
// it and re-renders, which is exactly how the original round-trips
// textarea edits.
func (s *OrganizationServiceImpl) SetMainText(ctx context.Context, text string) error {
	s.mainText = text
	s.rederive()
	return s.persist(ctx)
}

// EditSlot changes one editable slot value and regenerates.
func (s *OrganizationServiceImpl) EditSlot(ctx context.Context, kind generate.SlotKind, value string) error {
	known := append(generate.HeaderLines(s.store.Model()), s.store.CustomImports()...)
	current, found := generate.Extract(s.mainText, known)
	values := generate.Merge(generate.Defaults(s.store.Model()), current, found)

	values, err := generate.ApplyEdit(values, kind, value)
	if err != nil {
		return err
	}

	s.mainText = generate.Render(values)
	s.rederive()
	return s.persist(ctx)
}

// AddImportLine appends a custom import line to the generated main.
func (s *OrganizationServiceImpl) AddImportLine(ctx context.Context, line string) error {
	if line == "" {
		return fmt.Errorf("import line cannot be empty")
	}
	s.store.AddImportLine(line)
	s.rederive()
	return s.persist(ctx)
}

// Derive recomputes and returns the full derived state. As an explicit
// validate-now action it supersedes any pending debounced pass.
func (s *OrganizationServiceImpl) Derive(ctx context.Context) (*primary.Derived, error) {
	s.rederive()
	s.sched.Cancel()
	return s.derived, nil
}

// RequestValidation registers the listener and schedules a debounced
// validation pass for it.
func (s *OrganizationServiceImpl) RequestValidation(ctx context.Context, deliver func(*models.ValidationResult)) {
	s.deliver = deliver
	s.scheduleRevalidation()
}

// Gates evaluates every stage-advancement predicate.
func (s *OrganizationServiceImpl) Gates(ctx context.Context) *primary.GateReport {
	gateCtx := organize.GateContext{
		FileCount:   len(s.store.Files()),
		FolderCount: len(s.store.Folders()),
		MainInRoot:  s.store.Main().InRoot(),
	}
	for _, f := range s.store.Files() {
		if !f.InRoot() {
			gateCtx.PlacedCount++
			continue
		}
		if f.IsMain() {
			continue
		}
		gateCtx.UnplacedNonMain++
		if !f.Seeded {
			gateCtx.UnplacedUserOnly++
		}
	}

	report := &primary.GateReport{}
	r := organize.CanFinishRefactor(gateCtx)
	report.CanFinishRefactor, report.RefactorReason = r.Allowed, r.Reason
	r = organize.CanProceedOrganize(gateCtx)
	report.CanProceedOrganize, report.ProceedReason = r.Allowed, r.Reason
	r = organize.AllUserFilesPlaced(gateCtx)
	report.AllUserFilesPlaced, report.PlacedReason = r.Allowed, r.Reason
	r = organize.CanFinishOrganize(gateCtx)
	report.CanFinishOrganize, report.OrganizeReason = r.Allowed, r.Reason
	return report
}
