package app

import (
	"context"
	"encoding/json"

	"github.com/example/scriptsplit/internal/models"
	"github.com/example/scriptsplit/internal/ports/secondary"
)

// Snapshot shapes mirror what the original kept in its browser-local
// slot: the file list with assigned-unit lists, plus the folder list
// and script state that keep a CLI session continuous. Opaque JSON, no
// version field.
type fileSnapshot struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Description  string   `json:"description,omitempty"`
	Color        string   `json:"color,omitempty"`
	Functions    []string `json:"functions"`
	Imports      []string `json:"imports,omitempty"`
	CodeBlocks   []string `json:"codeBlocks,omitempty"`
	Folder       string   `json:"folder,omitempty"`
	Seeded       bool     `json:"seeded,omitempty"`
	NonDraggable bool     `json:"nonDraggable,omitempty"`
}

type folderSnapshot struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
}

type scriptSnapshot struct {
	CustomImports []string `json:"customImports"`
	MainText      string   `json:"mainText"`
}

// persist writes the current state into the session slots after every
// successful mutation. A nil repository disables persistence.
func (s *OrganizationServiceImpl) persist(ctx context.Context) error {
	if s.sessions == nil {
		return nil
	}
	return s.SaveSession(ctx)
}

// SaveSession serializes the file list, folders, and script state into
// their session slots.
func (s *OrganizationServiceImpl) SaveSession(ctx context.Context) error {
	if s.sessions == nil {
		return nil
	}

	files := make([]fileSnapshot, 0, len(s.store.Files()))
	for _, f := range s.store.Files() {
		files = append(files, fileSnapshot{
			ID:           f.ID,
			Name:         f.Name,
			Type:         string(f.Type),
			Description:  f.Description,
			Color:        f.Color,
			Functions:    f.AssignedFunctions,
			Imports:      f.AssignedImports,
			CodeBlocks:   f.AssignedCodeBlocks,
			Folder:       f.Folder,
			Seeded:       f.Seeded,
			NonDraggable: f.NonDraggable,
		})
	}
	payload, err := json.Marshal(files)
	if err != nil {
		return err
	}
	if err := s.sessions.Save(ctx, secondary.RefactoredFilesSlot, string(payload)); err != nil {
		return err
	}

	folders := make([]folderSnapshot, 0, len(s.store.Folders()))
	for _, f := range s.store.Folders() {
		folders = append(folders, folderSnapshot{ID: f.ID, Name: f.Name, Parent: f.Parent})
	}
	payload, err = json.Marshal(folders)
	if err != nil {
		return err
	}
	if err := s.sessions.Save(ctx, secondary.FoldersSlot, string(payload)); err != nil {
		return err
	}

	payload, err = json.Marshal(scriptSnapshot{
		CustomImports: s.store.CustomImports(),
		MainText:      s.mainText,
	})
	if err != nil {
		return err
	}
	return s.sessions.Save(ctx, secondary.ScriptSlot, string(payload))
}

// LoadSession restores a prior snapshot. A missing or unreadable slot
// is a first run: the seeded defaults stay in place and no error is
// returned.
func (s *OrganizationServiceImpl) LoadSession(ctx context.Context) error {
	if s.sessions == nil {
		return nil
	}

	payload, ok, err := s.sessions.Load(ctx, secondary.RefactoredFilesSlot)
	if err != nil {
		return err
	}
	if ok {
		var files []fileSnapshot
		if err := json.Unmarshal([]byte(payload), &files); err == nil && len(files) > 0 {
			s.store.files = nil
			for _, snap := range files {
				s.store.files = append(s.store.files, &models.File{
					ID:                 snap.ID,
					Name:               snap.Name,
					Type:               models.FileType(snap.Type),
					Description:        snap.Description,
					Color:              snap.Color,
					AssignedFunctions:  snap.Functions,
					AssignedImports:    snap.Imports,
					AssignedCodeBlocks: snap.CodeBlocks,
					Folder:             snap.Folder,
					Seeded:             snap.Seeded,
					NonDraggable:       snap.NonDraggable,
				})
			}
			if s.store.Main() == nil {
				s.store.files = append(s.store.files, &models.File{
					ID:           models.MainFileID,
					Name:         "main.py",
					Type:         models.FileTypePython,
					Seeded:       true,
					NonDraggable: true,
				})
			}
			for _, f := range s.store.files {
				s.store.refreshContent(f)
			}
		}
	}

	payload, ok, err = s.sessions.Load(ctx, secondary.FoldersSlot)
	if err != nil {
		return err
	}
	if ok {
		var folders []folderSnapshot
		if err := json.Unmarshal([]byte(payload), &folders); err == nil {
			s.store.folders = nil
			for _, snap := range folders {
				s.store.folders = append(s.store.folders, &models.Folder{
					ID: snap.ID, Name: snap.Name, Parent: snap.Parent,
				})
			}
		}
	}

	payload, ok, err = s.sessions.Load(ctx, secondary.ScriptSlot)
	if err != nil {
		return err
	}
	if ok {
		var snap scriptSnapshot
		if err := json.Unmarshal([]byte(payload), &snap); err == nil {
			s.store.customImports = snap.CustomImports
			s.mainText = snap.MainText
		}
	}

	s.rederive()
	return nil
}
