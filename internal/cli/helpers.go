package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/scriptsplit/internal/models"
	"github.com/example/scriptsplit/internal/wire"
)

// resolveFile finds a file by ID or by name. Name matching is
// case-insensitive so `scriptsplit file show Loading.py` works.
func resolveFile(ctx context.Context, ref string) (*models.File, error) {
	for _, f := range wire.OrganizationService().ListFiles(ctx) {
		if f.ID == ref || strings.EqualFold(f.Name, ref) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("no file matching %q", ref)
}

// resolveFolder finds a folder by ID or by name.
func resolveFolder(ctx context.Context, ref string) (*models.Folder, error) {
	for _, fo := range wire.OrganizationService().ListFolders(ctx) {
		if fo.ID == ref || strings.EqualFold(fo.Name, ref) {
			return fo, nil
		}
	}
	return nil, fmt.Errorf("no folder matching %q", ref)
}
