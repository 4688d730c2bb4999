package models

// Folder is a named container for files. Parent supports multi-level
// chains for the resolver's sake, but folder creation only ever produces
// root-level folders, so the chain is single-level in practice.
type Folder struct {
	ID     string
	Name   string
	Parent string // parent folder id, empty string means root level
}
