package models

// FileLocation is the resolved filesystem-like position of a file. It is
// derived from the folder graph on every change and never stored.
type FileLocation struct {
	FileID string
	// Path is the folder path wrapped in slashes, "/" for root,
	// "/data/" for a file inside the "data" folder.
	Path string
	// FullLocation is the display path including the filename,
	// e.g. "./main.py" or "./data/volume.nd2".
	FullLocation string
	IsInRoot     bool
}
