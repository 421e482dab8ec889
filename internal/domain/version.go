package domain

// SavedVersion is a named snapshot of the block list, independent of undo/redo.
type SavedVersion struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Blocks    []Block `json:"blocks"`
	Timestamp string  `json:"timestamp"`
}

type VersionStore interface {
	SaveVersion(v *SavedVersion) error
	GetVersion(id string) (*SavedVersion, error)
	ListVersions() ([]SavedVersion, error)
}
