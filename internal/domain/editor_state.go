package domain

// EditorState is the read-only view of the editor handed to transports for rendering.
type EditorState struct {
	Blocks        []Block `json:"blocks"`
	TestInput     string  `json:"testInput"`
	HistoryIndex  int     `json:"historyIndex"`
	HistoryLength int     `json:"historyLength"`
	CanUndo       bool    `json:"canUndo"`
	CanRedo       bool    `json:"canRedo"`
}
