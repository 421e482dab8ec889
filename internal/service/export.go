package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"promptstudio/internal/domain"
	"promptstudio/internal/prompt"
)

// ExportFileName is the file WriteExport creates.
const ExportFileName = "prompt-engineering-project.json"

// ProjectExport is the downloadable project document.
type ProjectExport struct {
	Blocks          []domain.Block `json:"blocks"`
	AssembledPrompt string         `json:"assembledPrompt"`
	Timestamp       string         `json:"timestamp"`
}

// Export captures the canvas and its assembled prompt.
func (s *EditorService) Export() ProjectExport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProjectExport{
		Blocks:          domain.CloneBlocks(s.blocks),
		AssembledPrompt: prompt.Assemble(s.blocks, s.testInput, false),
		Timestamp:       isoTimestamp(s.now()),
	}
}

// MarshalExport encodes e the way it is written to disk.
func MarshalExport(e ProjectExport) ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// WriteExport writes the export document into dir and returns its path.
func (s *EditorService) WriteExport(dir string) (string, error) {
	data, err := MarshalExport(s.Export())
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, ExportFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	s.logger.Info("project exported", zap.String("path", path))
	return path, nil
}
