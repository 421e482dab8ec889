package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"promptstudio/internal/domain"
)

// VersionStore implements domain.VersionStore using SQLite.
type VersionStore struct {
	db *DB
}

func NewVersionStore(db *DB) *VersionStore {
	return &VersionStore{db: db}
}

func (s *VersionStore) SaveVersion(v *domain.SavedVersion) error {
	data, err := json.Marshal(domain.CloneBlocks(v.Blocks))
	if err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}
	_, err = s.db.Conn().Exec(
		`INSERT INTO saved_versions (id, name, blocks_json, saved_at, block_count) VALUES (?, ?, ?, ?, ?)`,
		v.ID, v.Name, string(data), v.Timestamp, len(v.Blocks),
	)
	if err != nil {
		return fmt.Errorf("save version: %w", err)
	}
	return nil
}

func (s *VersionStore) GetVersion(id string) (*domain.SavedVersion, error) {
	var (
		v    domain.SavedVersion
		data string
	)
	err := s.db.Conn().QueryRow(
		`SELECT id, name, blocks_json, saved_at FROM saved_versions WHERE id = ?`, id,
	).Scan(&v.ID, &v.Name, &data, &v.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get version %s: %w", id, domain.ErrVersionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &v.Blocks); err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}
	return &v, nil
}

// ListVersions returns every saved version in save order.
func (s *VersionStore) ListVersions() ([]domain.SavedVersion, error) {
	rows, err := s.db.Conn().Query(
		`SELECT id, name, blocks_json, saved_at FROM saved_versions ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := []domain.SavedVersion{}
	for rows.Next() {
		var (
			v    domain.SavedVersion
			data string
		)
		if err := rows.Scan(&v.ID, &v.Name, &data, &v.Timestamp); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(data), &v.Blocks); err != nil {
			return nil, fmt.Errorf("decode blocks of %s: %w", v.ID, err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}
