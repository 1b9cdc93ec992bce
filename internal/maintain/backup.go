package maintain

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"cloudtidy/internal/models"
	"cloudtidy/internal/providers"
	"cloudtidy/internal/structures"
)

const backupNameLayout = "20060102_150405"

// BackupWriter persists the rename mapping of one live pass. Each artifact
// gets a timestamped name and is never overwritten or read back.
type BackupWriter struct {
	dir    string
	logger providers.Logger
}

func NewBackupWriter(conf *structures.Config, logger providers.Logger) *BackupWriter {
	return &BackupWriter{
		dir:    conf.Backup.Dir,
		logger: logger,
	}
}

func (w *BackupWriter) Write(artifact models.BackupArtifact) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	data, err := json.MarshalIndent(artifact, "", "    ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, fmt.Sprintf("backup_%s.json", artifact.Timestamp.Format(backupNameLayout)))

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return "", err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return "", err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return "", err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return "", err
	}

	if err = os.Rename(tmpFile, path); err != nil {
		return "", err
	}

	w.logger.Infof(providers.TypeApp, "Backup saved to: %s", path)
	return path, nil
}
