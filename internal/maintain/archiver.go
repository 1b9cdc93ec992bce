package maintain

import (
	"os"
	"path/filepath"
	"time"

	"cloudtidy/internal/maintain/interfaces"
	"cloudtidy/internal/providers"
	"cloudtidy/internal/structures"
)

// Archiver compacts aged backup artifacts: each backup_*.json older than
// maxAge is compressed to <name>.zst and the original removed. Artifacts
// stay append-only; compaction only changes their encoding.
type Archiver struct {
	dir        string
	maxAge     time.Duration
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewArchiver(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *Archiver {
	return &Archiver{
		dir:        conf.Backup.Dir,
		maxAge:     conf.Backup.ArchiveAfter,
		compressor: compressor,
		logger:     logger,
	}
}

// Close releases the compressor held for sweeps.
func (a *Archiver) Close() {
	a.compressor.Close()
}

// Sweep compacts eligible artifacts and returns how many it archived.
// Failures are logged per file and never abort the sweep.
func (a *Archiver) Sweep(now time.Time) int {
	if a.maxAge <= 0 {
		return 0
	}

	matches, err := filepath.Glob(filepath.Join(a.dir, "backup_*.json"))
	if err != nil {
		a.logger.Errorf(providers.TypeApp, "Backup sweep failed: %s", err)
		return 0
	}

	cutoff := now.Add(-a.maxAge)
	archived := 0

	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			a.logger.Errorf(providers.TypeApp, "Error reading backup %s: %s", path, err)
			continue
		}

		compressed, err := a.compressor.Compress(data)
		if err != nil {
			a.logger.Errorf(providers.TypeApp, "Error compressing backup %s: %s", path, err)
			continue
		}

		if err := os.WriteFile(path+".zst", compressed, info.Mode()); err != nil {
			a.logger.Errorf(providers.TypeApp, "Error writing archive for %s: %s", path, err)
			continue
		}

		if err := os.Remove(path); err != nil {
			a.logger.Errorf(providers.TypeApp, "Error removing archived backup %s: %s", path, err)
			continue
		}

		a.logger.Infof(providers.TypeApp, "Archived backup: %s", path)
		archived++
	}

	return archived
}
