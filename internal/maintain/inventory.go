package maintain

import (
	"strings"

	"cloudtidy/internal/models"
)

// MatchesExtension reports whether a file name ends with the target
// extension, case-insensitively.
func MatchesExtension(name, targetExt string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(targetExt))
}

// Analyze classifies files by extension against the deletion target.
// Pure function; running it twice on the same input yields the same stats.
func Analyze(files []models.FileRecord, targetExt string) models.InventoryStats {
	stats := models.InventoryStats{
		TotalFiles: len(files),
		FileTypes:  make(map[string]int),
	}

	for _, f := range files {
		ext := strings.ToLower(f.Ext())
		stats.FileTypes[ext]++

		if MatchesExtension(f.Name, targetExt) {
			stats.TargetFiles++
		} else {
			stats.OtherFiles++
		}
	}

	return stats
}
