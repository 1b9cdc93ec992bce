package models

import (
	"sort"
	"time"
)

// InventoryStats summarizes one folder scan.
type InventoryStats struct {
	TotalFiles  int            `json:"total_files"`
	TargetFiles int            `json:"target_files"`
	OtherFiles  int            `json:"other_files"`
	FileTypes   map[string]int `json:"file_types"`
}

// HistogramRow is one extension bucket prepared for display.
type HistogramRow struct {
	Ext   string
	Count int
}

// SortedTypes returns the extension histogram ordered by descending count,
// ties broken by extension. Files without an extension are bucketed under
// "(no extension)".
func (s InventoryStats) SortedTypes() []HistogramRow {
	rows := make([]HistogramRow, 0, len(s.FileTypes))
	for ext, count := range s.FileTypes {
		if ext == "" {
			ext = "(no extension)"
		}
		rows = append(rows, HistogramRow{Ext: ext, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Ext < rows[j].Ext
	})
	return rows
}

// RenamePlanEntry maps one file to its planned new name.
type RenamePlanEntry struct {
	FileID       string `json:"file_id"`
	OriginalName string `json:"original_name"`
	NewName      string `json:"new_name"`
}

// Plan is the full mutation plan for one run. Deletions and Renames are
// disjoint: a file matching the target extension is never renamed.
type Plan struct {
	Deletions []FileRecord
	Renames   []RenamePlanEntry
}

// BackupArtifact is the persisted record of one live rename pass.
type BackupArtifact struct {
	Timestamp  time.Time         `json:"timestamp"`
	CustomName string            `json:"custom_name"`
	Files      []RenamePlanEntry `json:"files"`
}
