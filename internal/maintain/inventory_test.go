package maintain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cloudtidy/internal/models"
)

func TestAnalyze_Counts(t *testing.T) {
	files := []models.FileRecord{
		{ID: "1", Name: "b.txt"},
		{ID: "2", Name: "a.txt"},
		{ID: "3", Name: "x.pdf"},
	}

	stats := Analyze(files, ".pdf")
	assert.Equal(t, 3, stats.TotalFiles)
	assert.Equal(t, 1, stats.TargetFiles)
	assert.Equal(t, 2, stats.OtherFiles)
	assert.Equal(t, map[string]int{".txt": 2, ".pdf": 1}, stats.FileTypes)
}

func TestAnalyze_CaseInsensitiveTarget(t *testing.T) {
	files := []models.FileRecord{
		{ID: "1", Name: "scan.PDF"},
		{ID: "2", Name: "scan.pdf"},
	}

	stats := Analyze(files, ".pdf")
	assert.Equal(t, 2, stats.TargetFiles)
	// Histogram buckets by lowercased extension
	assert.Equal(t, map[string]int{".pdf": 2}, stats.FileTypes)
}

func TestAnalyze_NoExtension(t *testing.T) {
	files := []models.FileRecord{
		{ID: "1", Name: "README"},
	}

	stats := Analyze(files, ".pdf")
	assert.Equal(t, 0, stats.TargetFiles)
	assert.Equal(t, map[string]int{"": 1}, stats.FileTypes)
}

func TestAnalyze_Empty(t *testing.T) {
	stats := Analyze(nil, ".pdf")
	assert.Equal(t, 0, stats.TotalFiles)
	assert.Empty(t, stats.FileTypes)
}

func TestAnalyze_Idempotent(t *testing.T) {
	files := []models.FileRecord{
		{ID: "1", Name: "a.txt"},
		{ID: "2", Name: "b.pdf"},
		{ID: "3", Name: "c"},
	}

	first := Analyze(files, ".pdf")
	second := Analyze(files, ".pdf")
	assert.Equal(t, first, second)
}

func TestMatchesExtension(t *testing.T) {
	assert.True(t, MatchesExtension("a.pdf", ".pdf"))
	assert.True(t, MatchesExtension("a.PDF", ".pdf"))
	assert.True(t, MatchesExtension("a.pdf", ".PDF"))
	assert.False(t, MatchesExtension("a.pdfx", ".pdf"))
	assert.False(t, MatchesExtension("apdf", ".pdf"))
}
