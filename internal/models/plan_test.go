package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedTypes_DescendingCount(t *testing.T) {
	stats := InventoryStats{
		FileTypes: map[string]int{
			".txt": 3,
			".pdf": 5,
			".jpg": 1,
		},
	}

	rows := stats.SortedTypes()
	assert.Equal(t, []HistogramRow{
		{Ext: ".pdf", Count: 5},
		{Ext: ".txt", Count: 3},
		{Ext: ".jpg", Count: 1},
	}, rows)
}

func TestSortedTypes_TieBrokenByExtension(t *testing.T) {
	stats := InventoryStats{
		FileTypes: map[string]int{
			".b": 2,
			".a": 2,
		},
	}

	rows := stats.SortedTypes()
	assert.Equal(t, ".a", rows[0].Ext)
	assert.Equal(t, ".b", rows[1].Ext)
}

func TestSortedTypes_NoExtensionBucket(t *testing.T) {
	stats := InventoryStats{
		FileTypes: map[string]int{"": 4},
	}

	rows := stats.SortedTypes()
	assert.Equal(t, "(no extension)", rows[0].Ext)
	assert.Equal(t, 4, rows[0].Count)
}

func TestFileRecord_Ext(t *testing.T) {
	assert.Equal(t, ".PDF", FileRecord{Name: "scan.PDF"}.Ext())
	assert.Equal(t, "", FileRecord{Name: "README"}.Ext())
	assert.Equal(t, ".gz", FileRecord{Name: "dump.tar.gz"}.Ext())
}
