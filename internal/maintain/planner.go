package maintain

import (
	"fmt"
	"sort"

	"cloudtidy/internal/models"
)

const defaultIndexPadding = 3

// BuildPlan splits files into a deletion list and a rename plan. Files
// matching the target extension are deleted, never renamed. The rest are
// stable-sorted by original name and assigned
// "<customName>_<index><ext>" with a dense 1-based zero-padded index;
// the original extension is kept verbatim, including case.
func BuildPlan(files []models.FileRecord, targetExt, customName string, pad int) models.Plan {
	if pad <= 0 {
		pad = defaultIndexPadding
	}

	plan := models.Plan{
		Deletions: []models.FileRecord{},
		Renames:   []models.RenamePlanEntry{},
	}

	keep := make([]models.FileRecord, 0, len(files))
	for _, f := range files {
		if MatchesExtension(f.Name, targetExt) {
			plan.Deletions = append(plan.Deletions, f)
		} else {
			keep = append(keep, f)
		}
	}

	sort.SliceStable(keep, func(i, j int) bool {
		return keep[i].Name < keep[j].Name
	})

	for i, f := range keep {
		plan.Renames = append(plan.Renames, models.RenamePlanEntry{
			FileID:       f.ID,
			OriginalName: f.Name,
			NewName:      fmt.Sprintf("%s_%0*d%s", customName, pad, i+1, f.Ext()),
		})
	}

	return plan
}
