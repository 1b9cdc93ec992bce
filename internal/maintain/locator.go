package maintain

import (
	"errors"
	"sort"
	"strings"

	"cloudtidy/internal/models"
)

// ErrFolderNotFound means both lookup passes were exhausted.
var ErrFolderNotFound = errors.New("folder not found")

// ConfirmFolderFunc asks whether a substring candidate is the folder the
// user meant.
type ConfirmFolderFunc func(folder models.Node) bool

// Locate resolves a user-supplied name to a folder node. Pass 1 takes the
// first exact name match; pass 2 offers substring matches one by one to
// confirm. Candidates are ordered by (name, id) in both passes, so the
// outcome does not depend on listing iteration order.
func Locate(listing map[string]models.Node, query string, confirm ConfirmFolderFunc) (models.Node, error) {
	folders := make([]models.Node, 0, len(listing))
	for _, node := range listing {
		if node.Type == models.NodeTypeFolder {
			folders = append(folders, node)
		}
	}
	sort.Slice(folders, func(i, j int) bool {
		if folders[i].Name != folders[j].Name {
			return folders[i].Name < folders[j].Name
		}
		return folders[i].ID < folders[j].ID
	})

	for _, folder := range folders {
		if folder.Name == query {
			return folder, nil
		}
	}

	for _, folder := range folders {
		if folder.Name != "" && strings.Contains(folder.Name, query) {
			if confirm(folder) {
				return folder, nil
			}
		}
	}

	return models.Node{}, ErrFolderNotFound
}
