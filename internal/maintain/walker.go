// Package maintain holds the run's core logic: tree traversal, folder
// lookup, inventory analysis, mutation planning/execution and backups.
package maintain

import (
	"errors"
	"fmt"
	"sort"

	"cloudtidy/internal/models"
)

// ErrMalformedTree means the listing's parent links contain a cycle. The
// listing is untrusted external data, so this is an error, not a panic.
var ErrMalformedTree = errors.New("malformed node tree")

// unknownName stands in for nodes the backend lists without a name.
const unknownName = "unknown"

// CollectFiles gathers every file node whose parent chain reaches rootID,
// descending through folders. Children are visited in sorted-id order so
// traversal is deterministic regardless of map iteration order.
func CollectFiles(listing map[string]models.Node, rootID string) ([]models.FileRecord, error) {
	children := make(map[string][]string, len(listing))
	for id, node := range listing {
		children[node.ParentID] = append(children[node.ParentID], id)
	}
	for _, ids := range children {
		sort.Strings(ids)
	}

	visited := make(map[string]struct{}, len(listing))
	files := []models.FileRecord{}

	var walk func(parentID string) error
	walk = func(parentID string) error {
		for _, id := range children[parentID] {
			if _, seen := visited[id]; seen {
				return fmt.Errorf("%w: node %s reached twice", ErrMalformedTree, id)
			}
			visited[id] = struct{}{}

			node := listing[id]
			switch node.Type {
			case models.NodeTypeFile:
				name := node.Name
				if name == "" {
					name = unknownName
				}
				files = append(files, models.FileRecord{ID: id, Name: name})
			case models.NodeTypeFolder:
				if err := walk(id); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := walk(rootID); err != nil {
		return nil, err
	}
	return files, nil
}
