package models

import "path/filepath"

type NodeType string

const (
	NodeTypeFile   NodeType = "file"
	NodeTypeFolder NodeType = "folder"
)

// Node is a single remote entry as returned by the backend listing.
// The backend owns the data; the tool only holds per-run snapshots.
type Node struct {
	ID       string   `json:"id"`
	ParentID string   `json:"parent_id"`
	Type     NodeType `json:"type"`
	Name     string   `json:"name,omitempty"`
}

// FileRecord is the immutable per-run view of a file node.
type FileRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ext returns the file extension including the leading dot, verbatim.
func (f FileRecord) Ext() string {
	return filepath.Ext(f.Name)
}
