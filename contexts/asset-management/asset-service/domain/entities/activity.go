package entities

import "time"

type ActionKind string

const (
	ActionCreate   ActionKind = "Create"
	ActionUpdate   ActionKind = "Update"
	ActionAssign   ActionKind = "Assign"
	ActionUnassign ActionKind = "Unassign"
	ActionReassign ActionKind = "Reassign"
	ActionDelete   ActionKind = "Delete"
)

// ActivityLog is an append-only audit record. Entries are never updated or
// deleted; an asset's history is the descending-timestamp sequence of them.
type ActivityLog struct {
	LogID     string
	AssetID   string
	UserID    string
	UserName  string
	Action    ActionKind
	Timestamp time.Time
	Notes     string
}
