package entities

import (
	"strings"
	"time"
)

type AssetStatus string

const (
	StatusInUse         AssetStatus = "InUse"
	StatusAvailable     AssetStatus = "Available"
	StatusRepair        AssetStatus = "Repair"
	StatusDamaged       AssetStatus = "Damaged"
	StatusReserved      AssetStatus = "Reserved"
	StatusRetired       AssetStatus = "Retired"
	StatusDisposed      AssetStatus = "Disposed"
	StatusLost          AssetStatus = "Lost"
	StatusStolen        AssetStatus = "Stolen"
	StatusWarrantyClaim AssetStatus = "WarrantyClaim"
)

var knownStatuses = map[AssetStatus]struct{}{
	StatusInUse:         {},
	StatusAvailable:     {},
	StatusRepair:        {},
	StatusDamaged:       {},
	StatusReserved:      {},
	StatusRetired:       {},
	StatusDisposed:      {},
	StatusLost:          {},
	StatusStolen:        {},
	StatusWarrantyClaim: {},
}

func ParseStatus(raw string) (AssetStatus, bool) {
	status := AssetStatus(strings.TrimSpace(raw))
	_, ok := knownStatuses[status]
	return status, ok
}

// Asset is the tracked hardware record. Version guards concurrent writers:
// every committed mutation increments it, stale writers are rejected.
type Asset struct {
	AssetID        string
	Name           string
	Type           string
	Status         AssetStatus
	AssigneeID     *string
	AssigneeName   string
	PurchaseDate   time.Time
	WarrantyExpiry time.Time
	Remarks        string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	Deleted        bool
	DeletedAt      *time.Time
	Version        int64
}

func (a Asset) Assigned() bool {
	return a.AssigneeID != nil && strings.TrimSpace(*a.AssigneeID) != ""
}

func (a Asset) AssigneeOrEmpty() string {
	if a.AssigneeID == nil {
		return ""
	}
	return *a.AssigneeID
}
