package ports

import (
	"context"
	"strings"
	"time"

	"assetledger/contexts/asset-management/asset-service/domain/entities"
)

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// ParseRole mirrors the request-layer contract: an empty or unknown role
// header degrades to the least-privileged role.
func ParseRole(raw string) Role {
	if strings.EqualFold(strings.TrimSpace(raw), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// Caller is the resolved identity supplied by the request layer. The core
// never authenticates; it only scopes.
type Caller struct {
	UserID string
	Role   Role
}

type CreateAssetInput struct {
	Name           string
	Type           string
	Status         string
	PurchaseDate   time.Time
	WarrantyExpiry time.Time
	Remarks        string
}

type UpdateAssetInput struct {
	Name           string
	Type           string
	Status         string
	AssigneeID     *string
	PurchaseDate   time.Time
	WarrantyExpiry time.Time
	Remarks        string
}

// AssetFilter narrows repository listings. AssigneeID is how AccessScope
// reaches the storage layer: a non-empty value restricts rows to one assignee.
type AssetFilter struct {
	Deleted    bool
	AssigneeID string
}

// AssetDetails is the single-asset read model: the current row plus its
// full audit trail, newest entry first.
type AssetDetails struct {
	Asset entities.Asset
	Logs  []entities.ActivityLog
}

type Dashboard struct {
	TotalAssets     int
	AssignedCount   int
	UnassignedCount int
	RepairCount     int
	ByStatus        map[entities.AssetStatus]int
	ByType          map[string]int
}

// Repository is durable asset + activity-log storage. The WithLog methods are
// the atomicity contract: entity write and log append commit as one unit or
// not at all.
type Repository interface {
	GetAsset(ctx context.Context, assetID string) (entities.Asset, error)
	ListAssets(ctx context.Context, filter AssetFilter) ([]entities.Asset, error)
	CreateAssetWithLog(ctx context.Context, asset entities.Asset, log entities.ActivityLog) error
	UpdateAssetWithLog(ctx context.Context, asset entities.Asset, expectedVersion int64, log entities.ActivityLog) error
	ListLogs(ctx context.Context, assetID string) ([]entities.ActivityLog, error)
}

// DirectoryReader resolves user display names for log notes and read models.
// Implemented by the user-directory context.
type DirectoryReader interface {
	DisplayName(ctx context.Context, userID string) (string, error)
	DisplayNames(ctx context.Context, userIDs []string) (map[string]string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
