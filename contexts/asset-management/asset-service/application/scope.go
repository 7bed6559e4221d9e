package application

import (
	"assetledger/contexts/asset-management/asset-service/domain/entities"
	"assetledger/contexts/asset-management/asset-service/ports"
)

// AccessScope is the single place that encodes what a caller may see or
// touch. Every read and write path goes through it; no query derives its own
// role filter.
type AccessScope struct{}

// CanManage gates create/update/dispose, the disposed-asset listing and all
// user management.
func (AccessScope) CanManage(role ports.Role) bool {
	return role == ports.RoleAdmin
}

// VisibleFilter returns the repository filter for live-asset reads: admins
// see every non-deleted asset, everyone else only what is assigned to them.
func (AccessScope) VisibleFilter(caller ports.Caller) ports.AssetFilter {
	if caller.Role == ports.RoleAdmin {
		return ports.AssetFilter{}
	}
	return ports.AssetFilter{AssigneeID: caller.UserID}
}

// FilterVisible applies the same rule to an already-loaded slice.
func (s AccessScope) FilterVisible(assets []entities.Asset, caller ports.Caller) []entities.Asset {
	if caller.Role == ports.RoleAdmin {
		visible := make([]entities.Asset, 0, len(assets))
		for _, asset := range assets {
			if !asset.Deleted {
				visible = append(visible, asset)
			}
		}
		return visible
	}
	visible := make([]entities.Asset, 0)
	for _, asset := range assets {
		if !asset.Deleted && asset.Assigned() && asset.AssigneeOrEmpty() == caller.UserID {
			visible = append(visible, asset)
		}
	}
	return visible
}

func (AccessScope) CanViewDetails(asset entities.Asset, caller ports.Caller) bool {
	if caller.Role == ports.RoleAdmin {
		return true
	}
	return asset.Assigned() && asset.AssigneeOrEmpty() == caller.UserID
}
