package application

import (
	"context"
	"strings"

	"assetledger/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetledger/contexts/asset-management/asset-service/domain/errors"
	"assetledger/contexts/asset-management/asset-service/ports"
)

// Query is the read side: scoped listing, search and dashboard aggregation.
// It never mutates and never writes log entries. All scoping comes from
// AccessScope so no read path can drift from the visibility rules.
type Query struct {
	Repo      ports.Repository
	Directory ports.DirectoryReader
	Scope     AccessScope
}

func (q Query) List(ctx context.Context, caller ports.Caller, search string) ([]entities.Asset, error) {
	assets, err := q.Repo.ListAssets(ctx, q.Scope.VisibleFilter(caller))
	if err != nil {
		return nil, err
	}
	assets, err = q.resolveAssigneeNames(ctx, assets)
	if err != nil {
		return nil, err
	}
	return q.applySearch(assets, caller, search), nil
}

// ListDisposed is the admin-only history view over soft-deleted assets.
func (q Query) ListDisposed(ctx context.Context, caller ports.Caller, search string) ([]entities.Asset, error) {
	if !q.Scope.CanManage(caller.Role) {
		return nil, domainerrors.ErrForbidden
	}
	assets, err := q.Repo.ListAssets(ctx, ports.AssetFilter{Deleted: true})
	if err != nil {
		return nil, err
	}
	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		matched := make([]entities.Asset, 0, len(assets))
		for _, asset := range assets {
			if containsFold(asset.Name, term) || containsFold(asset.Type, term) || containsFold(asset.Remarks, term) {
				matched = append(matched, asset)
			}
		}
		assets = matched
	}
	return assets, nil
}

func (q Query) Details(ctx context.Context, caller ports.Caller, assetID string) (ports.AssetDetails, error) {
	asset, err := q.Repo.GetAsset(ctx, strings.TrimSpace(assetID))
	if err != nil {
		return ports.AssetDetails{}, err
	}
	if !q.Scope.CanViewDetails(asset, caller) {
		// Indistinguishable from a missing record on purpose.
		return ports.AssetDetails{}, domainerrors.ErrAssetNotFound
	}

	logs, err := q.Repo.ListLogs(ctx, asset.AssetID)
	if err != nil {
		return ports.AssetDetails{}, err
	}

	ids := make([]string, 0, len(logs)+1)
	if asset.Assigned() {
		ids = append(ids, asset.AssigneeOrEmpty())
	}
	for _, entry := range logs {
		ids = append(ids, entry.UserID)
	}
	names, err := q.Directory.DisplayNames(ctx, ids)
	if err != nil {
		return ports.AssetDetails{}, err
	}
	if asset.Assigned() {
		asset.AssigneeName = names[asset.AssigneeOrEmpty()]
	}
	for i := range logs {
		logs[i].UserName = names[logs[i].UserID]
	}
	return ports.AssetDetails{Asset: asset, Logs: logs}, nil
}

func (q Query) Dashboard(ctx context.Context, caller ports.Caller) (ports.Dashboard, error) {
	assets, err := q.Repo.ListAssets(ctx, q.Scope.VisibleFilter(caller))
	if err != nil {
		return ports.Dashboard{}, err
	}

	dashboard := ports.Dashboard{
		ByStatus: make(map[entities.AssetStatus]int),
		ByType:   make(map[string]int),
	}
	for _, asset := range assets {
		dashboard.TotalAssets++
		if asset.Assigned() {
			dashboard.AssignedCount++
		} else {
			dashboard.UnassignedCount++
		}
		if asset.Status == entities.StatusRepair {
			dashboard.RepairCount++
		}
		dashboard.ByStatus[asset.Status]++

		assetType := strings.ToLower(strings.TrimSpace(asset.Type))
		if assetType == "" {
			assetType = "unknown"
		}
		dashboard.ByType[assetType]++
	}
	return dashboard, nil
}

func (q Query) resolveAssigneeNames(ctx context.Context, assets []entities.Asset) ([]entities.Asset, error) {
	ids := make([]string, 0, len(assets))
	for _, asset := range assets {
		if asset.Assigned() {
			ids = append(ids, asset.AssigneeOrEmpty())
		}
	}
	if len(ids) == 0 {
		return assets, nil
	}
	names, err := q.Directory.DisplayNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range assets {
		if assets[i].Assigned() {
			assets[i].AssigneeName = names[assets[i].AssigneeOrEmpty()]
		}
	}
	return assets, nil
}

func (q Query) applySearch(assets []entities.Asset, caller ports.Caller, search string) []entities.Asset {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return assets
	}
	matched := make([]entities.Asset, 0, len(assets))
	for _, asset := range assets {
		if containsFold(asset.Name, term) ||
			containsFold(asset.Type, term) ||
			containsFold(asset.Remarks, term) ||
			containsFold(string(asset.Status), term) {
			matched = append(matched, asset)
			continue
		}
		// Assignee names are admin-only search material.
		if caller.Role == ports.RoleAdmin && asset.AssigneeName != "" && containsFold(asset.AssigneeName, term) {
			matched = append(matched, asset)
		}
	}
	return matched
}

func containsFold(value string, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(value), lowerTerm)
}
