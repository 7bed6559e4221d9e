package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"assetledger/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetledger/contexts/asset-management/asset-service/domain/errors"
	"assetledger/contexts/asset-management/asset-service/ports"
)

func testQuery(repo *fakeRepo) Query {
	return Query{
		Repo:      repo,
		Directory: fakeDirectory{names: map[string]string{"user-a": "alice", "user-b": "bob"}},
	}
}

func seedFleet(repo *fakeRepo) {
	put := func(id, name, assetType string, status entities.AssetStatus, assignee *string, deleted bool) {
		repo.assets[id] = entities.Asset{
			AssetID:    id,
			Name:       name,
			Type:       assetType,
			Status:     status,
			AssigneeID: assignee,
			Deleted:    deleted,
			Version:    1,
		}
	}
	put("a1", "MacBook-14", "Laptop", entities.StatusInUse, ptr("user-a"), false)
	put("a2", "ThinkPad-X1", "Laptop", entities.StatusInUse, ptr("user-b"), false)
	put("a3", "Dell-Monitor", "Monitor", entities.StatusAvailable, nil, false)
	put("a4", "Old-Printer", "Printer", entities.StatusRepair, nil, false)
	put("a5", "Dead-Router", "Network", entities.StatusDisposed, nil, true)
}

func TestListScopesNonAdminToOwnAssets(t *testing.T) {
	repo := newFakeRepo()
	seedFleet(repo)
	query := testQuery(repo)

	assets, err := query.List(context.Background(), ports.Caller{UserID: "user-a", Role: ports.RoleUser}, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(assets) != 1 || assets[0].AssetID != "a1" {
		t.Fatalf("expected only a1, got %+v", assets)
	}
	if assets[0].AssigneeName != "alice" {
		t.Fatalf("expected resolved assignee name, got %q", assets[0].AssigneeName)
	}
}

func TestListAdminSeesAllLiveAssets(t *testing.T) {
	repo := newFakeRepo()
	seedFleet(repo)
	query := testQuery(repo)

	assets, err := query.List(context.Background(), admin, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(assets) != 4 {
		t.Fatalf("expected 4 live assets, got %d", len(assets))
	}
	for _, asset := range assets {
		if asset.Deleted {
			t.Fatalf("disposed asset leaked into live listing: %+v", asset)
		}
	}
}

func TestListSearchMatchesNameTypeRemarksStatus(t *testing.T) {
	repo := newFakeRepo()
	seedFleet(repo)
	asset := repo.assets["a3"]
	asset.Remarks = "spare for onboarding"
	repo.assets["a3"] = asset
	query := testQuery(repo)

	cases := map[string][]string{
		"thinkpad":   {"a2"},
		"laptop":     {"a1", "a2"},
		"onboarding": {"a3"},
		"repair":     {"a4"},
	}
	for term, want := range cases {
		assets, err := query.List(context.Background(), admin, term)
		if err != nil {
			t.Fatalf("search %q failed: %v", term, err)
		}
		got := make(map[string]bool, len(assets))
		for _, asset := range assets {
			got[asset.AssetID] = true
		}
		if len(got) != len(want) {
			t.Fatalf("search %q: expected %v, got %+v", term, want, assets)
		}
		for _, id := range want {
			if !got[id] {
				t.Fatalf("search %q: missing %s", term, id)
			}
		}
	}
}

func TestListAssigneeNameSearchIsAdminOnly(t *testing.T) {
	repo := newFakeRepo()
	seedFleet(repo)
	query := testQuery(repo)

	assets, err := query.List(context.Background(), admin, "bob")
	if err != nil {
		t.Fatalf("admin search failed: %v", err)
	}
	if len(assets) != 1 || assets[0].AssetID != "a2" {
		t.Fatalf("admin search by assignee name should match a2, got %+v", assets)
	}

	// Searching a colleague's name must not widen a user's scope.
	assets, err = query.List(context.Background(), ports.Caller{UserID: "user-a", Role: ports.RoleUser}, "bob")
	if err != nil {
		t.Fatalf("user search failed: %v", err)
	}
	if len(assets) != 0 {
		t.Fatalf("expected no matches outside caller scope, got %+v", assets)
	}
}

func TestListDisposedIsAdminOnly(t *testing.T) {
	repo := newFakeRepo()
	seedFleet(repo)
	query := testQuery(repo)

	_, err := query.ListDisposed(context.Background(), ports.Caller{UserID: "user-a", Role: ports.RoleUser}, "")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	assets, err := query.ListDisposed(context.Background(), admin, "")
	if err != nil {
		t.Fatalf("admin disposed listing failed: %v", err)
	}
	if len(assets) != 1 || assets[0].AssetID != "a5" {
		t.Fatalf("expected only the disposed asset, got %+v", assets)
	}
}

func TestDetailsHidesForeignAssetsFromUsers(t *testing.T) {
	repo := newFakeRepo()
	seedFleet(repo)
	query := testQuery(repo)

	_, err := query.Details(context.Background(), ports.Caller{UserID: "user-a", Role: ports.RoleUser}, "a2")
	if !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("foreign asset must read as missing, got %v", err)
	}

	_, err = query.Details(context.Background(), ports.Caller{UserID: "user-a", Role: ports.RoleUser}, "a3")
	if !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("unassigned asset must read as missing to users, got %v", err)
	}
}

func TestDetailsResolvesLogActorNames(t *testing.T) {
	repo := newFakeRepo()
	seedFleet(repo)
	repo.logs = append(repo.logs,
		entities.ActivityLog{LogID: "l1", AssetID: "a1", UserID: "user-b", Action: entities.ActionCreate, Timestamp: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
		entities.ActivityLog{LogID: "l2", AssetID: "a1", UserID: "user-b", Action: entities.ActionAssign, Timestamp: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), Notes: "Assigned to alice"},
	)
	query := testQuery(repo)

	details, err := query.Details(context.Background(), admin, "a1")
	if err != nil {
		t.Fatalf("details failed: %v", err)
	}
	if details.Asset.AssigneeName != "alice" {
		t.Fatalf("expected assignee name alice, got %q", details.Asset.AssigneeName)
	}
	if len(details.Logs) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(details.Logs))
	}
	for _, entry := range details.Logs {
		if entry.UserName != "bob" {
			t.Fatalf("expected actor name bob, got %q", entry.UserName)
		}
	}
}

func TestDashboardCountsAreScoped(t *testing.T) {
	repo := newFakeRepo()
	seedFleet(repo)
	query := testQuery(repo)

	dashboard, err := query.Dashboard(context.Background(), admin)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if dashboard.TotalAssets != 4 {
		t.Fatalf("disposed assets must not be counted, got total %d", dashboard.TotalAssets)
	}
	if dashboard.AssignedCount != 2 || dashboard.UnassignedCount != 2 {
		t.Fatalf("unexpected assignment split %+v", dashboard)
	}
	if dashboard.RepairCount != 1 {
		t.Fatalf("expected 1 asset in repair, got %d", dashboard.RepairCount)
	}
	if dashboard.ByType["laptop"] != 2 || dashboard.ByStatus[entities.StatusInUse] != 2 {
		t.Fatalf("unexpected distributions %+v", dashboard)
	}

	scoped, err := query.Dashboard(context.Background(), ports.Caller{UserID: "user-b", Role: ports.RoleUser})
	if err != nil {
		t.Fatalf("scoped dashboard failed: %v", err)
	}
	if scoped.TotalAssets != 1 || scoped.AssignedCount != 1 {
		t.Fatalf("user dashboard must only count own assets, got %+v", scoped)
	}
}

func TestDashboardNormalizesTypeLabels(t *testing.T) {
	repo := newFakeRepo()
	repo.assets["a1"] = entities.Asset{AssetID: "a1", Type: " Laptop ", Status: entities.StatusAvailable, Version: 1}
	repo.assets["a2"] = entities.Asset{AssetID: "a2", Type: "laptop", Status: entities.StatusAvailable, Version: 1}
	repo.assets["a3"] = entities.Asset{AssetID: "a3", Type: "", Status: entities.StatusAvailable, Version: 1}
	query := testQuery(repo)

	dashboard, err := query.Dashboard(context.Background(), admin)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if dashboard.ByType["laptop"] != 2 {
		t.Fatalf("type labels must fold case and whitespace, got %+v", dashboard.ByType)
	}
	if dashboard.ByType["unknown"] != 1 {
		t.Fatalf("blank types must bucket as unknown, got %+v", dashboard.ByType)
	}
}
