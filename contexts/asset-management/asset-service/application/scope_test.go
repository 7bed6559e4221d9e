package application

import (
	"testing"

	"assetledger/contexts/asset-management/asset-service/domain/entities"
	"assetledger/contexts/asset-management/asset-service/ports"
)

func TestCanManage(t *testing.T) {
	scope := AccessScope{}
	if !scope.CanManage(ports.RoleAdmin) {
		t.Fatalf("admins must manage")
	}
	if scope.CanManage(ports.RoleUser) {
		t.Fatalf("users must not manage")
	}
}

func TestVisibleFilter(t *testing.T) {
	scope := AccessScope{}

	if filter := scope.VisibleFilter(admin); filter.AssigneeID != "" || filter.Deleted {
		t.Fatalf("admin filter must be unrestricted, got %+v", filter)
	}
	filter := scope.VisibleFilter(ports.Caller{UserID: "user-a", Role: ports.RoleUser})
	if filter.AssigneeID != "user-a" {
		t.Fatalf("user filter must pin to caller, got %+v", filter)
	}
}

func TestFilterVisible(t *testing.T) {
	scope := AccessScope{}
	assets := []entities.Asset{
		{AssetID: "mine", AssigneeID: ptr("user-a")},
		{AssetID: "theirs", AssigneeID: ptr("user-b")},
		{AssetID: "free"},
		{AssetID: "gone", AssigneeID: ptr("user-a"), Deleted: true},
	}

	visible := scope.FilterVisible(assets, ports.Caller{UserID: "user-a", Role: ports.RoleUser})
	if len(visible) != 1 || visible[0].AssetID != "mine" {
		t.Fatalf("expected only own live asset, got %+v", visible)
	}

	visible = scope.FilterVisible(assets, admin)
	if len(visible) != 3 {
		t.Fatalf("admin sees every live asset, got %+v", visible)
	}
}

func TestCanViewDetails(t *testing.T) {
	scope := AccessScope{}
	owned := entities.Asset{AssetID: "a1", AssigneeID: ptr("user-a")}
	free := entities.Asset{AssetID: "a2"}

	if !scope.CanViewDetails(owned, ports.Caller{UserID: "user-a", Role: ports.RoleUser}) {
		t.Fatalf("assignee must see own asset")
	}
	if scope.CanViewDetails(owned, ports.Caller{UserID: "user-b", Role: ports.RoleUser}) {
		t.Fatalf("other users must not see it")
	}
	if scope.CanViewDetails(free, ports.Caller{UserID: "user-a", Role: ports.RoleUser}) {
		t.Fatalf("unassigned assets are admin-only")
	}
	if !scope.CanViewDetails(free, admin) {
		t.Fatalf("admin sees everything")
	}
}
