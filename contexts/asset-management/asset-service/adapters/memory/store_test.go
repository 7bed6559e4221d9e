package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"assetledger/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetledger/contexts/asset-management/asset-service/domain/errors"
	"assetledger/contexts/asset-management/asset-service/ports"
)

func ptr(value string) *string { return &value }

func sampleAsset(id string, version int64) entities.Asset {
	return entities.Asset{
		AssetID:   id,
		Name:      "Laptop-" + id,
		Type:      "Laptop",
		Status:    entities.StatusAvailable,
		CreatedAt: time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC),
		Version:   version,
	}
}

func sampleLog(id, assetID string, action entities.ActionKind, at time.Time) entities.ActivityLog {
	return entities.ActivityLog{
		LogID:     id,
		AssetID:   assetID,
		UserID:    "admin-1",
		Action:    action,
		Timestamp: at,
	}
}

func TestCreateRejectsDuplicateAssetID(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	at := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)

	if err := store.CreateAssetWithLog(ctx, sampleAsset("a1", 1), sampleLog("l1", "a1", entities.ActionCreate, at)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	err := store.CreateAssetWithLog(ctx, sampleAsset("a1", 1), sampleLog("l2", "a1", entities.ActionCreate, at))
	if !errors.Is(err, domainerrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	logs, err := store.ListLogs(ctx, "a1")
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("rejected create must not append a log, got %d entries", len(logs))
	}
}

func TestUpdateEnforcesVersion(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	at := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)

	if err := store.CreateAssetWithLog(ctx, sampleAsset("a1", 1), sampleLog("l1", "a1", entities.ActionCreate, at)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	next := sampleAsset("a1", 2)
	next.Status = entities.StatusRepair
	if err := store.UpdateAssetWithLog(ctx, next, 1, sampleLog("l2", "a1", entities.ActionUpdate, at.Add(time.Minute))); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// Same expected version again: the first writer already advanced it.
	stale := sampleAsset("a1", 2)
	err := store.UpdateAssetWithLog(ctx, stale, 1, sampleLog("l3", "a1", entities.ActionUpdate, at.Add(2*time.Minute)))
	if !errors.Is(err, domainerrors.ErrConflict) {
		t.Fatalf("expected ErrConflict for stale version, got %v", err)
	}

	asset, err := store.GetAsset(ctx, "a1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if asset.Version != 2 || asset.Status != entities.StatusRepair {
		t.Fatalf("lost-update guard failed, got %+v", asset)
	}
	logs, _ := store.ListLogs(ctx, "a1")
	if len(logs) != 2 {
		t.Fatalf("conflicting update must not append a log, got %d entries", len(logs))
	}
}

func TestUpdateMissingAssetIsNotFound(t *testing.T) {
	store := NewStore()
	err := store.UpdateAssetWithLog(context.Background(), sampleAsset("ghost", 1), 1, sampleLog("l1", "ghost", entities.ActionUpdate, time.Now()))
	if !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestListLogsOrdersNewestFirstWithStableTies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	at := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)

	if err := store.CreateAssetWithLog(ctx, sampleAsset("a1", 1), sampleLog("l1", "a1", entities.ActionCreate, at)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// Two writes sharing one timestamp, then a later one.
	asset := sampleAsset("a1", 2)
	if err := store.UpdateAssetWithLog(ctx, asset, 1, sampleLog("l2", "a1", entities.ActionAssign, at)); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	asset.Version = 3
	if err := store.UpdateAssetWithLog(ctx, asset, 2, sampleLog("l3", "a1", entities.ActionUnassign, at.Add(time.Hour))); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	logs, err := store.ListLogs(ctx, "a1")
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	got := make([]string, 0, len(logs))
	for _, entry := range logs {
		got = append(got, entry.LogID)
	}
	want := []string{"l3", "l2", "l1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestListAssetsFilters(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	at := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)

	live := sampleAsset("a1", 1)
	live.AssigneeID = ptr("user-a")
	dead := sampleAsset("a2", 1)
	dead.Deleted = true
	free := sampleAsset("a3", 1)

	for i, asset := range []entities.Asset{live, dead, free} {
		if err := store.CreateAssetWithLog(ctx, asset, sampleLog(asset.AssetID+"-log", asset.AssetID, entities.ActionCreate, at.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	assets, err := store.ListAssets(ctx, ports.AssetFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 live assets, got %d", len(assets))
	}

	assets, err = store.ListAssets(ctx, ports.AssetFilter{Deleted: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(assets) != 1 || assets[0].AssetID != "a2" {
		t.Fatalf("expected only deleted asset, got %+v", assets)
	}

	assets, err = store.ListAssets(ctx, ports.AssetFilter{AssigneeID: "user-a"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(assets) != 1 || assets[0].AssetID != "a1" {
		t.Fatalf("expected only user-a's asset, got %+v", assets)
	}
}
