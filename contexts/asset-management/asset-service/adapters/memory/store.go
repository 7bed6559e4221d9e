package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"assetledger/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetledger/contexts/asset-management/asset-service/domain/errors"
	"assetledger/contexts/asset-management/asset-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory repository used by tests and local runs. One mutex
// hold is the transaction boundary, so the entity write and its log append
// are observed together or not at all.
type Store struct {
	mu sync.RWMutex

	assets map[string]entities.Asset
	logs   map[string][]logRecord
	seq    int64
}

type logRecord struct {
	entry entities.ActivityLog
	seq   int64
}

func NewStore() *Store {
	return &Store{
		assets: make(map[string]entities.Asset),
		logs:   make(map[string][]logRecord),
	}
}

func (s *Store) GetAsset(_ context.Context, assetID string) (entities.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	asset, ok := s.assets[strings.TrimSpace(assetID)]
	if !ok {
		return entities.Asset{}, domainerrors.ErrAssetNotFound
	}
	return asset, nil
}

func (s *Store) ListAssets(_ context.Context, filter ports.AssetFilter) ([]entities.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Asset, 0)
	for _, asset := range s.assets {
		if asset.Deleted != filter.Deleted {
			continue
		}
		if filter.AssigneeID != "" && asset.AssigneeOrEmpty() != filter.AssigneeID {
			continue
		}
		items = append(items, asset)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].AssetID < items[j].AssetID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) CreateAssetWithLog(_ context.Context, asset entities.Asset, entry entities.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(asset.AssetID)
	if id == "" {
		return domainerrors.ErrValidation
	}
	if _, exists := s.assets[id]; exists {
		return domainerrors.ErrConflict
	}
	s.assets[id] = asset
	s.appendLogLocked(entry)
	return nil
}

func (s *Store) UpdateAssetWithLog(_ context.Context, asset entities.Asset, expectedVersion int64, entry entities.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(asset.AssetID)
	current, ok := s.assets[id]
	if !ok {
		return domainerrors.ErrAssetNotFound
	}
	if current.Version != expectedVersion {
		return domainerrors.ErrConflict
	}
	s.assets[id] = asset
	s.appendLogLocked(entry)
	return nil
}

func (s *Store) ListLogs(_ context.Context, assetID string) ([]entities.ActivityLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := append([]logRecord(nil), s.logs[strings.TrimSpace(assetID)]...)
	sort.Slice(records, func(i, j int) bool {
		if records[i].entry.Timestamp.Equal(records[j].entry.Timestamp) {
			// Equal timestamps fall back to insertion order, newest first.
			return records[i].seq > records[j].seq
		}
		return records[i].entry.Timestamp.After(records[j].entry.Timestamp)
	})
	entries := make([]entities.ActivityLog, 0, len(records))
	for _, record := range records {
		entries = append(entries, record.entry)
	}
	return entries, nil
}

func (s *Store) appendLogLocked(entry entities.ActivityLog) {
	s.seq++
	assetID := strings.TrimSpace(entry.AssetID)
	s.logs[assetID] = append(s.logs[assetID], logRecord{entry: entry, seq: s.seq})
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
