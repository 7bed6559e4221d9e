package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"assetledger/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetledger/contexts/asset-management/asset-service/domain/errors"
	"assetledger/contexts/asset-management/asset-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetAsset(ctx context.Context, assetID string) (entities.Asset, error) {
	var row assetModel
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", strings.TrimSpace(assetID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Asset{}, domainerrors.ErrAssetNotFound
		}
		return entities.Asset{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAssets(ctx context.Context, filter ports.AssetFilter) ([]entities.Asset, error) {
	tx := r.db.WithContext(ctx).
		Model(&assetModel{}).
		Where("deleted = ?", filter.Deleted)
	if strings.TrimSpace(filter.AssigneeID) != "" {
		tx = tx.Where("assignee_id = ?", strings.TrimSpace(filter.AssigneeID))
	}

	var rows []assetModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Asset, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateAssetWithLog(ctx context.Context, asset entities.Asset, entry entities.ActivityLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := assetModelFromEntity(asset)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrConflict
			}
			return err
		}
		logRow := activityLogModelFromEntity(entry)
		return tx.Create(&logRow).Error
	})
}

// UpdateAssetWithLog applies the row update and the log append in one
// transaction. The version predicate rejects stale writers.
func (r *Repository) UpdateAssetWithLog(ctx context.Context, asset entities.Asset, expectedVersion int64, entry entities.ActivityLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&assetModel{}).
			Where("asset_id = ? AND version = ?", strings.TrimSpace(asset.AssetID), expectedVersion).
			Updates(assetUpdatesFromEntity(asset))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&assetModel{}).
				Where("asset_id = ?", strings.TrimSpace(asset.AssetID)).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domainerrors.ErrAssetNotFound
			}
			return domainerrors.ErrConflict
		}
		logRow := activityLogModelFromEntity(entry)
		return tx.Create(&logRow).Error
	})
}

func (r *Repository) ListLogs(ctx context.Context, assetID string) ([]entities.ActivityLog, error) {
	var rows []activityLogModel
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", strings.TrimSpace(assetID)).
		Order("timestamp DESC, seq DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	entries := make([]entities.ActivityLog, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toEntity())
	}
	return entries, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

type assetModel struct {
	AssetID        string     `gorm:"column:asset_id;primaryKey"`
	Name           string     `gorm:"column:name"`
	Type           string     `gorm:"column:type"`
	Status         string     `gorm:"column:status"`
	AssigneeID     *string    `gorm:"column:assignee_id"`
	PurchaseDate   time.Time  `gorm:"column:purchase_date"`
	WarrantyExpiry time.Time  `gorm:"column:warranty_expiry"`
	Remarks        string     `gorm:"column:remarks"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      *time.Time `gorm:"column:updated_at"`
	Deleted        bool       `gorm:"column:deleted"`
	DeletedAt      *time.Time `gorm:"column:deleted_at"`
	Version        int64      `gorm:"column:version"`
}

func (assetModel) TableName() string { return "assets" }

func (m assetModel) toEntity() entities.Asset {
	return entities.Asset{
		AssetID:        m.AssetID,
		Name:           m.Name,
		Type:           m.Type,
		Status:         entities.AssetStatus(m.Status),
		AssigneeID:     m.AssigneeID,
		PurchaseDate:   m.PurchaseDate,
		WarrantyExpiry: m.WarrantyExpiry,
		Remarks:        m.Remarks,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Deleted:        m.Deleted,
		DeletedAt:      m.DeletedAt,
		Version:        m.Version,
	}
}

func assetModelFromEntity(asset entities.Asset) assetModel {
	return assetModel{
		AssetID:        strings.TrimSpace(asset.AssetID),
		Name:           asset.Name,
		Type:           asset.Type,
		Status:         string(asset.Status),
		AssigneeID:     asset.AssigneeID,
		PurchaseDate:   asset.PurchaseDate,
		WarrantyExpiry: asset.WarrantyExpiry,
		Remarks:        asset.Remarks,
		CreatedAt:      asset.CreatedAt.UTC(),
		UpdatedAt:      asset.UpdatedAt,
		Deleted:        asset.Deleted,
		DeletedAt:      asset.DeletedAt,
		Version:        asset.Version,
	}
}

// assetUpdatesFromEntity lists columns explicitly so that nil assignee and
// nil timestamps are written as NULL rather than skipped.
func assetUpdatesFromEntity(asset entities.Asset) map[string]any {
	return map[string]any{
		"name":            asset.Name,
		"type":            asset.Type,
		"status":          string(asset.Status),
		"assignee_id":     asset.AssigneeID,
		"purchase_date":   asset.PurchaseDate,
		"warranty_expiry": asset.WarrantyExpiry,
		"remarks":         asset.Remarks,
		"updated_at":      asset.UpdatedAt,
		"deleted":         asset.Deleted,
		"deleted_at":      asset.DeletedAt,
		"version":         asset.Version,
	}
}

type activityLogModel struct {
	LogID     string    `gorm:"column:log_id;primaryKey"`
	Seq       int64     `gorm:"column:seq;autoIncrement"`
	AssetID   string    `gorm:"column:asset_id;index"`
	UserID    string    `gorm:"column:user_id"`
	Action    string    `gorm:"column:action"`
	Timestamp time.Time `gorm:"column:timestamp"`
	Notes     string    `gorm:"column:notes"`
}

func (activityLogModel) TableName() string { return "asset_activity_logs" }

func (m activityLogModel) toEntity() entities.ActivityLog {
	return entities.ActivityLog{
		LogID:     m.LogID,
		AssetID:   m.AssetID,
		UserID:    m.UserID,
		Action:    entities.ActionKind(m.Action),
		Timestamp: m.Timestamp,
		Notes:     m.Notes,
	}
}

func activityLogModelFromEntity(entry entities.ActivityLog) activityLogModel {
	return activityLogModel{
		LogID:     strings.TrimSpace(entry.LogID),
		AssetID:   strings.TrimSpace(entry.AssetID),
		UserID:    strings.TrimSpace(entry.UserID),
		Action:    string(entry.Action),
		Timestamp: entry.Timestamp.UTC(),
		Notes:     entry.Notes,
	}
}
