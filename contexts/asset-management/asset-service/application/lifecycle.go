package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"assetledger/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetledger/contexts/asset-management/asset-service/domain/errors"
	"assetledger/contexts/asset-management/asset-service/ports"
)

// Lifecycle is the only path through which an asset's status, assignee and
// soft-delete fields change. Every mutation commits together with exactly one
// activity-log entry; the repository's WithLog methods carry the atomicity.
type Lifecycle struct {
	Repo      ports.Repository
	Directory ports.DirectoryReader
	Scope     AccessScope
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (s Lifecycle) Create(ctx context.Context, input ports.CreateAssetInput, caller ports.Caller) (string, error) {
	if !s.Scope.CanManage(caller.Role) {
		return "", domainerrors.ErrForbidden
	}
	status, err := validateAssetFields(input.Name, input.Type, input.Status, input.PurchaseDate, input.WarrantyExpiry)
	if err != nil {
		return "", err
	}

	assetID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return "", err
	}
	logID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return "", err
	}
	now := s.Clock.Now().UTC()

	asset := entities.Asset{
		AssetID:        assetID,
		Name:           strings.TrimSpace(input.Name),
		Type:           strings.TrimSpace(input.Type),
		Status:         status,
		AssigneeID:     nil,
		PurchaseDate:   input.PurchaseDate,
		WarrantyExpiry: input.WarrantyExpiry,
		Remarks:        strings.TrimSpace(input.Remarks),
		CreatedAt:      now,
		Version:        1,
	}
	entry := entities.ActivityLog{
		LogID:     logID,
		AssetID:   assetID,
		UserID:    caller.UserID,
		Action:    entities.ActionCreate,
		Timestamp: now,
	}
	if err := s.Repo.CreateAssetWithLog(ctx, asset, entry); err != nil {
		return "", err
	}

	resolveLogger(s.Logger).Info("asset created",
		"event", "asset_created",
		"module", "asset-management/asset-service",
		"layer", "application",
		"asset_id", assetID,
		"status", string(status),
		"actor_id", caller.UserID,
	)
	return assetID, nil
}

func (s Lifecycle) Update(ctx context.Context, assetID string, input ports.UpdateAssetInput, caller ports.Caller) error {
	if !s.Scope.CanManage(caller.Role) {
		return domainerrors.ErrForbidden
	}
	status, err := validateAssetFields(input.Name, input.Type, input.Status, input.PurchaseDate, input.WarrantyExpiry)
	if err != nil {
		return err
	}

	current, err := s.Repo.GetAsset(ctx, strings.TrimSpace(assetID))
	if err != nil {
		return err
	}
	if current.Deleted {
		return domainerrors.ErrAssetNotFound
	}

	action, notes, err := s.classifyAssignment(ctx, current, input.AssigneeID)
	if err != nil {
		return err
	}

	// Assignment-driven transitions win over whatever status the payload
	// carries. Assign only forces InUse when the asset was Available.
	switch action {
	case entities.ActionUnassign:
		status = entities.StatusAvailable
	case entities.ActionReassign:
		status = entities.StatusInUse
	case entities.ActionAssign:
		if current.Status == entities.StatusAvailable {
			status = entities.StatusInUse
		}
	}

	now := s.Clock.Now().UTC()
	updated := current
	updated.Name = strings.TrimSpace(input.Name)
	updated.Type = strings.TrimSpace(input.Type)
	updated.Status = status
	updated.AssigneeID = normalizeAssignee(input.AssigneeID)
	updated.PurchaseDate = input.PurchaseDate
	updated.WarrantyExpiry = input.WarrantyExpiry
	updated.Remarks = strings.TrimSpace(input.Remarks)
	updated.UpdatedAt = &now
	updated.Version = current.Version + 1

	logID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	entry := entities.ActivityLog{
		LogID:     logID,
		AssetID:   current.AssetID,
		UserID:    caller.UserID,
		Action:    action,
		Timestamp: now,
		Notes:     notes,
	}
	if err := s.Repo.UpdateAssetWithLog(ctx, updated, current.Version, entry); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("asset updated",
		"event", "asset_updated",
		"module", "asset-management/asset-service",
		"layer", "application",
		"asset_id", current.AssetID,
		"action", string(action),
		"status", string(status),
		"actor_id", caller.UserID,
	)
	return nil
}

func (s Lifecycle) Dispose(ctx context.Context, assetID string, reason string, remark *string, caller ports.Caller) error {
	if !s.Scope.CanManage(caller.Role) {
		return domainerrors.ErrForbidden
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: dispose reason is required", domainerrors.ErrValidation)
	}

	current, err := s.Repo.GetAsset(ctx, strings.TrimSpace(assetID))
	if err != nil {
		return err
	}
	if current.Deleted {
		// Disposed is terminal; repeating the call succeeds without effect.
		return nil
	}

	now := s.Clock.Now().UTC()
	updated := current
	updated.Deleted = true
	updated.Status = entities.StatusDisposed
	updated.AssigneeID = nil
	updated.DeletedAt = &now
	updated.UpdatedAt = &now
	updated.Version = current.Version + 1
	if remark != nil {
		updated.Remarks = strings.TrimSpace(*remark)
	}

	logID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	entry := entities.ActivityLog{
		LogID:     logID,
		AssetID:   current.AssetID,
		UserID:    caller.UserID,
		Action:    entities.ActionDelete,
		Timestamp: now,
		Notes:     strings.TrimSpace(reason),
	}
	if err := s.Repo.UpdateAssetWithLog(ctx, updated, current.Version, entry); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("asset disposed",
		"event", "asset_disposed",
		"module", "asset-management/asset-service",
		"layer", "application",
		"asset_id", current.AssetID,
		"reason", strings.TrimSpace(reason),
		"actor_id", caller.UserID,
	)
	return nil
}

// classifyAssignment compares old and new assignee and yields the action kind
// plus the human-readable note recorded on the log entry.
func (s Lifecycle) classifyAssignment(ctx context.Context, current entities.Asset, newAssignee *string) (entities.ActionKind, string, error) {
	oldID := current.AssigneeOrEmpty()
	newID := ""
	if normalized := normalizeAssignee(newAssignee); normalized != nil {
		newID = *normalized
	}

	switch {
	case oldID == "" && newID == "":
		return entities.ActionUpdate, "", nil
	case oldID == newID:
		return entities.ActionUpdate, "", nil
	case oldID != "" && newID == "":
		oldName, err := s.displayName(ctx, oldID)
		if err != nil {
			return "", "", err
		}
		return entities.ActionUnassign, fmt.Sprintf("Unassigned from %s", oldName), nil
	case oldID == "" && newID != "":
		newName, err := s.displayName(ctx, newID)
		if err != nil {
			return "", "", err
		}
		return entities.ActionAssign, fmt.Sprintf("Assigned to %s", newName), nil
	default:
		oldName, err := s.displayName(ctx, oldID)
		if err != nil {
			return "", "", err
		}
		newName, err := s.displayName(ctx, newID)
		if err != nil {
			return "", "", err
		}
		return entities.ActionReassign, fmt.Sprintf("From %s to %s", oldName, newName), nil
	}
}

func (s Lifecycle) displayName(ctx context.Context, userID string) (string, error) {
	name, err := s.Directory.DisplayName(ctx, userID)
	if err != nil {
		return "", err
	}
	if name == "" {
		return userID, nil
	}
	return name, nil
}

func validateAssetFields(name, assetType, rawStatus string, purchase, warranty time.Time) (entities.AssetStatus, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is required", domainerrors.ErrValidation)
	}
	if strings.TrimSpace(assetType) == "" {
		return "", fmt.Errorf("%w: type is required", domainerrors.ErrValidation)
	}
	status, ok := entities.ParseStatus(rawStatus)
	if !ok {
		return "", fmt.Errorf("%w: unknown status %q", domainerrors.ErrValidation, strings.TrimSpace(rawStatus))
	}
	if purchase.IsZero() {
		return "", fmt.Errorf("%w: purchase date is required", domainerrors.ErrValidation)
	}
	if warranty.IsZero() {
		return "", fmt.Errorf("%w: warranty expiry is required", domainerrors.ErrValidation)
	}
	return status, nil
}

func normalizeAssignee(assignee *string) *string {
	if assignee == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*assignee)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
