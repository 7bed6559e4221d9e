package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"assetledger/contexts/asset-management/asset-service/application"
	"assetledger/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetledger/contexts/asset-management/asset-service/domain/errors"
	"assetledger/contexts/asset-management/asset-service/ports"
	httptransport "assetledger/contexts/asset-management/asset-service/transport/http"
)

type Handler struct {
	Lifecycle application.Lifecycle
	Query     application.Query
	Logger    *slog.Logger
}

// ListAssetsHandler godoc
// @Summary List visible assets
// @Description Non-deleted assets scoped to the caller, with optional free-text search.
// @Tags asset-service
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param X-User-Role header string true "Caller role (Admin|User)"
// @Param search query string false "Case-insensitive substring filter"
// @Success 200 {object} httptransport.ListAssetsResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/assets [get]
func (h Handler) ListAssetsHandler(ctx context.Context, caller ports.Caller, search string) (httptransport.ListAssetsResponse, error) {
	assets, err := h.Query.List(ctx, caller, search)
	if err != nil {
		return httptransport.ListAssetsResponse{}, err
	}
	return httptransport.ListAssetsResponse{
		Status: "success",
		Data:   toAssetDTOs(assets),
	}, nil
}

// ListDisposedHandler godoc
// @Summary List disposed assets
// @Description Admin-only history view over soft-deleted assets.
// @Tags asset-service
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param X-User-Role header string true "Caller role (Admin|User)"
// @Param search query string false "Case-insensitive substring filter"
// @Success 200 {object} httptransport.ListAssetsResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /api/assets/disposed [get]
func (h Handler) ListDisposedHandler(ctx context.Context, caller ports.Caller, search string) (httptransport.ListAssetsResponse, error) {
	assets, err := h.Query.ListDisposed(ctx, caller, search)
	if err != nil {
		return httptransport.ListAssetsResponse{}, err
	}
	return httptransport.ListAssetsResponse{
		Status: "success",
		Data:   toAssetDTOs(assets),
	}, nil
}

// GetAssetDetailsHandler godoc
// @Summary Get asset details with audit trail
// @Tags asset-service
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param X-User-Role header string true "Caller role (Admin|User)"
// @Param asset_id path string true "Asset id"
// @Success 200 {object} httptransport.AssetDetailsResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/assets/{asset_id} [get]
func (h Handler) GetAssetDetailsHandler(ctx context.Context, caller ports.Caller, assetID string) (httptransport.AssetDetailsResponse, error) {
	details, err := h.Query.Details(ctx, caller, assetID)
	if err != nil {
		return httptransport.AssetDetailsResponse{}, err
	}
	resp := httptransport.AssetDetailsResponse{Status: "success"}
	resp.Data.Asset = toAssetDTO(details.Asset)
	resp.Data.Logs = make([]httptransport.ActivityLogDTO, 0, len(details.Logs))
	for _, entry := range details.Logs {
		resp.Data.Logs = append(resp.Data.Logs, httptransport.ActivityLogDTO{
			LogID:     entry.LogID,
			Action:    string(entry.Action),
			Timestamp: entry.Timestamp.UTC().Format(time.RFC3339),
			Notes:     entry.Notes,
			UserID:    entry.UserID,
			UserName:  entry.UserName,
		})
	}
	return resp, nil
}

// CreateAssetHandler godoc
// @Summary Create an asset
// @Tags asset-service
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param X-User-Role header string true "Caller role (Admin|User)"
// @Param request body httptransport.CreateAssetRequest true "Asset fields"
// @Success 200 {object} httptransport.CreateAssetResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /api/assets [post]
func (h Handler) CreateAssetHandler(ctx context.Context, caller ports.Caller, req httptransport.CreateAssetRequest) (httptransport.CreateAssetResponse, error) {
	purchase, err := parseDate(req.PurchaseDate, "purchase_date")
	if err != nil {
		return httptransport.CreateAssetResponse{}, err
	}
	warranty, err := parseDate(req.WarrantyExpiry, "warranty_expiry")
	if err != nil {
		return httptransport.CreateAssetResponse{}, err
	}

	assetID, err := h.Lifecycle.Create(ctx, ports.CreateAssetInput{
		Name:           req.Name,
		Type:           req.Type,
		Status:         req.Status,
		PurchaseDate:   purchase,
		WarrantyExpiry: warranty,
		Remarks:        req.Remarks,
	}, caller)
	if err != nil {
		return httptransport.CreateAssetResponse{}, err
	}
	resp := httptransport.CreateAssetResponse{Status: "success"}
	resp.Data.AssetID = assetID
	return resp, nil
}

// UpdateAssetHandler godoc
// @Summary Update an asset
// @Description Applies field changes; assignment changes drive status transitions and the audit action kind.
// @Tags asset-service
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param X-User-Role header string true "Caller role (Admin|User)"
// @Param asset_id path string true "Asset id"
// @Param request body httptransport.UpdateAssetRequest true "Asset fields"
// @Success 200 {object} httptransport.MessageResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /api/assets/{asset_id} [put]
func (h Handler) UpdateAssetHandler(ctx context.Context, caller ports.Caller, assetID string, req httptransport.UpdateAssetRequest) (httptransport.MessageResponse, error) {
	purchase, err := parseDate(req.PurchaseDate, "purchase_date")
	if err != nil {
		return httptransport.MessageResponse{}, err
	}
	warranty, err := parseDate(req.WarrantyExpiry, "warranty_expiry")
	if err != nil {
		return httptransport.MessageResponse{}, err
	}

	err = h.Lifecycle.Update(ctx, assetID, ports.UpdateAssetInput{
		Name:           req.Name,
		Type:           req.Type,
		Status:         req.Status,
		AssigneeID:     req.AssigneeID,
		PurchaseDate:   purchase,
		WarrantyExpiry: warranty,
		Remarks:        req.Remarks,
	}, caller)
	if err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Status: "success", Message: "Updated successfully"}, nil
}

// DisposeAssetHandler godoc
// @Summary Dispose an asset
// @Description Soft-deletes the asset with a mandatory reason; terminal.
// @Tags asset-service
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param X-User-Role header string true "Caller role (Admin|User)"
// @Param asset_id path string true "Asset id"
// @Param reason query string true "Dispose reason"
// @Param remark query string false "Replacement remarks"
// @Success 200 {object} httptransport.MessageResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/assets/{asset_id} [delete]
func (h Handler) DisposeAssetHandler(ctx context.Context, caller ports.Caller, assetID string, reason string, remark *string) (httptransport.MessageResponse, error) {
	if err := h.Lifecycle.Dispose(ctx, assetID, reason, remark, caller); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Status: "success", Message: "Deleted successfully"}, nil
}

// DashboardHandler godoc
// @Summary Asset dashboard counters
// @Tags asset-service
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param X-User-Role header string true "Caller role (Admin|User)"
// @Success 200 {object} httptransport.DashboardResponse
// @Router /api/assets/dashboard [get]
func (h Handler) DashboardHandler(ctx context.Context, caller ports.Caller) (httptransport.DashboardResponse, error) {
	dashboard, err := h.Query.Dashboard(ctx, caller)
	if err != nil {
		return httptransport.DashboardResponse{}, err
	}
	resp := httptransport.DashboardResponse{Status: "success"}
	resp.Data.TotalAssets = dashboard.TotalAssets
	resp.Data.AssignedCount = dashboard.AssignedCount
	resp.Data.UnassignedCount = dashboard.UnassignedCount
	resp.Data.RepairCount = dashboard.RepairCount

	resp.Data.StatusDistribution = make([]httptransport.StatusCountDTO, 0, len(dashboard.ByStatus))
	for status, count := range dashboard.ByStatus {
		resp.Data.StatusDistribution = append(resp.Data.StatusDistribution, httptransport.StatusCountDTO{
			Status: string(status),
			Count:  count,
		})
	}
	sort.Slice(resp.Data.StatusDistribution, func(i, j int) bool {
		return resp.Data.StatusDistribution[i].Status < resp.Data.StatusDistribution[j].Status
	})

	resp.Data.TypeDistribution = make([]httptransport.TypeCountDTO, 0, len(dashboard.ByType))
	for assetType, count := range dashboard.ByType {
		resp.Data.TypeDistribution = append(resp.Data.TypeDistribution, httptransport.TypeCountDTO{
			Type:  assetType,
			Count: count,
		})
	}
	sort.Slice(resp.Data.TypeDistribution, func(i, j int) bool {
		return resp.Data.TypeDistribution[i].Type < resp.Data.TypeDistribution[j].Type
	})
	return resp, nil
}

func toAssetDTOs(assets []entities.Asset) []httptransport.AssetDTO {
	items := make([]httptransport.AssetDTO, 0, len(assets))
	for _, asset := range assets {
		items = append(items, toAssetDTO(asset))
	}
	return items
}

func toAssetDTO(asset entities.Asset) httptransport.AssetDTO {
	dto := httptransport.AssetDTO{
		AssetID:        asset.AssetID,
		Name:           asset.Name,
		Type:           asset.Type,
		Status:         string(asset.Status),
		AssigneeID:     asset.AssigneeID,
		AssigneeName:   asset.AssigneeName,
		PurchaseDate:   asset.PurchaseDate.UTC().Format("2006-01-02"),
		WarrantyExpiry: asset.WarrantyExpiry.UTC().Format("2006-01-02"),
		Remarks:        asset.Remarks,
		CreatedAt:      asset.CreatedAt.UTC().Format(time.RFC3339),
		Deleted:        asset.Deleted,
	}
	if asset.UpdatedAt != nil {
		dto.UpdatedAt = asset.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if asset.DeletedAt != nil {
		dto.DeletedAt = asset.DeletedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func parseDate(raw string, field string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", domainerrors.ErrValidation, field)
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date", domainerrors.ErrValidation, field)
	}
	return parsed, nil
}
