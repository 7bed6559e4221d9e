package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AssetDTO struct {
	AssetID        string  `json:"asset_id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	AssigneeID     *string `json:"assignee_id,omitempty"`
	AssigneeName   string  `json:"assignee_name,omitempty"`
	PurchaseDate   string  `json:"purchase_date"`
	WarrantyExpiry string  `json:"warranty_expiry"`
	Remarks        string  `json:"remarks,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
	Deleted        bool    `json:"deleted"`
	DeletedAt      string  `json:"deleted_at,omitempty"`
}

type ActivityLogDTO struct {
	LogID     string `json:"log_id"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
	Notes     string `json:"notes,omitempty"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
}

type CreateAssetRequest struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Status         string `json:"status"`
	PurchaseDate   string `json:"purchase_date"`
	WarrantyExpiry string `json:"warranty_expiry"`
	Remarks        string `json:"remarks,omitempty"`
}

type CreateAssetResponse struct {
	Status string `json:"status"`
	Data   struct {
		AssetID string `json:"asset_id"`
	} `json:"data"`
}

type UpdateAssetRequest struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	AssigneeID     *string `json:"assignee_id"`
	PurchaseDate   string  `json:"purchase_date"`
	WarrantyExpiry string  `json:"warranty_expiry"`
	Remarks        string  `json:"remarks,omitempty"`
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ListAssetsResponse struct {
	Status string     `json:"status"`
	Data   []AssetDTO `json:"data"`
}

type AssetDetailsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Asset AssetDTO         `json:"asset"`
		Logs  []ActivityLogDTO `json:"logs"`
	} `json:"data"`
}

type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TypeCountDTO struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type DashboardResponse struct {
	Status string `json:"status"`
	Data   struct {
		TotalAssets        int              `json:"total_assets"`
		AssignedCount      int              `json:"assigned_count"`
		UnassignedCount    int              `json:"unassigned_count"`
		RepairCount        int              `json:"repair_count"`
		StatusDistribution []StatusCountDTO `json:"status_distribution"`
		TypeDistribution   []TypeCountDTO   `json:"type_distribution"`
	} `json:"data"`
}
