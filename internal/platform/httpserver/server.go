package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	assetservice "assetledger/contexts/asset-management/asset-service"
	asseterrors "assetledger/contexts/asset-management/asset-service/domain/errors"
	assetports "assetledger/contexts/asset-management/asset-service/ports"
	assethttp "assetledger/contexts/asset-management/asset-service/transport/http"
	userdirectory "assetledger/contexts/asset-management/user-directory"
	usererrors "assetledger/contexts/asset-management/user-directory/domain/errors"
	userports "assetledger/contexts/asset-management/user-directory/ports"
	userhttp "assetledger/contexts/asset-management/user-directory/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "assetledger/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	assets assetservice.Module
	users  userdirectory.Module
}

func New(
	assets assetservice.Module,
	users userdirectory.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		assets: assets,
		users:  users,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/assets", s.handleListAssets)
	s.mux.HandleFunc("GET /api/assets/disposed", s.handleListDisposed)
	s.mux.HandleFunc("GET /api/assets/dashboard", s.handleDashboard)
	s.mux.HandleFunc("GET /api/assets/assignable-users", s.handleAssignableUsers)
	s.mux.HandleFunc("GET /api/assets/{asset_id}", s.handleAssetDetails)
	s.mux.HandleFunc("POST /api/assets", s.handleCreateAsset)
	s.mux.HandleFunc("PUT /api/assets/{asset_id}", s.handleUpdateAsset)
	s.mux.HandleFunc("DELETE /api/assets/{asset_id}", s.handleDisposeAsset)

	s.mux.HandleFunc("GET /api/users", s.handleListUsers)
	s.mux.HandleFunc("POST /api/users", s.handleCreateUser)
	s.mux.HandleFunc("GET /api/users/{user_id}", s.handleGetUser)
	s.mux.HandleFunc("PUT /api/users/{user_id}", s.handleUpdateUser)
	s.mux.HandleFunc("DELETE /api/users/{user_id}", s.handleTerminateUser)
}

// assetCaller resolves the externally authenticated identity from the
// request headers. An empty user id means the request never passed the
// credential collaborator, so it is rejected before reaching the core.
func assetCaller(r *http.Request) (assetports.Caller, bool) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		return assetports.Caller{}, false
	}
	return assetports.Caller{
		UserID: userID,
		Role:   assetports.ParseRole(r.Header.Get("X-User-Role")),
	}, true
}

func userCaller(r *http.Request) (userports.Caller, bool) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		return userports.Caller{}, false
	}
	return userports.Caller{
		UserID: userID,
		Role:   userports.ParseCallerRole(r.Header.Get("X-User-Role")),
	}, true
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	caller, ok := assetCaller(r)
	if !ok {
		writeAssetError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.assets.Handler.ListAssetsHandler(r.Context(), caller, r.URL.Query().Get("search"))
	if err != nil {
		writeAssetDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListDisposed(w http.ResponseWriter, r *http.Request) {
	caller, ok := assetCaller(r)
	if !ok {
		writeAssetError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.assets.Handler.ListDisposedHandler(r.Context(), caller, r.URL.Query().Get("search"))
	if err != nil {
		writeAssetDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	caller, ok := assetCaller(r)
	if !ok {
		writeAssetError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.assets.Handler.DashboardHandler(r.Context(), caller)
	if err != nil {
		writeAssetDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAssetDetails(w http.ResponseWriter, r *http.Request) {
	caller, ok := assetCaller(r)
	if !ok {
		writeAssetError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.assets.Handler.GetAssetDetailsHandler(r.Context(), caller, r.PathValue("asset_id"))
	if err != nil {
		writeAssetDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	caller, ok := assetCaller(r)
	if !ok {
		writeAssetError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req assethttp.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAssetError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.assets.Handler.CreateAssetHandler(r.Context(), caller, req)
	if err != nil {
		writeAssetDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateAsset(w http.ResponseWriter, r *http.Request) {
	caller, ok := assetCaller(r)
	if !ok {
		writeAssetError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req assethttp.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAssetError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.assets.Handler.UpdateAssetHandler(r.Context(), caller, r.PathValue("asset_id"), req)
	if err != nil {
		writeAssetDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDisposeAsset(w http.ResponseWriter, r *http.Request) {
	caller, ok := assetCaller(r)
	if !ok {
		writeAssetError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	query := r.URL.Query()
	var remark *string
	if query.Has("remark") {
		value := query.Get("remark")
		remark = &value
	}
	resp, err := s.assets.Handler.DisposeAssetHandler(r.Context(), caller, r.PathValue("asset_id"), query.Get("reason"), remark)
	if err != nil {
		writeAssetDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAssignableUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := userCaller(r)
	if !ok {
		writeUserError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.users.Handler.AssignableUsersHandler(r.Context(), caller)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := userCaller(r)
	if !ok {
		writeUserError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.users.Handler.ListUsersHandler(r.Context(), caller, r.URL.Query().Get("search"))
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := userCaller(r)
	if !ok {
		writeUserError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req userhttp.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.users.Handler.CreateUserHandler(r.Context(), caller, req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := userCaller(r)
	if !ok {
		writeUserError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.users.Handler.GetUserHandler(r.Context(), caller, r.PathValue("user_id"))
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := userCaller(r)
	if !ok {
		writeUserError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req userhttp.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.users.Handler.UpdateUserHandler(r.Context(), caller, r.PathValue("user_id"), req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTerminateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := userCaller(r)
	if !ok {
		writeUserError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	resp, err := s.users.Handler.TerminateUserHandler(r.Context(), caller, r.PathValue("user_id"))
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAssetDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, asseterrors.ErrForbidden):
		writeAssetError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, asseterrors.ErrAssetNotFound):
		writeAssetError(w, http.StatusNotFound, "asset_not_found", err.Error())
	case errors.Is(err, asseterrors.ErrValidation):
		writeAssetError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, asseterrors.ErrConflict):
		writeAssetError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeAssetError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeUserDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usererrors.ErrForbidden):
		writeUserError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, usererrors.ErrUserNotFound):
		writeUserError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, usererrors.ErrValidation):
		writeUserError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, usererrors.ErrEmailTaken):
		writeUserError(w, http.StatusConflict, "email_taken", err.Error())
	default:
		writeUserError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAssetError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]string{"code": code, "message": message})
}

func writeUserError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]string{"code": code, "message": message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
