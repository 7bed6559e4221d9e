package httpadapter

import (
	"context"
	"log/slog"

	"assetledger/contexts/asset-management/user-directory/application"
	"assetledger/contexts/asset-management/user-directory/domain/entities"
	"assetledger/contexts/asset-management/user-directory/ports"
	httptransport "assetledger/contexts/asset-management/user-directory/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// CreateUserHandler godoc
// @Summary Create a directory user
// @Tags user-directory
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param X-User-Role header string true "Caller role (Admin|User)"
// @Param request body httptransport.CreateUserRequest true "User fields"
// @Success 200 {object} httptransport.CreateUserResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /api/users [post]
func (h Handler) CreateUserHandler(ctx context.Context, caller ports.Caller, req httptransport.CreateUserRequest) (httptransport.CreateUserResponse, error) {
	userID, err := h.Service.CreateUser(ctx, ports.CreateUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, caller)
	if err != nil {
		return httptransport.CreateUserResponse{}, err
	}
	resp := httptransport.CreateUserResponse{Status: "success"}
	resp.Data.UserID = userID
	return resp, nil
}

func (h Handler) UpdateUserHandler(ctx context.Context, caller ports.Caller, userID string, req httptransport.UpdateUserRequest) (httptransport.MessageResponse, error) {
	err := h.Service.UpdateUser(ctx, userID, ports.UpdateUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, caller)
	if err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Status: "success", Message: "User updated successfully"}, nil
}

func (h Handler) TerminateUserHandler(ctx context.Context, caller ports.Caller, userID string) (httptransport.MessageResponse, error) {
	if err := h.Service.TerminateUser(ctx, userID, caller); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Status: "success", Message: "User terminated successfully"}, nil
}

func (h Handler) GetUserHandler(ctx context.Context, caller ports.Caller, userID string) (httptransport.GetUserResponse, error) {
	user, err := h.Service.GetUser(ctx, userID, caller)
	if err != nil {
		return httptransport.GetUserResponse{}, err
	}
	return httptransport.GetUserResponse{
		Status: "success",
		Data:   toUserDTO(user),
	}, nil
}

func (h Handler) ListUsersHandler(ctx context.Context, caller ports.Caller, search string) (httptransport.ListUsersResponse, error) {
	users, err := h.Service.ListUsers(ctx, caller, search)
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}
	resp := httptransport.ListUsersResponse{
		Status: "success",
		Data:   make([]httptransport.UserDTO, 0, len(users)),
	}
	for _, user := range users {
		resp.Data = append(resp.Data, toUserDTO(user))
	}
	return resp, nil
}

// AssignableUsersHandler godoc
// @Summary List users eligible for asset assignment
// @Tags user-directory
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param X-User-Role header string true "Caller role (Admin|User)"
// @Success 200 {object} httptransport.AssignableUsersResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /api/assets/assignable-users [get]
func (h Handler) AssignableUsersHandler(ctx context.Context, caller ports.Caller) (httptransport.AssignableUsersResponse, error) {
	users, err := h.Service.AssignableUsers(ctx, caller)
	if err != nil {
		return httptransport.AssignableUsersResponse{}, err
	}
	resp := httptransport.AssignableUsersResponse{
		Status: "success",
		Data:   make([]httptransport.AssignableUserDTO, 0, len(users)),
	}
	for _, user := range users {
		resp.Data = append(resp.Data, httptransport.AssignableUserDTO{
			UserID:   user.UserID,
			UserName: user.UserName,
		})
	}
	return resp, nil
}

func toUserDTO(user entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		UserID:     user.UserID,
		UserName:   user.UserName,
		Email:      user.Email,
		Role:       string(user.Role),
		Terminated: user.Terminated,
	}
}
