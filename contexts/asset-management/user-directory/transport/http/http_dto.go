package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UserDTO never carries the password hash.
type UserDTO struct {
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Terminated bool   `json:"terminated"`
}

type CreateUserRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CreateUserResponse struct {
	Status string `json:"status"`
	Data   struct {
		UserID string `json:"user_id"`
	} `json:"data"`
}

type UpdateUserRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ListUsersResponse struct {
	Status string    `json:"status"`
	Data   []UserDTO `json:"data"`
}

type GetUserResponse struct {
	Status string  `json:"status"`
	Data   UserDTO `json:"data"`
}

type AssignableUserDTO struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

type AssignableUsersResponse struct {
	Status string              `json:"status"`
	Data   []AssignableUserDTO `json:"data"`
}
