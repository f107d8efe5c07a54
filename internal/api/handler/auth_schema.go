package handler

import "github.com/99minutos/auth-service/internal/core/domain"

type registerResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	RoleName string `json:"role_name"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toRegisterResponse(u *domain.User) registerResponse {
	return registerResponse{UserID: u.ID, Username: u.Username, RoleName: u.RoleName}
}
