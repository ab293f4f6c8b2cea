package dto

import "petstar/internal/domain/model"

type UserCreateRequest struct {
	Email       string `json:"email" validate:"required,email,max=120"`
	DisplayName string `json:"displayName" validate:"required,min=2,max=30"`
}

type UserResponse struct {
	ID          string           `json:"id"`
	Email       string           `json:"email"`
	DisplayName string           `json:"displayName"`
	Role        model.UserRole   `json:"role"`
	Status      model.UserStatus `json:"status"`
	Bio         string           `json:"bio"`
}

func UserFromModel(u *model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Status:      u.Status,
		Bio:         u.Bio,
	}
}
