package dto

import (
	"time"

	"github.com/mkobayashi/todo-web-api/internal/models"
)

// UserVM represents a user in API responses
type UserVM struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	CreatedDate time.Time       `json:"createdDate"`
}

// LoginResponse carries the issued bearer token together with the user.
type LoginResponse struct {
	Token string `json:"token"`
	User  UserVM `json:"user"`
}

// ToUserVM converts an AppUser model to UserVM
func ToUserVM(user models.AppUser) UserVM {
	return UserVM{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		CreatedDate: user.CreatedDate,
	}
}
