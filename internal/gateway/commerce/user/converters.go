package user

import (
	"strings"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

func toDomain(dto *userDTO) *entities.User {
	if dto == nil {
		return nil
	}

	return &entities.User{
		ID:    dto.ID,
		Name:  strings.TrimSpace(dto.FirstName + " " + dto.LastName),
		Phone: dto.Billing.Phone,
		Role:  dto.Role,
	}
}
