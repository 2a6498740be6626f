package user

import (
	"strings"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
)

type CreateUserDTO struct {
	Name     string    `json:"name" validate:"required"`
	Role     user.Role `json:"role" validate:"required"`
	Username string    `json:"username" validate:"required"`
	Password string    `json:"password" validate:"required,min=4"`
}

func (dto *CreateUserDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationError("Numele este obligatoriu.", internal.ErrCodeValidationFailed)
	}
	if !dto.Role.Valid() {
		return internal.NewValidationError("Rolul este invalid.", internal.ErrCodeInvalidRole)
	}
	dto.Username = strings.ToLower(strings.TrimSpace(dto.Username))
	if dto.Username == "" {
		return internal.NewValidationError("Username-ul este obligatoriu.", internal.ErrCodeValidationFailed)
	}
	if len(dto.Password) < 4 {
		return internal.NewValidationError("Parola trebuie să aibă cel puțin 4 caractere.", internal.ErrCodeWeakPassword)
	}
	return nil
}

type SetVacationDaysDTO struct {
	Days int `json:"days" validate:"required,min=0"`
}

func (dto SetVacationDaysDTO) Validate() error {
	if dto.Days < 0 || dto.Days > 366 {
		return internal.NewValidationError("Numărul de zile este invalid.", internal.ErrCodeInvalidQuota)
	}
	return nil
}
