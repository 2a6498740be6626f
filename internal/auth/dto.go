package auth

import "github.com/gradinita/leave-management/internal"

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (dto LoginDTO) Validate() error {
	if dto.Username == "" || dto.Password == "" {
		return internal.NewValidationError("Username și parola sunt obligatorii.", internal.ErrCodeValidationFailed)
	}
	return nil
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

func (dto ChangePasswordDTO) Validate() error {
	if dto.OldPassword == "" {
		return internal.NewValidationError("Parola veche este obligatorie.", internal.ErrCodeValidationFailed)
	}
	if len(dto.NewPassword) < 4 {
		return internal.NewValidationError("Parola trebuie să aibă cel puțin 4 caractere.", internal.ErrCodeWeakPassword)
	}
	return nil
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (dto RefreshTokenDTO) Validate() error {
	if dto.RefreshToken == "" {
		return internal.NewValidationError("refresh token is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
