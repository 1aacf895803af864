package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CreateUserDTO struct {
	Email    string   `json:"email" validate:"required,email,max=100"`
	Name     string   `json:"name" validate:"required,max=100"`
	Password string   `json:"password" validate:"required,password"`
	Groups   []string `json:"groups"`
	UserType string   `json:"userType" validate:"omitempty,oneof=admin manager viewer"`
}
