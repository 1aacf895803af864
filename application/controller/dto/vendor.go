package dto

type CreateVendorDTO struct {
	Name         string  `json:"name" validate:"required,max=100"`
	ContactEmail string  `json:"contactEmail" validate:"required,email,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,e164"`
	Address      *string `json:"address" validate:"omitempty,max=500"`
}

type UpdateVendorDTO struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,e164"`
	Address      *string `json:"address" validate:"omitempty,max=500"`
	Status       *string `json:"status" validate:"omitempty,oneof=active suspended"`
}
