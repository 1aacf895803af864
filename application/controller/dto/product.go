package dto

type CreateProductDTO struct {
	SKU       string `json:"sku" validate:"required,sku"`
	Name      string `json:"name" validate:"required,max=200"`
	VendorID  string `json:"vendorID" validate:"required"`
	Category  string `json:"category" validate:"required,max=100"`
	UnitPrice int64  `json:"unitPrice" validate:"gte=0"`
}

type UpdateProductDTO struct {
	Name      *string `json:"name" validate:"omitempty,max=200"`
	VendorID  *string `json:"vendorID"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
	UnitPrice *int64  `json:"unitPrice" validate:"omitempty,gte=0"`
}
