package dto

type CreateInventoryItemDTO struct {
	ProductID    string `json:"productID" validate:"required"`
	Location     string `json:"location" validate:"required,max=100"`
	Quantity     int64  `json:"quantity" validate:"gte=0"`
	ReorderLevel int64  `json:"reorderLevel" validate:"gte=0"`
}

type AdjustQuantityDTO struct {
	// signed delta applied to the current quantity
	Delta  int64  `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=200"`
}

type UpdateInventoryItemDTO struct {
	Location     *string `json:"location" validate:"omitempty,max=100"`
	ReorderLevel *int64  `json:"reorderLevel" validate:"omitempty,gte=0"`
}
