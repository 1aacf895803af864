package entities

import (
	"time"

	"stockroom.io/application/utils"
)

type Product struct {
	SKU      string `bson:"sku" json:"sku"`
	Name     string `bson:"name" json:"name"`
	VendorID string `bson:"vendorID" json:"vendorID"`
	Category string `bson:"category" json:"category"`
	// price in the smallest currency unit
	UnitPrice int64  `bson:"unitPrice" json:"unitPrice"`
	Image     string `bson:"image" json:"image"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model Product) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		model.ID = utils.GenerateULIDString()
	}
	model.UpdatedAt = now
	return &model
}
