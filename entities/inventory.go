package entities

import (
	"time"

	"stockroom.io/application/utils"
)

type InventoryItem struct {
	ProductID    string `bson:"productID" json:"productID"`
	Location     string `bson:"location" json:"location"`
	Quantity     int64  `bson:"quantity" json:"quantity"`
	ReorderLevel int64  `bson:"reorderLevel" json:"reorderLevel"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model InventoryItem) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		model.ID = utils.GenerateULIDString()
	}
	model.UpdatedAt = now
	return &model
}
