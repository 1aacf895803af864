package entities

import (
	"time"

	"stockroom.io/application/utils"
)

type VendorStatus string

const (
	VendorActive    VendorStatus = "active"
	VendorSuspended VendorStatus = "suspended"
)

type Vendor struct {
	Name         string       `bson:"name" json:"name"`
	ContactEmail string       `bson:"contactEmail" json:"contactEmail"`
	Phone        *string      `bson:"phone" json:"phone,omitempty"`
	Address      *string      `bson:"address" json:"address,omitempty"`
	Status       VendorStatus `bson:"status" json:"status"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model Vendor) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		model.ID = utils.GenerateULIDString()
	}
	if model.Status == "" {
		model.Status = VendorActive
	}
	model.UpdatedAt = now
	return &model
}
