package entities

import (
	"time"

	"stockroom.io/application/utils"
)

// This represents a dashboard user account
type User struct {
	Email        string   `bson:"email" json:"email" validate:"email"`
	Name         string   `bson:"name" json:"name"`
	PasswordHash string   `bson:"passwordHash" json:"-"`
	Groups       []string `bson:"groups" json:"groups"`
	UserType     string   `bson:"userType" json:"userType"`
	Deactivated  bool     `bson:"deactivated" json:"deactivated"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model User) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		model.ID = utils.GenerateULIDString()
	}
	model.UpdatedAt = now
	return &model
}
