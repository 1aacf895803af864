package repository

import (
	"sync"

	"stockroom.io/entities"
	"stockroom.io/infrastructure/database/connection/datastore"
	"stockroom.io/infrastructure/database/repository/mongo"
)

var inventoryOnce = sync.Once{}

var inventoryRepository mongo.MongoRepository[entities.InventoryItem]

func InventoryRepo() *mongo.MongoRepository[entities.InventoryItem] {
	inventoryOnce.Do(func() {
		inventoryRepository = mongo.MongoRepository[entities.InventoryItem]{Model: datastore.InventoryModel}
	})
	return &inventoryRepository
}
