package repository

import (
	"sync"

	"stockroom.io/entities"
	"stockroom.io/infrastructure/database/connection/datastore"
	"stockroom.io/infrastructure/database/repository/mongo"
)

var productOnce = sync.Once{}

var productRepository mongo.MongoRepository[entities.Product]

func ProductRepo() *mongo.MongoRepository[entities.Product] {
	productOnce.Do(func() {
		productRepository = mongo.MongoRepository[entities.Product]{Model: datastore.ProductModel}
	})
	return &productRepository
}
