package repository

import (
	"sync"

	"stockroom.io/entities"
	"stockroom.io/infrastructure/database/connection/datastore"
	"stockroom.io/infrastructure/database/repository/mongo"
)

var vendorOnce = sync.Once{}

var vendorRepository mongo.MongoRepository[entities.Vendor]

func VendorRepo() *mongo.MongoRepository[entities.Vendor] {
	vendorOnce.Do(func() {
		vendorRepository = mongo.MongoRepository[entities.Vendor]{Model: datastore.VendorModel}
	})
	return &vendorRepository
}
