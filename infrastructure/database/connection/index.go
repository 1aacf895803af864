package connection

import (
	"stockroom.io/infrastructure/database/connection/cache"
	"stockroom.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	cache.ConnectToCache()
}
