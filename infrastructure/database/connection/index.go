package connection

import (
	"vaultline.io/infrastructure/database/connection/cache"
	"vaultline.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	cache.ConnectToCache()
}
