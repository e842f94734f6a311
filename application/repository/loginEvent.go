package repository

import (
	"sync"

	"vaultline.io/entities"
	"vaultline.io/infrastructure/database/connection/datastore"
	"vaultline.io/infrastructure/database/repository/mongo"
)

var loginEventOnce = sync.Once{}

var loginEventRepository mongo.MongoRepository[entities.LoginEvent]

func LoginEventRepo() *mongo.MongoRepository[entities.LoginEvent] {
	loginEventOnce.Do(func() {
		loginEventRepository = mongo.MongoRepository[entities.LoginEvent]{Model: datastore.LoginEventModel}
	})
	return &loginEventRepository
}
