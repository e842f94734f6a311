package repository

import (
	"sync"

	"vaultline.io/entities"
	"vaultline.io/infrastructure/database/connection/datastore"
	"vaultline.io/infrastructure/database/repository/mongo"
)

var activityLogOnce = sync.Once{}

var activityLogRepository mongo.MongoRepository[entities.ActivityLog]

func ActivityLogRepo() *mongo.MongoRepository[entities.ActivityLog] {
	activityLogOnce.Do(func() {
		activityLogRepository = mongo.MongoRepository[entities.ActivityLog]{Model: datastore.ActivityLogModel}
	})
	return &activityLogRepository
}
