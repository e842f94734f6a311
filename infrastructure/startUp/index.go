package startup

import (
	"vaultline.io/application/services/corebank"
	"vaultline.io/infrastructure/database"
	"vaultline.io/infrastructure/database/connection/datastore"
	fileupload "vaultline.io/infrastructure/file_upload"
	"vaultline.io/infrastructure/ipresolver"
	"vaultline.io/infrastructure/logger"
	"vaultline.io/infrastructure/session"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	database.SetUpDatabase()
	session.InitialiseSessionStore()
	corebank.InitialiseCoreBankService()
	logger.RequestMetricMonitor.Init()
	fileupload.InitialiseFileUploader()
	ipresolver.IPResolverInstance.ConnectToDB()
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
}
