package startup

import (
	"stockroom.io/infrastructure/database"
	"stockroom.io/infrastructure/database/connection/datastore"
	fileupload "stockroom.io/infrastructure/file_upload"
	"stockroom.io/infrastructure/logger"
	messagequeue "stockroom.io/infrastructure/message_queue"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	database.SetUpDatabase()
	fileupload.InitialiseFileUploader()
	messagequeue.StartQueue()
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
}
