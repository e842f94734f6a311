package fileupload

import (
	"os"

	"vaultline.io/infrastructure/file_upload/azure"
	"vaultline.io/infrastructure/file_upload/types"
)

// FileUploader stays nil unless an Azure archive is configured;
// callers fall back to proxying documents through the backend.
var FileUploader types.FileUploaderType

func InitialiseFileUploader() {
	if os.Getenv("AZURE_STORAGE_ACCOUNT_NAME") == "" {
		return
	}
	FileUploader = &azure.AzureBlobSignedURLService{
		AccountName:   os.Getenv("AZURE_STORAGE_ACCOUNT_NAME"),
		AccountKey:    os.Getenv("AZURE_STORAGE_ACCOUNT_KEY"),
		ContainerName: os.Getenv("AZURE_CONTAINER_NAME"),
	}
}
