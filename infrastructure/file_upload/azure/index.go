package azure

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	_azblob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azblob_sas "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
	azblob "github.com/Azure/azure-storage-blob-go/azblob"
	"vaultline.io/infrastructure/file_upload/types"
	"vaultline.io/infrastructure/logger"
)

// AzureBlobSignedURLService issues short-lived SAS URLs for operation
// justification documents archived to blob storage, so large files
// never stream through the gateway.
type AzureBlobSignedURLService struct {
	AccountName   string
	ContainerName string
	AccountKey    string
}

func (azurlservice *AzureBlobSignedURLService) GenerateSignedURL(fileName string, permission types.SignedURLPermission) (*string, error) {
	if permission.Read == permission.Write {
		return nil, errors.New("permission must be either read or write")
	}
	_credential, err := _azblob.NewSharedKeyCredential(azurlservice.AccountName, azurlservice.AccountKey)
	if err != nil {
		logger.Error("error generating _azblob shared key credential", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	credential, err := azblob.NewSharedKeyCredential(azurlservice.AccountName, azurlservice.AccountKey)
	if err != nil {
		logger.Error("error generating azblob shared key credential", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	URL, err := url.Parse(fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s", azurlservice.AccountName, azurlservice.ContainerName, fileName))
	if err != nil {
		logger.Error("error parsing blob url", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	blobURL := azblob.NewBlockBlobURL(*URL, azblob.NewPipeline(credential, azblob.PipelineOptions{}))

	sasQueryParams, err := azblob_sas.BlobSignatureValues{
		Protocol:      azblob_sas.ProtocolHTTPS,
		StartTime:     time.Now().UTC(),
		ExpiryTime:    time.Now().UTC().Add(5 * time.Minute), // url is valid for only 5 mins
		Permissions:   (&azblob_sas.BlobPermissions{Read: permission.Read, Write: permission.Write, Delete: permission.Delete}).String(),
		ContainerName: azurlservice.ContainerName,
		BlobName:      fileName,
	}.SignWithSharedKey(_credential)
	if err != nil {
		logger.Error("error signing blob signature values", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	sasURL := fmt.Sprintf("%s?%s", blobURL.String(), sasQueryParams.Encode())
	return &sasURL, nil
}

func (azurlservice *AzureBlobSignedURLService) GenerateDownloadURL(fileName string) (*string, error) {
	return azurlservice.GenerateSignedURL(fileName, types.SignedURLPermission{Read: true})
}

func (azurlservice *AzureBlobSignedURLService) GenerateUploadURL(fileName string) (*string, error) {
	return azurlservice.GenerateSignedURL(fileName, types.SignedURLPermission{Write: true})
}

func (azurlservice *AzureBlobSignedURLService) CheckFileExists(fileName string) (bool, error) {
	credential, err := azblob.NewSharedKeyCredential(azurlservice.AccountName, azurlservice.AccountKey)
	if err != nil {
		return false, err
	}
	URL, err := url.Parse(fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s", azurlservice.AccountName, azurlservice.ContainerName, fileName))
	if err != nil {
		return false, err
	}
	blobURL := azblob.NewBlockBlobURL(*URL, azblob.NewPipeline(credential, azblob.PipelineOptions{}))
	_, err = blobURL.GetProperties(context.TODO(), azblob.BlobAccessConditions{}, azblob.ClientProvidedKeyOptions{})
	if err != nil {
		if serr, ok := err.(azblob.StorageError); ok {
			if serr.ServiceCode() == azblob.ServiceCodeBlobNotFound {
				return false, nil
			}
		}
		return false, err
	}
	return true, nil
}

func (azurlservice *AzureBlobSignedURLService) DeleteFile(fileName string) error {
	credential, err := azblob.NewSharedKeyCredential(azurlservice.AccountName, azurlservice.AccountKey)
	if err != nil {
		return err
	}
	URL, err := url.Parse(fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s", azurlservice.AccountName, azurlservice.ContainerName, fileName))
	if err != nil {
		return err
	}
	blobURL := azblob.NewBlockBlobURL(*URL, azblob.NewPipeline(credential, azblob.PipelineOptions{}))
	_, err = blobURL.Delete(context.TODO(), azblob.DeleteSnapshotsOptionInclude, azblob.BlobAccessConditions{})
	if err != nil {
		logger.Error("error deleting blob", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	return nil
}
