package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vaultline.io/application/controller/dto"
	"vaultline.io/application/interfaces"
	"vaultline.io/application/services/corebank"
	fileupload "vaultline.io/infrastructure/file_upload"
	server_response "vaultline.io/infrastructure/serverResponse"
)

func GetAccountInfo(ctx *interfaces.ApplicationContext[any]) {
	account, err := corebank.CoreBank.GetAccountInfo(ctx.SessionID)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "account info retrieved", account, nil, nil)
}

func GetOperations(ctx *interfaces.ApplicationContext[any]) {
	operations, err := corebank.CoreBank.GetOperations(ctx.SessionID)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "operations retrieved", toOperationViews(operations), nil, nil)
}

func CreateOperation(ctx *interfaces.ApplicationContext[dto.CreateOperationDTO]) {
	operation, err := corebank.CoreBank.CreateOperation(ctx.SessionID, corebank.CreateOperationRequest{
		Type:        ctx.Body.Type,
		Amount:      ctx.Body.Amount,
		Description: ctx.Body.Description,
	})
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "operation created", toOperationView(*operation), nil, nil)
}

// DownloadOperationDocument hands the browser a short-lived signed URL
// when the document was archived to blob storage, otherwise it proxies
// the document bytes straight through. Documents the backend holds but
// never archived always take the proxy path.
func DownloadOperationDocument(ctx *interfaces.ApplicationContext[any], operationID string) {
	if fileupload.FileUploader != nil {
		blobName := operationDocumentBlobName(operationID)
		exists, err := fileupload.FileUploader.CheckFileExists(blobName)
		if err == nil && exists {
			url, err := fileupload.FileUploader.GenerateDownloadURL(blobName)
			if err == nil && url != nil {
				server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "document url generated", map[string]any{
					"url": *url,
				}, nil, nil)
				return
			}
		}
	}

	document, contentType, err := corebank.CoreBank.GetOperationDocument(ctx.SessionID, operationID)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	if ginCtx, ok := ctx.Ctx.(*gin.Context); ok {
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		ginCtx.Data(http.StatusOK, contentType, document)
	}
}

func UploadOperationDocument(ctx *interfaces.ApplicationContext[dto.UploadDocumentDTO]) {
	err := corebank.CoreBank.UploadOperationDocument(ctx.SessionID, ctx.Body.OperationID, ctx.Body.FileName, ctx.Body.File)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "document uploaded", nil, nil, nil)
}

func operationDocumentBlobName(operationID string) string {
	return "operations/" + operationID + "/document"
}
