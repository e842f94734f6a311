package controller

import (
	"net/http"

	"vaultline.io/application/controller/dto"
	"vaultline.io/application/interfaces"
	"vaultline.io/application/services/corebank"
	server_response "vaultline.io/infrastructure/serverResponse"
)

func GetPendingOperations(ctx *interfaces.ApplicationContext[any]) {
	operations, err := corebank.CoreBank.GetPendingOperations(ctx.SessionID)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "pending operations retrieved", toOperationViews(operations), nil, nil)
}

func ApproveOperation(ctx *interfaces.ApplicationContext[dto.ValidateOperationDTO], operationID string) {
	operation, err := corebank.CoreBank.ApproveOperation(ctx.SessionID, operationID, ctx.Body.Comment)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "operation approved", toOperationView(*operation), nil, nil)
}

func RejectOperation(ctx *interfaces.ApplicationContext[dto.ValidateOperationDTO], operationID string) {
	operation, err := corebank.CoreBank.RejectOperation(ctx.SessionID, operationID, ctx.Body.Comment)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "operation rejected", toOperationView(*operation), nil, nil)
}
