package controller

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo/options"
	apperrors "vaultline.io/application/appErrors"
	"vaultline.io/application/controller/dto"
	"vaultline.io/application/interfaces"
	"vaultline.io/application/repository"
	"vaultline.io/application/services/corebank"
	server_response "vaultline.io/infrastructure/serverResponse"
)

func ListUsers(ctx *interfaces.ApplicationContext[any]) {
	users, err := corebank.CoreBank.ListUsers(ctx.SessionID)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "users retrieved", users, nil, nil)
}

func CreateUser(ctx *interfaces.ApplicationContext[dto.UserDTO]) {
	user, err := corebank.CoreBank.CreateUser(ctx.SessionID, userRequestFromDTO(ctx.Body))
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "user created", user, nil, nil)
}

func UpdateUser(ctx *interfaces.ApplicationContext[dto.UserDTO], userID string) {
	user, err := corebank.CoreBank.UpdateUser(ctx.SessionID, userID, userRequestFromDTO(ctx.Body))
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "user updated", user, nil, nil)
}

func ActivateUser(ctx *interfaces.ApplicationContext[any], userID string) {
	if err := corebank.CoreBank.ActivateUser(ctx.SessionID, userID); err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "user activated", nil, nil, nil)
}

func SuspendUser(ctx *interfaces.ApplicationContext[any], userID string) {
	if err := corebank.CoreBank.SuspendUser(ctx.SessionID, userID); err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "user suspended", nil, nil, nil)
}

func DeleteUser(ctx *interfaces.ApplicationContext[any], userID string) {
	if err := corebank.CoreBank.DeleteUser(ctx.SessionID, userID); err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "user deleted", nil, nil, nil)
}

func ListAllOperations(ctx *interfaces.ApplicationContext[any], status *string) {
	operations, err := corebank.CoreBank.ListAllOperations(ctx.SessionID, status)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "operations retrieved", toOperationViews(operations), nil, nil)
}

func ForceApproveOperation(ctx *interfaces.ApplicationContext[dto.ValidateOperationDTO], operationID string) {
	operation, err := corebank.CoreBank.ForceApprove(ctx.SessionID, operationID, ctx.Body.Comment)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "operation force approved", toOperationView(*operation), nil, nil)
}

func ForceRejectOperation(ctx *interfaces.ApplicationContext[dto.ForceRejectDTO], operationID string) {
	operation, err := corebank.CoreBank.ForceReject(ctx.SessionID, operationID, ctx.Body.Comment)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "operation force rejected", toOperationView(*operation), nil, nil)
}

// GetAdminStats aggregates the dashboard counters from the user and
// operation listings in one round.
func GetAdminStats(ctx *interfaces.ApplicationContext[any]) {
	users, err := corebank.CoreBank.ListUsers(ctx.SessionID)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}
	operations, err := corebank.CoreBank.ListAllOperations(ctx.SessionID, nil)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}

	activeUsers := 0
	for _, user := range users {
		if user.Active {
			activeUsers++
		}
	}
	systemVolume := 0.0
	for _, operation := range operations {
		systemVolume += operation.Amount
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "stats retrieved", map[string]any{
		"totalUsers":      len(users),
		"activeUsers":     activeUsers,
		"totalOperations": len(operations),
		"systemVolume":    systemVolume,
	}, nil, nil)
}

// GetActivityLog returns the most recent gateway requests recorded
// for audit, newest first.
func GetActivityLog(ctx *interfaces.ApplicationContext[any]) {
	findOptions := options.Find().
		SetSort(map[string]any{"timestamp": -1}).
		SetLimit(100)
	logs, err := repository.ActivityLogRepo().FindManyByFilter(map[string]any{}, findOptions)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "activity retrieved", logs, nil, nil)
}

func userRequestFromDTO(body *dto.UserDTO) corebank.UserRequest {
	return corebank.UserRequest{
		Username: body.Username,
		Email:    body.Email,
		Name:     body.Name,
		Password: body.Password,
		Role:     body.Role,
		Active:   body.Active,
	}
}
