package apperrors

import (
	"fmt"
	"net/http"

	"vaultline.io/infrastructure/logger"
	server_response "vaultline.io/infrastructure/serverResponse"
)

func NotFoundError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusNotFound, message, nil, nil, nil)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error) {
	server_response.Responder.Respond(ctx, http.StatusUnprocessableEntity, "Payload validation failed", nil, *errMessages, nil)
}

func AuthenticationError(ctx interface{}, message string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusUnauthorized, message, nil, nil, responseCode)
}

func ForbiddenError(ctx interface{}, message string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusForbidden, message, nil, nil, responseCode)
}

// ExternalDependencyError hides upstream outage details behind a
// generic message while the real error goes to the log.
func ExternalDependencyError(ctx interface{}, serviceName string, statusCode string, err error) {
	logger.Error(fmt.Sprintf("error with %s. status code %s", serviceName, statusCode), logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusServiceUnavailable,
		"Our service is temporarily unavailable. Please try again shortly.", nil, nil, nil)
}

func ErrorProcessingPayload(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "Abnormal payload passed", nil, nil, nil)
}

func FatalServerError(ctx interface{}, err error) {
	logger.Error("fatal server error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusInternalServerError,
		"Our service is temporarily unavailable. Please try again shortly.", nil, nil, nil)
}

func UnknownError(ctx interface{}, err error, responseCode *uint) {
	logger.Error("unknown error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"Something went wrong. Please try again later.", nil, nil, responseCode)
}

// CustomError surfaces a caller-supplied message verbatim. Used for
// upstream validation failures whose text must reach the user intact.
func CustomError(ctx interface{}, msg string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, nil, responseCode)
}
