package controller

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "vaultline.io/application/appErrors"
	"vaultline.io/application/constants"
	"vaultline.io/application/services/corebank"
	"vaultline.io/application/utils"
	server_response "vaultline.io/infrastructure/serverResponse"
)

// handleUpstreamError translates a core backend failure into the
// response the browser expects. A rejected session answers 401 with a
// redirect target so the UI can bounce to the login page; the stored
// tokens were already cleared by the service layer. A 403 surfaces as
// a role denial. Upstream messages travel verbatim, anything else
// degrades to a generic failure.
func handleUpstreamError(ctx interface{}, err error) {
	var sessionErr *corebank.SessionExpiredError
	if errors.As(err, &sessionErr) {
		server_response.Responder.Respond(ctx, http.StatusUnauthorized,
			"Your session has expired. Please sign in again.", map[string]any{
				"redirectTo": constants.LoginRoute,
			}, nil, utils.GetUIntPointer(constants.SESSION_EXPIRED))
		return
	}

	var upstreamErr *corebank.UpstreamError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.StatusCode == http.StatusForbidden {
			message := upstreamErr.Message
			if message == "" {
				message = "You do not have permission to perform this action."
			}
			apperrors.ForbiddenError(ctx, message, utils.GetUIntPointer(constants.ROLE_DENIED))
			return
		}
		if upstreamErr.Message != "" {
			apperrors.CustomError(ctx, upstreamErr.Message, nil)
			return
		}
		apperrors.ExternalDependencyError(ctx, "corebank",
			fmt.Sprintf("%d", upstreamErr.StatusCode), err)
		return
	}

	apperrors.UnknownError(ctx, err, nil)
}
