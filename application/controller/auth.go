package controller

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	apperrors "vaultline.io/application/appErrors"
	"vaultline.io/application/constants"
	"vaultline.io/application/controller/dto"
	"vaultline.io/application/interfaces"
	"vaultline.io/application/services/corebank"
	auth_usecases "vaultline.io/application/usecases/auth"
	"vaultline.io/infrastructure/auth"
	server_response "vaultline.io/infrastructure/serverResponse"
	"vaultline.io/infrastructure/session"
)

func Login(ctx *interfaces.ApplicationContext[dto.LoginDTO]) {
	result, err := auth_usecases.LoginUseCase(session.DefaultStore, corebank.CoreBank, ctx.Body,
		ctx.GetStringContextData("ip"), ctx.UserAgent)
	if err != nil {
		var upstreamErr *corebank.UpstreamError
		if errors.As(err, &upstreamErr) && (upstreamErr.StatusCode == http.StatusUnauthorized || upstreamErr.StatusCode == http.StatusForbidden) {
			message := upstreamErr.Message
			if message == "" {
				message = "Invalid username or password"
			}
			apperrors.AuthenticationError(ctx.Ctx, message, nil)
			return
		}
		handleUpstreamError(ctx.Ctx, err)
		return
	}

	setSessionCookie(ctx.Ctx, result.SessionID)
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "login successful", map[string]any{
		"redirectTo": result.Landing,
		"role":       result.Auth.Role,
	}, nil, nil)
}

func Register(ctx *interfaces.ApplicationContext[dto.RegisterDTO]) {
	result, err := auth_usecases.RegisterUseCase(session.DefaultStore, corebank.CoreBank, ctx.Body,
		ctx.GetStringContextData("ip"), ctx.UserAgent)
	if err != nil {
		handleUpstreamError(ctx.Ctx, err)
		return
	}

	setSessionCookie(ctx.Ctx, result.SessionID)
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "registration successful", map[string]any{
		"redirectTo": result.Landing,
		"role":       result.Auth.Role,
	}, nil, nil)
}

func Logout(ctx *interfaces.ApplicationContext[any]) {
	auth_usecases.LogoutUseCase(session.DefaultStore, ctx.SessionID)
	clearSessionCookie(ctx.Ctx)
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "logged out", map[string]any{
		"redirectTo": constants.LoginRoute,
	}, nil, nil)
}

// Session reports whether the browser still holds a live session and
// which roles its token carries, so the UI can restore state after a
// reload without guessing.
func Session(ctx *interfaces.ApplicationContext[any]) {
	store := session.DefaultStore
	authenticated := ctx.SessionID != "" && store.IsAuthenticated(ctx.SessionID)
	roles := []string{}
	if authenticated {
		if token := store.GetAccessToken(ctx.SessionID); token != nil {
			roles = auth.ParseTokenRoles(*token)
		}
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "session state", map[string]any{
		"authenticated": authenticated,
		"roles":         roles,
	}, nil, nil)
}

func setSessionCookie(ctx interface{}, sid string) {
	ginCtx, ok := ctx.(*gin.Context)
	if !ok {
		return
	}
	ginCtx.SetSameSite(http.SameSiteLaxMode)
	ginCtx.SetCookie(constants.SessionCookieName, sid,
		int(constants.SessionTTL.Seconds()), "/", "", os.Getenv("ENV") == "prod", true)
}

func clearSessionCookie(ctx interface{}) {
	ginCtx, ok := ctx.(*gin.Context)
	if !ok {
		return
	}
	ginCtx.SetCookie(constants.SessionCookieName, "", -1, "/", "", os.Getenv("ENV") == "prod", true)
}
