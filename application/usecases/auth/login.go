package auth_usecases

import (
	"encoding/json"
	"strings"
	"time"

	"vaultline.io/application/constants"
	"vaultline.io/application/controller/dto"
	"vaultline.io/application/services/corebank"
	"vaultline.io/application/utils"
	"vaultline.io/infrastructure/logger"
	messagequeue "vaultline.io/infrastructure/message_queue"
	queue_tasks "vaultline.io/infrastructure/message_queue/tasks"
	mq_types "vaultline.io/infrastructure/message_queue/types"
	"vaultline.io/infrastructure/session"
)

type LoginResult struct {
	SessionID string
	Landing   string
	Auth      *corebank.AuthResponse
}

// LoginUseCase exchanges credentials with the core backend, persists
// the issued tokens under a fresh session ID and resolves the landing
// route. The session write completes before the landing decision is
// made, so no delay is needed between storing tokens and navigating.
func LoginUseCase(store session.Store, bank *corebank.CoreBankService, body *dto.LoginDTO, ipAddress string, userAgent string) (*LoginResult, error) {
	username := ""
	if body.Username != nil {
		username = *body.Username
	} else if body.Email != nil {
		username = *body.Email
	}

	authResponse, err := bank.Login(corebank.LoginRequest{
		Username: username,
		Password: body.Password,
	})
	if err != nil {
		return nil, err
	}

	sid := utils.GenerateULIDString()
	if err := store.SetTokens(sid, session.TokenPayload{
		AccessToken:  authResponse.AccessToken,
		Token:        authResponse.Token,
		RefreshToken: authResponse.RefreshToken,
		ExpiresIn:    authResponse.ExpiresIn,
	}); err != nil {
		logger.Error("could not persist session tokens after login", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	landing := ResolveLanding(authResponse.Role)

	recordLoginEvent(username, authResponse.Role, sid, ipAddress, userAgent)

	return &LoginResult{
		SessionID: sid,
		Landing:   landing,
		Auth:      authResponse,
	}, nil
}

func RegisterUseCase(store session.Store, bank *corebank.CoreBankService, body *dto.RegisterDTO, ipAddress string, userAgent string) (*LoginResult, error) {
	authResponse, err := bank.Register(corebank.RegisterRequest{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
		Active:   body.Active,
	})
	if err != nil {
		return nil, err
	}

	sid := utils.GenerateULIDString()
	if err := store.SetTokens(sid, session.TokenPayload{
		AccessToken:  authResponse.AccessToken,
		Token:        authResponse.Token,
		RefreshToken: authResponse.RefreshToken,
		ExpiresIn:    authResponse.ExpiresIn,
	}); err != nil {
		return nil, err
	}

	recordLoginEvent(body.Username, authResponse.Role, sid, ipAddress, userAgent)

	return &LoginResult{
		SessionID: sid,
		Landing:   ResolveLanding(authResponse.Role),
		Auth:      authResponse,
	}, nil
}

func LogoutUseCase(store session.Store, sid string) {
	if sid == "" {
		return
	}
	store.ClearTokens(sid)
}

// ResolveLanding picks the dashboard for the role the backend
// reported in its auth response. Note this is a different role source
// than the guards use (they decode the stored token); the two can
// diverge when a token carries no role claims.
func ResolveLanding(role string) string {
	normalized := utils.NormalizeRole(role)
	switch {
	case strings.Contains(normalized, "CLIENT"):
		return constants.ClientLanding
	case strings.Contains(normalized, "AGENT"):
		return constants.AgentLanding
	case strings.Contains(normalized, "ADMIN"):
		return constants.AdminLanding
	default:
		logger.Warning("unknown role in auth response, landing on home", logger.LoggerOptions{
			Key:  "role",
			Data: role,
		})
		return constants.HomeLanding
	}
}

func recordLoginEvent(username string, role string, sid string, ipAddress string, userAgent string) {
	payload, err := json.Marshal(queue_tasks.LoginEventPayload{
		Username:  username,
		Role:      role,
		SessionID: sid,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Timestamp: time.Now(),
	})
	if err != nil {
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Name:     queue_tasks.HandleLoginEventTaskName,
		Payload:  payload,
		Priority: mq_types.Low,
	})
}
