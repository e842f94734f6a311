package corebank

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"vaultline.io/infrastructure/logger"
	"vaultline.io/infrastructure/network"
	"vaultline.io/infrastructure/session"
)

var CoreBank *CoreBankService

// CoreBankService talks to the core banking REST backend on behalf of
// a browser session. Every authenticated call goes through
// bearerHeaders and checkAuthorized: the former attaches the stored
// access token, the latter reacts to a 401 by clearing the session
// before handing the failure back to the caller.
type CoreBankService struct {
	Network  *network.NetworkController
	Sessions session.Store
}

func InitialiseCoreBankService() {
	CoreBank = &CoreBankService{
		Network: &network.NetworkController{
			BaseUrl: os.Getenv("CORE_BANK_URL"),
		},
		Sessions: session.DefaultStore,
	}
}

func (cb *CoreBankService) bearerHeaders(sid string) *map[string]string {
	headers := map[string]string{}
	token := cb.Sessions.GetAccessToken(sid)
	if token != nil {
		headers["Authorization"] = fmt.Sprintf("Bearer %s", *token)
	}
	return &headers
}

// checkAuthorized inspects an upstream status. A 401 force-ends the
// session; the original status and body still reach the caller inside
// the returned error.
func (cb *CoreBankService) checkAuthorized(sid string, statusCode int, body []byte) error {
	if statusCode != http.StatusUnauthorized {
		return nil
	}
	logger.Warning("core backend rejected session credentials, clearing session", logger.LoggerOptions{
		Key:  "statusCode",
		Data: statusCode,
	})
	cb.Sessions.ClearTokens(sid)
	return &SessionExpiredError{StatusCode: statusCode, Body: string(body)}
}

// upstreamFailure converts a non-2xx status into an UpstreamError,
// preserving the backend's own message when the body carried one.
func upstreamFailure(statusCode int, body []byte) error {
	return &UpstreamError{StatusCode: statusCode, Message: extractMessage(body)}
}

func extractMessage(body []byte) string {
	var withMessage struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &withMessage); err == nil && withMessage.Message != "" {
		return withMessage.Message
	}
	var plain string
	if err := json.Unmarshal(body, &plain); err == nil {
		return plain
	}
	return ""
}

func decode[T any](body []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		logger.Error("could not unmarshal core backend response", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	return &result, nil
}
