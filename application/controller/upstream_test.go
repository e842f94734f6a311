package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"vaultline.io/application/constants"
	"vaultline.io/application/interfaces"
	"vaultline.io/application/services/corebank"
	"vaultline.io/infrastructure/network"
	"vaultline.io/infrastructure/session"
)

type responseEnvelope struct {
	Message      string         `json:"message"`
	Body         map[string]any `json:"body"`
	ResponseCode uint           `json:"response_code"`
}

func setUpstream(t *testing.T, handler http.HandlerFunc) *session.MemoryStore {
	t.Helper()
	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	store := session.NewMemoryStore()
	previous := corebank.CoreBank
	corebank.CoreBank = &corebank.CoreBankService{
		Network:  &network.NetworkController{BaseUrl: upstream.URL},
		Sessions: store,
	}
	t.Cleanup(func() { corebank.CoreBank = previous })
	return store
}

func newGinContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(recorder)
	ginCtx.Request = httptest.NewRequest(http.MethodGet, "/api/client/operations", nil)
	return ginCtx, recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var envelope responseEnvelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return envelope
}

func TestRejectedSessionAnswersLoginRedirect(t *testing.T) {
	store := setUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	})
	store.SetTokens("sid-1", session.TokenPayload{
		AccessToken:  "stale",
		RefreshToken: "stale-refresh",
	})

	ginCtx, recorder := newGinContext(t)
	GetOperations(&interfaces.ApplicationContext[any]{Ctx: ginCtx, SessionID: "sid-1"})

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", recorder.Code)
	}
	envelope := decodeEnvelope(t, recorder)
	if envelope.Body["redirectTo"] != constants.LoginRoute {
		t.Errorf("redirectTo = %v, want %q", envelope.Body["redirectTo"], constants.LoginRoute)
	}
	if envelope.ResponseCode != constants.SESSION_EXPIRED {
		t.Errorf("response_code = %d, want %d", envelope.ResponseCode, constants.SESSION_EXPIRED)
	}
	if store.GetAccessToken("sid-1") != nil || store.GetRefreshToken("sid-1") != nil {
		t.Error("tokens survived the rejected session")
	}
}

func TestUpstreamForbiddenAnswersRoleDenied(t *testing.T) {
	store := setUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"insufficient privileges"}`))
	})
	store.SetTokens("sid-1", session.TokenPayload{AccessToken: "token"})

	ginCtx, recorder := newGinContext(t)
	GetOperations(&interfaces.ApplicationContext[any]{Ctx: ginCtx, SessionID: "sid-1"})

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", recorder.Code)
	}
	envelope := decodeEnvelope(t, recorder)
	if envelope.Message != "insufficient privileges" {
		t.Errorf("message = %q, want the backend message verbatim", envelope.Message)
	}
	if envelope.ResponseCode != constants.ROLE_DENIED {
		t.Errorf("response_code = %d, want %d", envelope.ResponseCode, constants.ROLE_DENIED)
	}
	if store.GetAccessToken("sid-1") == nil {
		t.Error("a 403 must not clear the session")
	}
}
