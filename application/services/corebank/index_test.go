package corebank

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vaultline.io/infrastructure/network"
	"vaultline.io/infrastructure/session"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*CoreBankService, *session.MemoryStore, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	store := session.NewMemoryStore()
	service := &CoreBankService{
		Network:  &network.NetworkController{BaseUrl: server.URL},
		Sessions: store,
	}
	return service, store, server
}

func TestBearerAttachedToAuthenticatedCalls(t *testing.T) {
	var seenAuthorization string
	service, store, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		seenAuthorization = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Operation{})
	})
	store.SetTokens("sid-1", session.TokenPayload{AccessToken: "the-token"})

	if _, err := service.GetOperations("sid-1"); err != nil {
		t.Fatalf("GetOperations: %v", err)
	}
	if seenAuthorization != "Bearer the-token" {
		t.Errorf("Authorization = %q, want Bearer the-token", seenAuthorization)
	}
}

func TestNoBearerWithoutStoredToken(t *testing.T) {
	var seenAuthorization string
	service, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		seenAuthorization = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Operation{})
	})

	if _, err := service.GetOperations("sid-1"); err != nil {
		t.Fatalf("GetOperations: %v", err)
	}
	if seenAuthorization != "" {
		t.Errorf("Authorization = %q, want empty", seenAuthorization)
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	service, store, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	})
	store.SetTokens("sid-1", session.TokenPayload{
		AccessToken:  "stale",
		RefreshToken: "stale-refresh",
		ExpiresIn:    3600,
	})

	_, err := service.GetOperations("sid-1")
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}

	var sessionErr *SessionExpiredError
	if !errors.As(err, &sessionErr) {
		t.Fatalf("error = %T, want *SessionExpiredError", err)
	}
	if sessionErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", sessionErr.StatusCode)
	}
	if sessionErr.Body != `{"message":"token expired"}` {
		t.Errorf("Body = %q, original response body must survive", sessionErr.Body)
	}

	if store.GetAccessToken("sid-1") != nil {
		t.Error("access token survived the 401")
	}
	if store.GetRefreshToken("sid-1") != nil {
		t.Error("refresh token survived the 401")
	}
	if store.IsAuthenticated("sid-1") {
		t.Error("session still authenticated after the 401")
	}
}

func TestUpstreamMessageSurvivesVerbatim(t *testing.T) {
	service, store, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Solde insuffisant"}`))
	})
	store.SetTokens("sid-1", session.TokenPayload{AccessToken: "token"})

	_, err := service.CreateOperation("sid-1", CreateOperationRequest{Type: "WITHDRAWAL", Amount: 1e9})
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("error = %T, want *UpstreamError", err)
	}
	if upstreamErr.Message != "Solde insuffisant" {
		t.Errorf("Message = %q, want the backend message verbatim", upstreamErr.Message)
	}
}

func TestExtractMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message object", `{"message":"nope"}`, "nope"},
		{"bare json string", `"nope"`, "nope"},
		{"other json", `{"error":"nope"}`, ""},
		{"not json", `<html>`, ""},
		{"empty", ``, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractMessage([]byte(tc.body)); got != tc.want {
				t.Errorf("extractMessage(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestLoginDoesNotTouchSessions(t *testing.T) {
	service, store, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %s, want /api/auth/login", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("login carried Authorization %q", auth)
		}
		json.NewEncoder(w).Encode(AuthResponse{AccessToken: "fresh", Role: "CLIENT"})
	})

	response, err := service.Login(LoginRequest{Username: "jdoe", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if response.AccessToken != "fresh" || response.Role != "CLIENT" {
		t.Errorf("response = %+v", response)
	}
	if store.GetAccessToken("sid-1") != nil {
		t.Error("login stored tokens itself, that is the use case's job")
	}
}
