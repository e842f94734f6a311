package constants

import "time"

// SessionCookieName carries the browser session ID the gateway keys
// its token storage by.
const SessionCookieName = "vaultline_sid"

// Storage key suffixes for the session triple. Each lives under its
// own key so a partial backend response never clobbers the others.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	TokenExpiresAt  = "token_expires_at"
)

// SessionTTL bounds how long an abandoned session triple survives in
// the cache.
const SessionTTL = 24 * time.Hour

const LoginRoute = "/login"

// Landing routes resolved from the backend's login response role.
const (
	ClientLanding = "/client"
	AgentLanding  = "/agent"
	AdminLanding  = "/admin"
	HomeLanding   = "/"
)

const (
	SESSION_EXPIRED uint = 4010
	ROLE_DENIED     uint = 4030
)
