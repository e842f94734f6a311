package middlewares

import (
	"strings"

	"vaultline.io/application/constants"
	"vaultline.io/infrastructure/auth"
	"vaultline.io/infrastructure/session"
)

// GuardResult is the synchronous outcome of a navigation guard. A
// denial always names the redirect target.
type GuardResult struct {
	Allowed    bool
	RedirectTo string
	Roles      []string
}

func allow(roles []string) GuardResult {
	return GuardResult{Allowed: true, Roles: roles}
}

func deny() GuardResult {
	return GuardResult{Allowed: false, RedirectTo: constants.LoginRoute}
}

// ClientGuard admits any session holding an access token. Role
// membership is not checked for the client section; the backend
// enforces ownership on every operation anyway.
func ClientGuard(store session.Store, sid string) GuardResult {
	token := store.GetAccessToken(sid)
	if token == nil {
		return deny()
	}
	return allow(auth.ParseTokenRoles(*token))
}

// AgentGuard requires a role containing AGENT somewhere in the
// derived role set (covers AGENT and AGENT_BANCAIRE variants).
func AgentGuard(store session.Store, sid string) GuardResult {
	token := store.GetAccessToken(sid)
	if token == nil {
		return deny()
	}
	if !auth.HasRole(*token, func(role string) bool {
		return strings.Contains(role, "AGENT")
	}) {
		return deny()
	}
	return allow(auth.ParseTokenRoles(*token))
}

// AdminGuard admits any authenticated session without a role check.
// This mirrors the long-standing behaviour of the admin section,
// which relies on the backend rejecting non-admin credentials on
// every /api/admin call.
func AdminGuard(store session.Store, sid string) GuardResult {
	token := store.GetAccessToken(sid)
	if token == nil {
		return deny()
	}
	return allow(auth.ParseTokenRoles(*token))
}
