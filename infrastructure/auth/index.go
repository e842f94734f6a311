package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// ParseTokenPayload decodes the claims section of a compact token
// without verifying its signature. Signature verification is the core
// backend's job; the gateway only reads claims for routing decisions.
// Malformed or empty input yields nil, never an error.
func ParseTokenPayload(token string) map[string]any {
	if token == "" {
		return nil
	}
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil
	}
	payload := strings.ReplaceAll(parts[1], "-", "+")
	payload = strings.ReplaceAll(payload, "_", "/")
	for len(payload)%4 != 0 {
		payload += "="
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	var claims map[string]any
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return nil
	}
	return claims
}

// ParseTokenRoles derives the upper-cased role set from a token's
// claims. Issuers disagree on where roles live, so every known shape
// contributes cumulatively: a single role field, a roles array,
// authority objects, Keycloak realm roles, a space-delimited scope
// string and a scp array. Duplicates are kept; failures yield an
// empty slice.
func ParseTokenRoles(token string) []string {
	claims := ParseTokenPayload(token)
	roles := []string{}
	if claims == nil {
		return roles
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		roles = append(roles, role)
	}
	if rawRoles, ok := claims["roles"].([]any); ok {
		for _, r := range rawRoles {
			roles = append(roles, coerceString(r))
		}
	}
	if authorities, ok := claims["authorities"].([]any); ok {
		for _, a := range authorities {
			switch entry := a.(type) {
			case map[string]any:
				if authority, ok := entry["authority"]; ok {
					roles = append(roles, coerceString(authority))
				}
			case string:
				roles = append(roles, entry)
			}
		}
	}
	if realmAccess, ok := claims["realm_access"].(map[string]any); ok {
		if realmRoles, ok := realmAccess["roles"].([]any); ok {
			for _, r := range realmRoles {
				roles = append(roles, coerceString(r))
			}
		}
	}
	if scope, ok := claims["scope"].(string); ok && scope != "" {
		roles = append(roles, strings.Split(scope, " ")...)
	}
	if scp, ok := claims["scp"].([]any); ok {
		for _, s := range scp {
			roles = append(roles, coerceString(s))
		}
	}
	for i, r := range roles {
		roles[i] = strings.ToUpper(r)
	}
	return roles
}

// HasRole reports whether any derived role satisfies the predicate.
func HasRole(token string, predicate func(role string) bool) bool {
	for _, role := range ParseTokenRoles(token) {
		if predicate(role) {
			return true
		}
	}
	return false
}

func coerceString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
