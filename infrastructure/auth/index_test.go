package auth

import (
	"encoding/base64"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".signature"
}

func TestParseTokenPayload(t *testing.T) {
	token := makeToken(t, map[string]any{"sub": "jdoe", "role": "ADMIN"})
	claims := ParseTokenPayload(token)
	if claims == nil {
		t.Fatal("expected claims, got nil")
	}
	if claims["sub"] != "jdoe" {
		t.Errorf("sub = %v, want jdoe", claims["sub"])
	}
	if claims["role"] != "ADMIN" {
		t.Errorf("role = %v, want ADMIN", claims["role"])
	}
}

func TestParseTokenPayloadTwoSegments(t *testing.T) {
	// a signature-less token still decodes
	token := makeToken(t, map[string]any{"sub": "jdoe"})
	twoParts := strings.Join(strings.Split(token, ".")[:2], ".")
	if claims := ParseTokenPayload(twoParts); claims == nil || claims["sub"] != "jdoe" {
		t.Errorf("ParseTokenPayload(%q) = %v, want sub=jdoe", twoParts, claims)
	}
}

func TestParseTokenPayloadURLSafeAlphabet(t *testing.T) {
	// payload chosen so its encoding uses both '-' and '_' and needs
	// padding restored before decoding
	payload := []byte(`{"a":"??>","b":"a?~b"}`)
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	if !strings.Contains(encoded, "-") || !strings.Contains(encoded, "_") {
		t.Fatalf("test payload no longer exercises the url-safe alphabet: %s", encoded)
	}
	parsed := ParseTokenPayload("header." + encoded + ".sig")
	if parsed == nil || parsed["a"] != "??>" || parsed["b"] != "a?~b" {
		t.Errorf("ParseTokenPayload = %v, want a=??> b=a?~b", parsed)
	}
}

func TestParseTokenPayloadMalformed(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no dots", "justonesegment"},
		{"bad base64", "header.###.sig"},
		{"payload not json", "header." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig"},
		{"payload is json array", "header." + base64.RawURLEncoding.EncodeToString([]byte("[1,2]")) + ".sig"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if claims := ParseTokenPayload(tc.token); claims != nil {
				t.Errorf("ParseTokenPayload(%q) = %v, want nil", tc.token, claims)
			}
		})
	}
}

func TestParseTokenRoles(t *testing.T) {
	cases := []struct {
		name   string
		claims map[string]any
		want   []string
	}{
		{
			name:   "single role field",
			claims: map[string]any{"role": "ADMIN"},
			want:   []string{"ADMIN"},
		},
		{
			name:   "roles array",
			claims: map[string]any{"roles": []any{"client", "agent"}},
			want:   []string{"CLIENT", "AGENT"},
		},
		{
			name: "authority objects",
			claims: map[string]any{"authorities": []any{
				map[string]any{"authority": "ROLE_AGENT"},
				"ROLE_CLIENT",
			}},
			want: []string{"ROLE_AGENT", "ROLE_CLIENT"},
		},
		{
			name: "keycloak realm roles",
			claims: map[string]any{"realm_access": map[string]any{
				"roles": []any{"agent_bancaire"},
			}},
			want: []string{"AGENT_BANCAIRE"},
		},
		{
			name:   "space delimited scope",
			claims: map[string]any{"scope": "openid client"},
			want:   []string{"OPENID", "CLIENT"},
		},
		{
			name:   "scp array",
			claims: map[string]any{"scp": []any{"admin"}},
			want:   []string{"ADMIN"},
		},
		{
			name: "cumulative across shapes",
			claims: map[string]any{
				"role":  "client",
				"roles": []any{"CLIENT"},
				"scope": "client",
			},
			want: []string{"CLIENT", "CLIENT", "CLIENT"},
		},
		{
			name:   "non-string entries coerced",
			claims: map[string]any{"roles": []any{float64(42)}},
			want:   []string{"42"},
		},
		{
			name:   "no role claims",
			claims: map[string]any{"sub": "jdoe"},
			want:   []string{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseTokenRoles(makeToken(t, tc.claims))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseTokenRoles = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseTokenRolesMalformedToken(t *testing.T) {
	got := ParseTokenRoles("garbage")
	if got == nil || len(got) != 0 {
		t.Errorf("ParseTokenRoles(garbage) = %v, want empty slice", got)
	}
}

func TestHasRole(t *testing.T) {
	token := makeToken(t, map[string]any{"roles": []any{"AGENT_BANCAIRE"}})
	contains := func(target string) func(string) bool {
		return func(role string) bool { return strings.Contains(role, target) }
	}
	if !HasRole(token, contains("AGENT")) {
		t.Error("expected AGENT_BANCAIRE to satisfy an AGENT predicate")
	}
	if HasRole(token, contains("ADMIN")) {
		t.Error("did not expect an ADMIN match")
	}
}
