package auth_usecases

import "testing"

func TestResolveLanding(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{"CLIENT", "/client"},
		{"client", "/client"},
		{"ROLE_CLIENT", "/client"},
		{"AGENT", "/agent"},
		{"AGENT_BANCAIRE", "/agent"},
		{"agent_bancaire", "/agent"},
		{"ADMIN", "/admin"},
		{" admin ", "/admin"},
		{"AUDITOR", "/"},
		{"", "/"},
	}
	for _, tc := range cases {
		if got := ResolveLanding(tc.role); got != tc.want {
			t.Errorf("ResolveLanding(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}
