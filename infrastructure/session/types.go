package session

// TokenPayload carries whatever token material a backend auth
// response included. Zero-valued fields are treated as absent and
// leave existing storage untouched.
type TokenPayload struct {
	AccessToken  string
	Token        string
	RefreshToken string
	ExpiresIn    int64 // seconds until the access token expires
}

// Store is the custodial home of the session triple. It performs no
// claim or signature validation; it only remembers what the backend
// issued and answers whether the triple still looks usable.
type Store interface {
	SetTokens(sid string, payload TokenPayload) error
	GetAccessToken(sid string) *string
	GetRefreshToken(sid string) *string
	IsAuthenticated(sid string) bool
	ClearTokens(sid string)
}
