package corebank

import "fmt"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// AuthResponse tolerates both token field spellings the backend has
// shipped with.
type AuthResponse struct {
	Token        string `json:"token"`
	TokenType    string `json:"tokenType"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	Role         string `json:"role"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	User         *struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

type Operation struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"createdAt"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	IsPositive  bool    `json:"isPositive"`
	HasFile     bool    `json:"hasFile"`
	Description *string `json:"description"`
	ClientName  *string `json:"clientName"`
	ClientEmail *string `json:"clientEmail"`
}

type AccountInfo struct {
	AccountNumber string  `json:"accountNumber"`
	Balance       float64 `json:"balance"`
}

type CreateOperationRequest struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description,omitempty"`
}

type OperationValidationRequest struct {
	Comment *string `json:"comment,omitempty"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

type UserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// SessionExpiredError marks an upstream 401. By the time a caller
// sees it the session triple has already been cleared; the original
// upstream status and body ride along for local handling.
type SessionExpiredError struct {
	StatusCode int
	Body       string
}

func (e *SessionExpiredError) Error() string {
	return "session rejected by the core backend"
}

// UpstreamError carries a non-401 upstream failure. Message holds the
// backend's own text when it sent one, so validation errors surface
// verbatim.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("core backend returned status %d", e.StatusCode)
}
