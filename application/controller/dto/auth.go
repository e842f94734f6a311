package dto

type LoginDTO struct {
	// the UI may send either an email or a username; both map to the
	// backend's username field
	Username *string `json:"username" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password string  `json:"password" validate:"required,max=100"`
}

type RegisterDTO struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role" validate:"omitempty,user_role"`
	Active   bool   `json:"active"`
}
