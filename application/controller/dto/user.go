package dto

type UserDTO struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"omitempty,password"`
	Role     string `json:"role" validate:"required,user_role"`
	Active   bool   `json:"active"`
}
