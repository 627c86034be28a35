package request_models

type SignUpRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=150"`
	Email           string `json:"email" binding:"required,email"`
	FirstName       string `json:"first_name" binding:"max=150"`
	LastName        string `json:"last_name" binding:"max=150"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}
