package model

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates an account plus its role profile.
type RegisterRequest struct {
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone" binding:"required"`
	Password       string  `json:"password" binding:"required,min=6"`
	UserType       string  `json:"user_type" binding:"required,oneof=patient doctor pharmacy"`
	Name           string  `json:"name" binding:"required"`
	Specialization *string `json:"specialization"`
	Location       *string `json:"location"`
}

// RegisterResponse returns the new account id.
type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

// TokenResponse is returned on successful login. ProfileID is the row id of
// the role profile matching the account's user type; it is nil when
// registration left an orphaned account.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserType    string `json:"user_type"`
	UserID      int64  `json:"user_id"`
	ProfileID   *int64 `json:"profile_id"`
}
