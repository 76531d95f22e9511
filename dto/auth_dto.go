package dto

type SignupInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	ProductKey string `json:"productKey"`
}

type SigninInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type GenerateKeyInput struct {
	Email    string `json:"email" binding:"required,email"`
	UserType string `json:"userType" binding:"required"`
}

type ProductKeyResponse struct {
	ProductKey string `json:"productKey"`
}

// UserResponse is the public projection of a User: no password, no role.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
