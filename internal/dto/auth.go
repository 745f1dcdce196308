package dto

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,max=80,nonul" example:"player"`
	Password string `json:"password" validate:"required,max=72" example:"hunter22"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"Registration successful"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,max=80,nonul" example:"player"`
	Password string `json:"password" validate:"required,max=72" example:"hunter22"`
}

type LoginResponseDTO struct {
	Message  string `json:"message" example:"Login successful"`
	Username string `json:"username" example:"player"`
}

type LogoutResponseDTO struct {
	Message string `json:"message" example:"Logged out"`
}

// UserInfoResponseDTO omits the username for anonymous callers.
type UserInfoResponseDTO struct {
	IsAuthenticated bool   `json:"is_authenticated" example:"true"`
	Username        string `json:"username,omitempty" example:"player"`
}
