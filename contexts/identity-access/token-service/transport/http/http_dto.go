package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	UserID int64 `json:"user_id"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
