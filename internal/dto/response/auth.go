package response

// Field names mirror what the frontend stores in localStorage.

type RegisterResponse struct {
	Success  bool   `json:"success"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type MeResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
