package models

// Captcha is returned by GET /captcha. Image is a base64 data URL.
type Captcha struct {
	CaptchaID    string `json:"captcha_id"`
	CaptchaImage string `json:"captcha_image"`
}

type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	CaptchaID string `json:"captcha_id"`
	Captcha   string `json:"captcha"`
}

// LoginResult carries the three parts of a session granted at login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
	Menus []Menu `json:"menus"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nickname  string `json:"nickname,omitempty"`
	CaptchaID string `json:"captcha_id"`
	Captcha   string `json:"captcha"`
}
