package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login.
// HasAdditionalInfo steers the first navigation target: profiles that are
// already complete go straight to Home, fresh ones enter the onboarding flow.
type LoginResponse struct {
	AccessToken       string `json:"accessToken"`
	HasAdditionalInfo bool   `json:"hasAdditionalInfo"`
	User              struct {
		Student Student `json:"student"`
	} `json:"user"`
}

// RegisterRequest is the body of POST /students/.
type RegisterRequest struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountType string `json:"accountType"`
}
