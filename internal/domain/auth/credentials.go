package auth

import "strings"

// MinPasswordLength is the shortest password accepted by reset and change flows.
const MinPasswordLength = 6

// LoginCredentials is the email/password pair sent to the login endpoint.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupCredentials is the payload for account creation.
type SignupCredentials struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ResetPasswordInput completes a password reset started from an emailed link.
type ResetPasswordInput struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePasswordInput changes the password of the signed-in user.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResult is what login, signup and social sign-in return: the account and its bearer credential.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// NormalizeEmail trims and lower-cases an address before it is sent anywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
