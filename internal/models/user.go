package models

// UserProfile is the authenticated user's account record
type UserProfile struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FullName     string  `json:"fullName"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// UpdateProfileData carries the mutable profile fields. The password pair is
// only acted on by the server when both fields are present.
type UpdateProfileData struct {
	FullName        *string `json:"fullName,omitempty"`
	Email           *string `json:"email,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
}
