package models

// User is the profile document returned by the backend.
type User struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Gender         string `json:"gender,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// ProfileUpdate carries the editable profile fields. Password fields are
// validated locally before the request is made.
type ProfileUpdate struct {
	Name            string `json:"name,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	DateOfBirth     string `json:"dateOfBirth,omitempty"`
	Gender          string `json:"gender,omitempty"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"-"`
}
