// Package models defines the data shapes exchanged with the Fynd backend.
package models

// Student is the profile record as the backend returns it. The client never
// builds a complete Student locally: each onboarding step submits only its
// own fragment and the server merges it into the authoritative record.
type Student struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registration_date,omitempty"`
	BirthDate        string `json:"birth_date,omitempty"`
	Address          string `json:"address,omitempty"`
	Phone            string `json:"phoneNumber,omitempty"`
	Sex              string `json:"sex,omitempty"`
	Race             string `json:"race,omitempty"`
	Certificate      string `json:"certificate,omitempty"`
	Skills           string `json:"skills,omitempty"`
	Careers          string `json:"careers,omitempty"`
	Interest         string `json:"interest,omitempty"`
	ProfileImage     string `json:"profile_image,omitempty"`
	VideoHighlight   string `json:"video_highlight,omitempty"`
}

// InfoFragment is the AdditionalInfo step payload. Address is the
// pre-combined single string (street, line 2, city, state, zip).
type InfoFragment struct {
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Sex         string `json:"sex,omitempty"`
	Race        string `json:"race,omitempty"`
	Interest    string `json:"interest,omitempty"`
	BirthDate   string `json:"birth_date,omitempty"`
}

// SkillsFragment carries the serialized skills string.
type SkillsFragment struct {
	Skills string `json:"skills"`
}

// CareersFragment carries the serialized career-pathways string.
type CareersFragment struct {
	Careers string `json:"careers"`
}

// EmailFragment updates the account email.
type EmailFragment struct {
	Email string `json:"email"`
}

// PasswordFragment updates the account password.
type PasswordFragment struct {
	Password string `json:"password"`
}
