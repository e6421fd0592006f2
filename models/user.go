package models

import "time"

// User is a patient account as stored by the persistence layer.
// PasswordHash is a bcrypt digest and is never serialized.
type User struct {
	// UserID is the opaque account identifier, also used as the token subject.
	UserID string `json:"user_id"`

	// Email is unique across accounts and stored lower-cased.
	Email string `json:"email"`

	PasswordHash string `json:"-"`

	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name,omitempty"`
	Gender            string `json:"gender"`
	DOB               string `json:"dob"`
	ZipCode           string `json:"zip_code"`
	InsuranceCompany  string `json:"insurance_company,omitempty"`
	ServicePreference string `json:"service_preference"`
	EmergencyName     string `json:"emergency_name,omitempty"`
	EmergencyPhone    string `json:"emergency_phone,omitempty"`

	// ConsentGiven flips from false to true once and never reverts.
	ConsentGiven bool `json:"consent_given"`

	// ConsentGivenAt is set on the first successful consent write.
	ConsentGivenAt *time.Time `json:"consent_given_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// DisplayName joins first and last name the way it is shown in the session.
func (u User) DisplayName() string {
	switch {
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Identity converts a stored user into the minimal payload carried by a session.
func (u User) Identity() Identity {
	return Identity{
		ID:           u.UserID,
		Email:        u.Email,
		Name:         u.DisplayName(),
		ConsentGiven: u.ConsentGiven,
	}
}

// Identity is the result of a successful credential check.
type Identity struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ConsentGiven bool   `json:"consent_given"`
}

// Credentials is the body of a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// CallbackURL is the path the user was heading to before the gate sent
	// them to the login page. Only relative paths are honoured.
	CallbackURL string `json:"callbackUrl,omitempty"`
}

// SignupRequest is the body of a registration request.
type SignupRequest struct {
	FirstName         string `json:"fName"`
	LastName          string `json:"lName,omitempty"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	Gender            string `json:"gender"`
	DOB               string `json:"dob"`
	ZipCode           string `json:"zip"`
	InsuranceCompany  string `json:"insuranceCompany,omitempty"`
	ServicePreference string `json:"servicePreference"`
	EmergencyName     string `json:"emergencyName,omitempty"`
	EmergencyPhone    string `json:"emergencyPhone,omitempty"`
}

// ToUser maps a signup request onto a user record. The password hash and
// identifier are filled in by the caller.
func (s SignupRequest) ToUser() User {
	return User{
		Email:             s.Email,
		FirstName:         s.FirstName,
		LastName:          s.LastName,
		Gender:            s.Gender,
		DOB:               s.DOB,
		ZipCode:           s.ZipCode,
		InsuranceCompany:  s.InsuranceCompany,
		ServicePreference: s.ServicePreference,
		EmergencyName:     s.EmergencyName,
		EmergencyPhone:    s.EmergencyPhone,
	}
}

// LoginResponse is returned by the login endpoint.
type LoginResponse struct {
	// Redirect is where the browser should go next.
	Redirect string   `json:"redirect"`
	User     Identity `json:"user"`
}

// ConsentResult mirrors the consent action's outcome.
type ConsentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is a generic {message} body.
type MessageResponse struct {
	Message string `json:"message"`
}
