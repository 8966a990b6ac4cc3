package domain

import "time"

// Role is the coarse authorization tier gating admin operations.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Address is the three-part postal address collected by the wizard.
type Address struct {
	Line string `json:"line,omitempty"`
	City string `json:"city,omitempty"`
	Zip  string `json:"zip,omitempty"`
}

// User models one registered account. PasswordHash never crosses the JSON
// boundary.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`

	// Profile fields, present only for accounts created through the
	// detailed (wizard) path or filled in later by the owner.
	Phone              string   `json:"phone,omitempty"`
	DateOfBirth        string   `json:"dateOfBirth,omitempty"`
	Address            Address  `json:"address,omitzero"`
	Gender             string   `json:"gender,omitempty"`
	Employment         string   `json:"employment,omitempty"`
	Education          string   `json:"education,omitempty"`
	SalaryExpectation  string   `json:"salaryExpectation,omitempty"`
	PreferredLocation  string   `json:"preferredLocation,omitempty"`
	InterestedServices []string `json:"interestedServices,omitempty"`
	ResumePath         string   `json:"resumePath,omitempty"`

	ProfileCompleted bool      `json:"profileCompleted"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe to serialize to any caller: the password hash
// is stripped even if a repository handed it back.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
