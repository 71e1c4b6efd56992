package models

import (
	"strings"
	"time"
)

// User defines the user model based on the 'users' table.
// Email is the login identifier and uniquely identifies one account.
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"user@college.edu"`
	Password    string     `json:"-" db:"password"` // bcrypt hash, never plaintext
	FirstName   string     `json:"firstName" db:"first_name" example:"John"`
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`
	Role        RoleType   `json:"role" db:"user_role" example:"student"`
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`
	IsAdmin     bool       `json:"isAdmin" db:"is_admin" example:"false"`
	AvatarPath  *string    `json:"avatarPath,omitempty" db:"avatar_path"`
	DateJoined  time.Time  `json:"dateJoined" db:"date_joined"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// FullName returns the first name plus the last name, with a space in between.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Student defines the one-to-one student extension of a User with role=student.
// Its lifecycle is tied to the owning User row.
type Student struct {
	UserID         int64   `json:"userId" db:"user_id"`
	RegistrationNo *string `json:"registrationNo,omitempty" db:"registration_no"`
	Semester       *int    `json:"semester,omitempty" db:"semester"` // 1..8 when set
	Branch         string  `json:"branch" db:"branch"`
	User           *User   `json:"user,omitempty"` // Relation, no db tag
}

// NormalizeEmail canonicalizes an email address before uniqueness checks and
// storage: surrounding whitespace is stripped and the domain part is lowercased.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
