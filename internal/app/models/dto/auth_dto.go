package dto

import (
	"time"

	"github.com/oyasar/assist/internal/app/models"
)

// RegisterRequest is the payload for opening an account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"jane.doe@university.edu"`
	Password  string `json:"password" binding:"required,min=8" example:"Password123"`
	FirstName string `json:"firstName" binding:"required" example:"Jane"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	// Super accounts are never self-registered; they come from seeding.
	Role string `json:"role" binding:"required,oneof=student instructor" example:"student"`

	// Student profile fields, only read when role is student
	RegistrationNo *string `json:"registrationNo,omitempty" example:"19BCS042"`
	Semester       *int    `json:"semester,omitempty" binding:"omitempty,min=1,max=8" example:"4"`
	Branch         string  `json:"branch,omitempty" example:"Computer Science"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane.doe@university.edu"`
	Password string `json:"password" binding:"required" example:"Password123"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType" example:"Bearer"`
	ExpiresIn   int          `json:"expiresIn" example:"3600"`
	User        UserResponse `json:"user"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID          int64      `json:"id" example:"1"`
	Email       string     `json:"email" example:"jane.doe@university.edu"`
	FirstName   string     `json:"firstName" example:"Jane"`
	LastName    string     `json:"lastName" example:"Doe"`
	Role        string     `json:"role" example:"student"`
	IsActive    bool       `json:"isActive" example:"true"`
	IsAdmin     bool       `json:"isAdmin" example:"false"`
	AvatarPath  *string    `json:"avatarPath,omitempty"`
	DateJoined  time.Time  `json:"dateJoined"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// StudentResponse is the public shape of a student profile.
type StudentResponse struct {
	RegistrationNo *string `json:"registrationNo,omitempty" example:"19BCS042"`
	Semester       *int    `json:"semester,omitempty" example:"4"`
	Branch         string  `json:"branch" example:"Computer Science"`
}

// ProfileResponse joins a user with its optional student profile.
type ProfileResponse struct {
	UserResponse
	Student *StudentResponse `json:"student,omitempty"`
}

// UpdateProfileRequest is the payload for updating name fields.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required" example:"Jane"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
}

// ToUserResponse maps a user model to its public shape.
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		IsAdmin:     user.IsAdmin,
		AvatarPath:  user.AvatarPath,
		DateJoined:  user.DateJoined,
		LastLoginAt: user.LastLoginAt,
	}
}

// ToProfileResponse maps a user and optional student profile.
func ToProfileResponse(user *models.User, student *models.Student) ProfileResponse {
	response := ProfileResponse{UserResponse: ToUserResponse(user)}
	if student != nil {
		response.Student = &StudentResponse{
			RegistrationNo: student.RegistrationNo,
			Semester:       student.Semester,
			Branch:         student.Branch,
		}
	}
	return response
}
