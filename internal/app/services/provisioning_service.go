package services

import (
	"context"
	"time"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/auth"
	"github.com/oyasar/assist/internal/pkg/logger"
	"github.com/oyasar/assist/internal/pkg/validation"
)

// UserStore is the persistence surface provisioning needs from the user
// repository.
type UserStore interface {
	CreateUserInGroup(ctx context.Context, user *models.User, student *models.Student, groupID int64) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// GroupStore resolves pre-provisioned permission groups.
type GroupStore interface {
	GetByName(ctx context.Context, name string) (*models.Group, error)
}

// TokenGenerator issues signed access tokens.
type TokenGenerator interface {
	GenerateToken(user *models.User) (accessToken string, expiresIn int, err error)
}

// ProvisionInput carries the fields needed to open an account.
type ProvisionInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      models.RoleType
	IsAdmin   bool

	// Student profile fields, only consulted when Role is student
	RegistrationNo *string
	Semester       *int
	Branch         string
}

// ProvisioningService opens accounts and authenticates users. Every account
// lands in exactly one permission group, decided by its role; the user, its
// optional student profile and the group membership are written atomically.
type ProvisioningService struct {
	userStore  UserStore
	groupStore GroupStore
	jwtService TokenGenerator
}

// NewProvisioningService creates a new provisioning service
func NewProvisioningService(userStore UserStore, groupStore GroupStore, jwtService TokenGenerator) *ProvisioningService {
	return &ProvisioningService{
		userStore:  userStore,
		groupStore: groupStore,
		jwtService: jwtService,
	}
}

// Provision validates the input, opens the account and assigns it to the
// group its role maps to. The created user is returned on every role path.
func (s *ProvisioningService) Provision(ctx context.Context, input ProvisionInput) (*models.User, error) {
	email := models.NormalizeEmail(input.Email)
	if email == "" || !validation.IsValidEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}

	if len(input.Password) < validation.PasswordMinLength {
		return nil, apperrors.ErrInvalidPassword
	}

	// Early duplicate check for a clean error; the unique constraint still
	// backs it under concurrent registration.
	exists, err := s.userStore.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Email:       email,
		Password:    hashed,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Role:        input.Role,
		IsActive:    true,
		IsAdmin:     input.IsAdmin,
		LastLoginAt: &now,
	}

	var student *models.Student
	if user.Role == models.RoleStudent {
		student, err = s.buildStudentProfile(input)
		if err != nil {
			return nil, err
		}
	}

	return s.createInGroup(ctx, user, student, models.GroupNameForRole(user.Role))
}

// ProvisionSuperuser opens a super account with admin rights.
func (s *ProvisioningService) ProvisionSuperuser(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	return s.Provision(ctx, ProvisionInput{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleSuper,
		IsAdmin:   true,
	})
}

func (s *ProvisioningService) buildStudentProfile(input ProvisionInput) (*models.Student, error) {
	if input.Semester != nil && !validation.IsValidSemester(*input.Semester, models.SemesterMin, models.SemesterMax) {
		return nil, apperrors.ErrInvalidSemester
	}

	if input.RegistrationNo != nil && !validation.IsValidRegistrationNo(*input.RegistrationNo) {
		return nil, apperrors.NewValidationError("invalid registration number")
	}

	return &models.Student{
		RegistrationNo: input.RegistrationNo,
		Semester:       input.Semester,
		Branch:         input.Branch,
	}, nil
}

func (s *ProvisioningService) createInGroup(ctx context.Context, user *models.User, student *models.Student, groupName string) (*models.User, error) {
	group, err := s.groupStore.GetByName(ctx, groupName)
	if err != nil {
		return nil, err
	}

	if _, err := s.userStore.CreateUserInGroup(ctx, user, student, group.ID); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("userId", user.ID).
		Str("role", string(user.Role)).
		Str("group", groupName).
		Msg("Account provisioned")

	return user, nil
}

// Authenticate verifies credentials and issues an access token. Lookup and
// password failures collapse into one error so callers cannot probe for
// registered emails.
func (s *ProvisioningService) Authenticate(ctx context.Context, email, password string) (*models.User, string, int, error) {
	email = models.NormalizeEmail(email)

	user, err := s.userStore.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", 0, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	if err := s.userStore.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login time")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", 0, err
	}

	return user, token, expiresIn, nil
}
