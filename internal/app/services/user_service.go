package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/filestorage"
	"github.com/oyasar/assist/internal/pkg/logger"
)

// ProfileStore is the persistence surface for user profiles.
type ProfileStore interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	UpdateProfile(ctx context.Context, userID int64, firstName, lastName string) error
	UpdateAvatarPath(ctx context.Context, userID int64, avatarPath *string) error
}

// UserService serves user profile reads and updates.
type UserService struct {
	profileStore ProfileStore
	fileStorage  filestorage.Storage
}

// NewUserService creates a new user service
func NewUserService(profileStore ProfileStore, fileStorage filestorage.Storage) *UserService {
	return &UserService{
		profileStore: profileStore,
		fileStorage:  fileStorage,
	}
}

// GetProfile retrieves a user. When the account carries a student profile it
// is attached; other roles return the bare user.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, *models.Student, error) {
	user, err := s.profileStore.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if user.Role != models.RoleStudent {
		return user, nil, nil
	}

	student, err := s.profileStore.GetStudentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrReferenceNotFound) {
			// Student role without a profile row; tolerated for accounts
			// provisioned before profiles became mandatory
			return user, nil, nil
		}
		return nil, nil, err
	}

	return user, student, nil
}

// UpdateProfile updates a user's name fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, firstName, lastName string) (*models.User, error) {
	if err := s.profileStore.UpdateProfile(ctx, userID, firstName, lastName); err != nil {
		return nil, err
	}
	return s.profileStore.GetUserByID(ctx, userID)
}

// UpdateAvatar stores a new avatar file and points the user at it. The
// previous avatar file, if any, is removed.
func (s *UserService) UpdateAvatar(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*models.User, error) {
	user, err := s.profileStore.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	path, err := s.fileStorage.SaveFile(fileHeader, "avatars")
	if err != nil {
		return nil, err
	}

	if err := s.profileStore.UpdateAvatarPath(ctx, userID, &path); err != nil {
		return nil, err
	}

	if user.AvatarPath != nil {
		if err := s.fileStorage.DeleteFile(*user.AvatarPath); err != nil {
			logger.Warn().Err(err).Int64("userId", userID).Msg("Failed to delete previous avatar")
		}
	}

	user.AvatarPath = &path
	return user, nil
}
