package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/db"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/dberrors"
)

const userColumns = `id, email, password, first_name, last_name, user_role, is_active, is_admin, avatar_path, date_joined, last_login_at`

// UserRepository handles database operations for users and student profiles
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// CreateUserInGroup persists a new user, its optional student profile and its
// group membership in a single transaction. On any failure the whole
// operation rolls back and no partial account remains.
func (r *UserRepository) CreateUserInGroup(ctx context.Context, user *models.User, student *models.Student, groupID int64) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (email, password, first_name, last_name, user_role, is_active, is_admin, last_login_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, date_joined`,
			user.Email, user.Password, user.FirstName, user.LastName,
			user.Role, user.IsActive, user.IsAdmin, user.LastLoginAt).Scan(&id, &user.DateJoined)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		if student != nil {
			_, err = tx.Exec(ctx, `
				INSERT INTO students (user_id, registration_no, semester, branch)
				VALUES ($1, $2, $3, $4)`,
				id, student.RegistrationNo, student.Semester, student.Branch)
			if err != nil {
				if dberrors.IsCheckViolation(err) {
					return apperrors.ErrInvalidSemester
				}
				return fmt.Errorf("error creating student profile: %w", err)
			}
			student.UserID = id
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO user_groups (user_id, group_id)
			VALUES ($1, $2)`,
			id, groupID)
		if err != nil {
			return fmt.Errorf("error assigning user to group: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	user.ID = id
	return id, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.IsActive, &user.IsAdmin, &user.AvatarPath,
		&user.DateJoined, &user.LastLoginAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`,
		email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.IsActive, &user.IsAdmin, &user.AvatarPath,
		&user.DateJoined, &user.LastLoginAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET last_login_at = $1
		WHERE id = $2`,
		time.Now(), userID)

	if err != nil {
		return fmt.Errorf("failed to update last login time: %w", err)
	}

	return nil
}

// UpdateProfile updates a user's basic profile information
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, firstName, lastName string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2
		WHERE id = $3`,
		firstName, lastName, userID)

	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateAvatarPath updates the avatar file reference for a user
func (r *UserRepository) UpdateAvatarPath(ctx context.Context, userID int64, avatarPath *string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET avatar_path = $1
		WHERE id = $2`,
		avatarPath, userID)

	if err != nil {
		return fmt.Errorf("error updating avatar: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// GetStudentByUserID retrieves the student profile attached to a user
func (r *UserRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT user_id, registration_no, semester, branch
		FROM students
		WHERE user_id = $1`,
		userID).Scan(&student.UserID, &student.RegistrationNo, &student.Semester, &student.Branch)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// Delete deletes a user. Student profile, group memberships and authored
// content cascade at the schema level.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
