package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
)

type fakeProfileStore struct {
	users    map[int64]*models.User
	students map[int64]*models.Student
}

func newFakeProfileStore(users ...*models.User) *fakeProfileStore {
	store := &fakeProfileStore{
		users:    make(map[int64]*models.User),
		students: make(map[int64]*models.Student),
	}
	for _, user := range users {
		store.users[user.ID] = user
	}
	return store
}

func (f *fakeProfileStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeProfileStore) GetStudentByUserID(_ context.Context, userID int64) (*models.Student, error) {
	student, ok := f.students[userID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeProfileStore) UpdateProfile(_ context.Context, userID int64, firstName, lastName string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.FirstName = firstName
	user.LastName = lastName
	return nil
}

func (f *fakeProfileStore) UpdateAvatarPath(_ context.Context, userID int64, avatarPath *string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.AvatarPath = avatarPath
	return nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	path := "uploads/" + subPath + "/file"
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeStorage) DeleteFile(filePath string) error {
	f.deleted = append(f.deleted, filePath)
	return nil
}

func TestGetProfileStudent(t *testing.T) {
	store := newFakeProfileStore(&models.User{ID: 1, Role: models.RoleStudent})
	semester := 4
	store.students[1] = &models.Student{UserID: 1, Semester: &semester, Branch: "CSE"}

	service := NewUserService(store, &fakeStorage{})

	user, student, err := service.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if user.ID != 1 || student == nil || student.Branch != "CSE" {
		t.Fatalf("profile = %+v, %+v", user, student)
	}
}

func TestGetProfileStudentWithoutProfileRow(t *testing.T) {
	store := newFakeProfileStore(&models.User{ID: 1, Role: models.RoleStudent})
	service := NewUserService(store, &fakeStorage{})

	user, student, err := service.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if user == nil || student != nil {
		t.Fatalf("expected bare user, got student %+v", student)
	}
}

func TestGetProfileInstructorSkipsStudentLookup(t *testing.T) {
	store := newFakeProfileStore(&models.User{ID: 2, Role: models.RoleInstructor})
	service := NewUserService(store, &fakeStorage{})

	_, student, err := service.GetProfile(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if student != nil {
		t.Fatalf("instructor should not carry a student profile")
	}
}

func TestUpdateAvatarReplacesOldFile(t *testing.T) {
	old := "uploads/avatars/old"
	store := newFakeProfileStore(&models.User{ID: 1, Role: models.RoleInstructor, AvatarPath: &old})
	storage := &fakeStorage{}
	service := NewUserService(store, storage)

	user, err := service.UpdateAvatar(context.Background(), 1, &multipart.FileHeader{Filename: "new.png"})
	if err != nil {
		t.Fatalf("UpdateAvatar: %v", err)
	}

	if user.AvatarPath == nil || *user.AvatarPath == old {
		t.Fatalf("avatar path not replaced: %v", user.AvatarPath)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != old {
		t.Fatalf("old avatar not deleted: %v", storage.deleted)
	}
}
