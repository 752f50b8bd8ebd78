package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freemodule/backend/internal/app/models"
	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/pkg/apperrors"
)

type fakeProfileStore struct {
	user       *models.User
	lastName   *string
	lastEmail  *string
	deletedIDs []int64
}

func (f *fakeProfileStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, apperrors.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeProfileStore) UpdateUser(_ context.Context, id int64, name, email *string) (*models.User, error) {
	f.lastName, f.lastEmail = name, email
	if f.user == nil || f.user.ID != id {
		return nil, apperrors.ErrUserNotFound
	}
	if name != nil {
		f.user.Name = *name
	}
	if email != nil {
		f.user.Email = *email
	}
	return f.user, nil
}

func (f *fakeProfileStore) DeleteUser(_ context.Context, id int64) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, apperrors.ErrUserNotFound
	}
	f.deletedIDs = append(f.deletedIDs, id)
	user := f.user
	f.user = nil
	return user, nil
}

type fakeNoteFileLister struct {
	urls []string
}

func (f *fakeNoteFileLister) GetFileURLsByUserID(_ context.Context, _ int64) ([]string, error) {
	return f.urls, nil
}

func newUserServiceForTest() (*UserService, *fakeProfileStore, *fakeFileStore) {
	store := &fakeProfileStore{user: &models.User{
		ID:        1,
		Name:      "Jamie Cruz",
		Email:     "jamie.cruz@ustp.edu.ph",
		CreatedAt: time.Now(),
	}}
	files := &fakeFileStore{}
	noteFiles := &fakeNoteFileLister{urls: []string{"/uploads/a.pdf", "/uploads/b.pdf"}}
	return NewUserService(store, noteFiles, files, "@ustp.edu.ph"), store, files
}

func TestUpdateProfile_NormalizesEmailCase(t *testing.T) {
	svc, store, _ := newUserServiceForTest()

	email := "New.Mail@USTP.edu.ph"
	resp, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "new.mail@ustp.edu.ph", resp.Email)
	require.NotNil(t, store.lastEmail)
	assert.Equal(t, "new.mail@ustp.edu.ph", *store.lastEmail)
}

func TestUpdateProfile_NoFields(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	_, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNoFieldsToUpdate)
}

func TestDeleteAccount_RemovesNoteFiles(t *testing.T) {
	svc, store, files := newUserServiceForTest()

	resp, err := svc.DeleteAccount(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "jamie.cruz@ustp.edu.ph", resp.Email)
	assert.Equal(t, []int64{1}, store.deletedIDs)
	assert.Equal(t, []string{"/uploads/a.pdf", "/uploads/b.pdf"}, files.deleted)
}
