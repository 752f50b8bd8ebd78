package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/apperrors"
)

type fakeNoteStore struct {
	notes     map[int64]*repositories.NoteDetails
	nextID    int64
	createErr error
	updateErr error

	oldFileURL string // returned by UpdateNote on success
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: map[int64]*repositories.NoteDetails{}, nextID: 1}
}

func (f *fakeNoteStore) CreateNote(_ context.Context, userID int64, subjectID *int64, title string, description *string, fileURL string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	f.notes[id] = &repositories.NoteDetails{
		ID:           id,
		UserID:       userID,
		SubjectID:    subjectID,
		Title:        title,
		Description:  description,
		FileURL:      fileURL,
		UploadDate:   time.Now(),
		UploaderName: "Uploader",
	}
	return id, nil
}

func (f *fakeNoteStore) GetNoteByID(_ context.Context, id int64) (*repositories.NoteDetails, error) {
	note, ok := f.notes[id]
	if !ok {
		return nil, apperrors.ErrNoteNotFound
	}
	return note, nil
}

func (f *fakeNoteStore) GetAllNotes(_ context.Context, _ repositories.GetAllNotesParams) ([]*repositories.NoteDetails, error) {
	var out []*repositories.NoteDetails
	for _, n := range f.notes {
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNoteStore) UpdateNote(_ context.Context, id, userID int64, fields repositories.NoteUpdateFields) (string, error) {
	if f.updateErr != nil {
		return "", f.updateErr
	}
	note, ok := f.notes[id]
	if !ok || note.UserID != userID {
		return "", apperrors.ErrNoteNotFound
	}
	old := note.FileURL
	if fields.Title != nil {
		note.Title = *fields.Title
	}
	if fields.FileURL != nil {
		note.FileURL = *fields.FileURL
	}
	f.oldFileURL = old
	return old, nil
}

func (f *fakeNoteStore) DeleteNote(_ context.Context, id, userID int64) (string, error) {
	note, ok := f.notes[id]
	if !ok || note.UserID != userID {
		return "", apperrors.ErrNoteNotFound
	}
	delete(f.notes, id)
	return note.FileURL, nil
}

// fakeFileStore hands out sequential URLs and records deletions.
type fakeFileStore struct {
	saved     int
	deleted   []string
	saveErr   error
	deleteErr error
}

func (f *fakeFileStore) Save(fileHeader *multipart.FileHeader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved++
	return fmt.Sprintf("/uploads/file-%d.pdf", f.saved), nil
}

func (f *fakeFileStore) Delete(fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return f.deleteErr
}

func strPtr(s string) *string { return &s }

func TestCreateNote(t *testing.T) {
	store := newFakeNoteStore()
	files := &fakeFileStore{}
	svc := NewNoteService(store, files)

	resp, err := svc.CreateNote(context.Background(), 1, &dto.CreateNoteRequest{
		Title:       "Calculus Midterm Reviewer",
		Description: strPtr("chapters 1-4"),
	}, &multipart.FileHeader{Filename: "reviewer.pdf"})
	require.NoError(t, err)

	assert.Equal(t, "Calculus Midterm Reviewer", resp.Title)
	assert.Equal(t, "/uploads/file-1.pdf", resp.FileURL)
	assert.Empty(t, files.deleted)
}

func TestCreateNote_EmptyTitle(t *testing.T) {
	files := &fakeFileStore{}
	svc := NewNoteService(newFakeNoteStore(), files)

	_, err := svc.CreateNote(context.Background(), 1, &dto.CreateNoteRequest{Title: "  "}, &multipart.FileHeader{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// Validation happens before any file is written.
	assert.Zero(t, files.saved)
}

func TestCreateNote_InsertFailureRemovesFile(t *testing.T) {
	store := newFakeNoteStore()
	store.createErr = apperrors.ErrSubjectNotFound
	files := &fakeFileStore{}
	svc := NewNoteService(store, files)

	_, err := svc.CreateNote(context.Background(), 1, &dto.CreateNoteRequest{Title: "Notes"}, &multipart.FileHeader{})
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
	assert.Equal(t, []string{"/uploads/file-1.pdf"}, files.deleted)
}

func TestUpdateNote_ReplacesFile(t *testing.T) {
	store := newFakeNoteStore()
	files := &fakeFileStore{}
	svc := NewNoteService(store, files)

	created, err := svc.CreateNote(context.Background(), 1, &dto.CreateNoteRequest{Title: "Notes"}, &multipart.FileHeader{})
	require.NoError(t, err)

	updated, err := svc.UpdateNote(context.Background(), created.ID, 1, &dto.UpdateNoteRequest{Title: strPtr("Notes v2")}, &multipart.FileHeader{})
	require.NoError(t, err)

	assert.Equal(t, "Notes v2", updated.Title)
	assert.Equal(t, "/uploads/file-2.pdf", updated.FileURL)
	// The replaced file is deleted only after the row update succeeded.
	assert.Equal(t, []string{"/uploads/file-1.pdf"}, files.deleted)
}

func TestUpdateNote_RepoFailureRemovesNewFile(t *testing.T) {
	store := newFakeNoteStore()
	files := &fakeFileStore{}
	svc := NewNoteService(store, files)

	created, err := svc.CreateNote(context.Background(), 1, &dto.CreateNoteRequest{Title: "Notes"}, &multipart.FileHeader{})
	require.NoError(t, err)

	store.updateErr = errors.New("connection reset")
	_, err = svc.UpdateNote(context.Background(), created.ID, 1, &dto.UpdateNoteRequest{}, &multipart.FileHeader{})
	require.Error(t, err)

	// The new file is cleaned up; the original is untouched.
	assert.Equal(t, []string{"/uploads/file-2.pdf"}, files.deleted)
	note, err := store.GetNoteByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/file-1.pdf", note.FileURL)
}

func TestUpdateNote_WithoutFileKeepsExisting(t *testing.T) {
	store := newFakeNoteStore()
	files := &fakeFileStore{}
	svc := NewNoteService(store, files)

	created, err := svc.CreateNote(context.Background(), 1, &dto.CreateNoteRequest{Title: "Notes"}, &multipart.FileHeader{})
	require.NoError(t, err)

	updated, err := svc.UpdateNote(context.Background(), created.ID, 1, &dto.UpdateNoteRequest{Title: strPtr("Renamed")}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "/uploads/file-1.pdf", updated.FileURL)
	assert.Empty(t, files.deleted)
}

func TestUpdateNote_EmptyTitlePointer(t *testing.T) {
	svc := NewNoteService(newFakeNoteStore(), &fakeFileStore{})

	_, err := svc.UpdateNote(context.Background(), 1, 1, &dto.UpdateNoteRequest{Title: strPtr("")}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteNote(t *testing.T) {
	store := newFakeNoteStore()
	files := &fakeFileStore{}
	svc := NewNoteService(store, files)

	created, err := svc.CreateNote(context.Background(), 1, &dto.CreateNoteRequest{Title: "Notes"}, &multipart.FileHeader{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNote(context.Background(), created.ID, 1))
	assert.Equal(t, []string{"/uploads/file-1.pdf"}, files.deleted)

	_, err = store.GetNoteByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
}

func TestDeleteNote_WrongOwner(t *testing.T) {
	store := newFakeNoteStore()
	files := &fakeFileStore{}
	svc := NewNoteService(store, files)

	created, err := svc.CreateNote(context.Background(), 1, &dto.CreateNoteRequest{Title: "Notes"}, &multipart.FileHeader{})
	require.NoError(t, err)

	err = svc.DeleteNote(context.Background(), created.ID, 99)
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
	assert.Empty(t, files.deleted)
}

func TestDeleteNote_FileRemovalFailureIsSwallowed(t *testing.T) {
	store := newFakeNoteStore()
	files := &fakeFileStore{deleteErr: errors.New("permission denied")}
	svc := NewNoteService(store, files)

	created, err := svc.CreateNote(context.Background(), 1, &dto.CreateNoteRequest{Title: "Notes"}, &multipart.FileHeader{})
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteNote(context.Background(), created.ID, 1))
}
