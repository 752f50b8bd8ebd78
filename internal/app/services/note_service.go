package services

import (
	"context"
	"mime/multipart"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/logger"
	"github.com/freemodule/backend/internal/pkg/sanitize"
)

// noteStore is the slice of the note repository the note service needs.
type noteStore interface {
	CreateNote(ctx context.Context, userID int64, subjectID *int64, title string, description *string, fileURL string) (int64, error)
	GetNoteByID(ctx context.Context, id int64) (*repositories.NoteDetails, error)
	GetAllNotes(ctx context.Context, params repositories.GetAllNotesParams) ([]*repositories.NoteDetails, error)
	UpdateNote(ctx context.Context, id, userID int64, fields repositories.NoteUpdateFields) (string, error)
	DeleteNote(ctx context.Context, id, userID int64) (string, error)
}

// fileStore stores uploaded files and removes them again.
type fileStore interface {
	Save(fileHeader *multipart.FileHeader) (string, error)
	Delete(fileURL string) error
}

// NoteService handles the note lifecycle. A note row and its stored file live
// and die together: the file is written before the row exists and removed
// only after the row is gone.
type NoteService struct {
	noteRepo noteStore
	files    fileStore
}

// NewNoteService creates a new note service instance
func NewNoteService(noteRepo noteStore, files fileStore) *NoteService {
	return &NoteService{noteRepo: noteRepo, files: files}
}

func toNoteResponse(note *repositories.NoteDetails) dto.NoteResponse {
	return dto.NoteResponse{
		ID:            note.ID,
		UserID:        note.UserID,
		SubjectID:     note.SubjectID,
		Title:         note.Title,
		Description:   sanitize.StripPtr(note.Description),
		FileURL:       note.FileURL,
		UploadDate:    note.UploadDate,
		UploaderName:  note.UploaderName,
		TotalLikes:    note.TotalLikes,
		CommentsCount: note.CommentsCount,
	}
}

// CreateNote stores the uploaded file, then inserts the row. If the insert
// fails the freshly stored file is removed so nothing is left orphaned.
func (s *NoteService) CreateNote(ctx context.Context, userID int64, req *dto.CreateNoteRequest, fileHeader *multipart.FileHeader) (*dto.NoteResponse, error) {
	title := sanitize.Strip(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required", map[string]string{"title": "title cannot be empty"})
	}
	description := sanitize.StripPtr(req.Description)

	fileURL, err := s.files.Save(fileHeader)
	if err != nil {
		return nil, err
	}

	id, err := s.noteRepo.CreateNote(ctx, userID, req.SubjectID, title, description, fileURL)
	if err != nil {
		if cleanupErr := s.files.Delete(fileURL); cleanupErr != nil {
			logger.Error().Err(cleanupErr).Str("file_url", fileURL).Msg("Failed to remove file after aborted note create")
		}
		return nil, err
	}

	note, err := s.noteRepo.GetNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toNoteResponse(note)
	return &resp, nil
}

// GetNote returns a single note with uploader and engagement counts.
func (s *NoteService) GetNote(ctx context.Context, id int64) (*dto.NoteResponse, error) {
	note, err := s.noteRepo.GetNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toNoteResponse(note)
	return &resp, nil
}

// ListNotes returns a newest-first page of notes.
func (s *NoteService) ListNotes(ctx context.Context, subjectID, userID *int64, limit, offset int) ([]dto.NoteResponse, error) {
	notes, err := s.noteRepo.GetAllNotes(ctx, repositories.GetAllNotesParams{
		SubjectID: subjectID,
		UserID:    userID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, toNoteResponse(note))
	}
	return responses, nil
}

// UpdateNote applies field changes and, when a new file is attached, swaps the
// stored file. The new file is written first; if the row update fails it is
// removed again, and the replaced file is only deleted once the update has
// committed.
func (s *NoteService) UpdateNote(ctx context.Context, id, userID int64, req *dto.UpdateNoteRequest, fileHeader *multipart.FileHeader) (*dto.NoteResponse, error) {
	fields := repositories.NoteUpdateFields{
		Title:       sanitize.StripPtr(req.Title),
		Description: sanitize.StripPtr(req.Description),
		SubjectID:   req.SubjectID,
	}
	if fields.Title != nil && *fields.Title == "" {
		return nil, apperrors.NewValidationError("title cannot be empty", map[string]string{"title": "title cannot be empty"})
	}

	var newFileURL string
	if fileHeader != nil {
		fileURL, err := s.files.Save(fileHeader)
		if err != nil {
			return nil, err
		}
		newFileURL = fileURL
		fields.FileURL = &newFileURL
	}

	oldFileURL, err := s.noteRepo.UpdateNote(ctx, id, userID, fields)
	if err != nil {
		if newFileURL != "" {
			if cleanupErr := s.files.Delete(newFileURL); cleanupErr != nil {
				logger.Error().Err(cleanupErr).Str("file_url", newFileURL).Msg("Failed to remove file after aborted note update")
			}
		}
		return nil, err
	}

	if newFileURL != "" && oldFileURL != newFileURL {
		if cleanupErr := s.files.Delete(oldFileURL); cleanupErr != nil {
			logger.Warn().Err(cleanupErr).Str("file_url", oldFileURL).Msg("Failed to remove replaced note file")
		}
	}

	note, err := s.noteRepo.GetNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toNoteResponse(note)
	return &resp, nil
}

// DeleteNote removes the row, then the stored file. A failed file removal is
// logged and swallowed; the note is already gone.
func (s *NoteService) DeleteNote(ctx context.Context, id, userID int64) error {
	fileURL, err := s.noteRepo.DeleteNote(ctx, id, userID)
	if err != nil {
		return err
	}

	if cleanupErr := s.files.Delete(fileURL); cleanupErr != nil {
		logger.Warn().Err(cleanupErr).Str("file_url", fileURL).Int64("note_id", id).Msg("Failed to remove file of deleted note")
	}
	return nil
}
