package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freemodule/backend/internal/db"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/dberrors"
	"github.com/freemodule/backend/internal/pkg/logger"
)

// NoteDetails is a note joined with its uploader and engagement counts.
type NoteDetails struct {
	ID            int64     `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	SubjectID     *int64    `db:"subject_id" json:"subject_id"`
	Title         string    `db:"title" json:"title"`
	Description   *string   `db:"description" json:"description"`
	FileURL       string    `db:"file_url" json:"file_url"`
	UploadDate    time.Time `db:"upload_date" json:"upload_date"`
	UploaderName  string    `db:"uploader_name" json:"uploader_name"`
	TotalLikes    int64     `db:"total_likes" json:"total_likes"`
	CommentsCount int64     `db:"comments_count" json:"comments_count"`
}

// GetAllNotesParams holds filters and the paging window for note listing.
type GetAllNotesParams struct {
	SubjectID *int64
	UserID    *int64
	Limit     int
	Offset    int
}

// NoteUpdateFields carries the optional columns of a note update.
type NoteUpdateFields struct {
	Title       *string
	Description *string
	SubjectID   *int64
	FileURL     *string
}

// NoteRepository handles database operations for notes.
type NoteRepository struct {
	DB *pgxpool.Pool
}

// NewNoteRepository creates a new instance of NoteRepository.
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{DB: db}
}

// Common select query builder for notes with uploader and counts
func (r *NoteRepository) selectNoteDetailsQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"n.id", "n.user_id", "n.subject_id", "n.title", "n.description",
		"n.file_url", "n.upload_date", "u.name as uploader_name",
		"(SELECT count(*) FROM ratings r WHERE r.note_id = n.id) as total_likes",
		"(SELECT count(*) FROM comments c WHERE c.note_id = n.id) as comments_count",
	).From("notes n").
		Join("users u ON n.user_id = u.id").
		PlaceholderFormat(squirrel.Dollar)
}

// ScanNoteDetails scans a row into a NoteDetails struct.
func ScanNoteDetails(row pgx.Row) (*NoteDetails, error) {
	var note NoteDetails
	err := row.Scan(
		&note.ID, &note.UserID, &note.SubjectID, &note.Title, &note.Description,
		&note.FileURL, &note.UploadDate, &note.UploaderName,
		&note.TotalLikes, &note.CommentsCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

// CreateNote inserts a new note row and returns its ID.
func (r *NoteRepository) CreateNote(ctx context.Context, userID int64, subjectID *int64, title string, description *string, fileURL string) (int64, error) {
	sqlStr, args, err := squirrel.Insert("notes").
		Columns("user_id", "subject_id", "title", "description", "file_url").
		Values(userID, subjectID, title, description, fileURL).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create note SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrSubjectNotFound
		}
		logger.Error().Err(err).Msg("Error executing create note query")
		return 0, err
	}
	return id, nil
}

// GetNoteByID retrieves a single note with uploader and counts.
func (r *NoteRepository) GetNoteByID(ctx context.Context, id int64) (*NoteDetails, error) {
	sqlStr, args, err := r.selectNoteDetailsQuery().Where(squirrel.Eq{"n.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get note by ID SQL")
		return nil, err
	}

	return ScanNoteDetails(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetAllNotes retrieves a paginated, newest-first list of notes.
func (r *NoteRepository) GetAllNotes(ctx context.Context, params GetAllNotesParams) ([]*NoteDetails, error) {
	builder := r.selectNoteDetailsQuery().
		OrderBy("n.upload_date DESC", "n.id DESC").
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset))
	if params.SubjectID != nil {
		builder = builder.Where(squirrel.Eq{"n.subject_id": *params.SubjectID})
	}
	if params.UserID != nil {
		builder = builder.Where(squirrel.Eq{"n.user_id": *params.UserID})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all notes SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all notes query")
		return nil, err
	}
	defer rows.Close()

	notes := make([]*NoteDetails, 0)
	for rows.Next() {
		note, err := ScanNoteDetails(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// GetFileURLsByUserID returns the stored file locations of every note a user
// owns, for cleanup when the account goes away.
func (r *NoteRepository) GetFileURLsByUserID(ctx context.Context, userID int64) ([]string, error) {
	sqlStr, args, err := squirrel.Select("file_url").
		From("notes").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get note file urls SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get note file urls query")
		return nil, err
	}
	defer rows.Close()

	urls := make([]string, 0)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}

// UpdateNote applies the provided fields to a note owned by userID. The old
// file_url is read and the row updated inside one transaction so the caller
// can remove the replaced file only after the commit. A note owned by someone
// else is indistinguishable from a missing one.
func (r *NoteRepository) UpdateNote(ctx context.Context, id, userID int64, fields NoteUpdateFields) (oldFileURL string, err error) {
	builder := squirrel.Update("notes").
		Where(squirrel.Eq{"id": id, "user_id": userID})
	updated := false
	if fields.Title != nil {
		builder = builder.Set("title", *fields.Title)
		updated = true
	}
	if fields.Description != nil {
		builder = builder.Set("description", *fields.Description)
		updated = true
	}
	if fields.SubjectID != nil {
		builder = builder.Set("subject_id", *fields.SubjectID)
		updated = true
	}
	if fields.FileURL != nil {
		builder = builder.Set("file_url", *fields.FileURL)
		updated = true
	}
	if !updated {
		return "", apperrors.ErrNoFieldsToUpdate
	}

	sqlStr, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update note SQL")
		return "", err
	}

	selectStr, selectArgs, err := squirrel.Select("file_url").
		From("notes").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building select note for update SQL")
		return "", err
	}

	err = db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, selectStr, selectArgs...).Scan(&oldFileURL); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNoteNotFound
			}
			return err
		}
		_, err := tx.Exec(ctx, sqlStr, args...)
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSubjectNotFound
		}
		return err
	})
	if err != nil {
		return "", err
	}
	return oldFileURL, nil
}

// DeleteNote removes a note owned by userID and returns the file_url of the
// deleted row so the caller can clean up the stored file.
func (r *NoteRepository) DeleteNote(ctx context.Context, id, userID int64) (string, error) {
	sqlStr, args, err := squirrel.Delete("notes").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING file_url").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete note SQL")
		return "", err
	}

	var fileURL string
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&fileURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Msg("Error executing delete note query")
		return "", err
	}
	return fileURL, nil
}
