package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/dberrors"
	"github.com/freemodule/backend/internal/pkg/logger"
)

// QAPostDetails is a question joined with its author's name and answer count.
type QAPostDetails struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	Question     string    `db:"question" json:"question"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	AuthorName   string    `db:"author_name" json:"author_name"`
	AnswersCount int64     `db:"answers_count" json:"answers_count"`
}

// QAAnswerDetails is an answer joined with its author's name.
type QAAnswerDetails struct {
	ID         int64     `db:"id" json:"id"`
	QAPostID   int64     `db:"qa_post_id" json:"qa_post_id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	Answer     string    `db:"answer" json:"answer"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	AuthorName string    `db:"author_name" json:"author_name"`
}

// QARepository handles database operations for Q&A posts and their answers.
type QARepository struct {
	DB *pgxpool.Pool
}

// NewQARepository creates a new instance of QARepository.
func NewQARepository(db *pgxpool.Pool) *QARepository {
	return &QARepository{DB: db}
}

func (r *QARepository) selectQAPostQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"q.id", "q.user_id", "q.question", "q.created_at", "u.name as author_name",
		"(SELECT count(*) FROM qa_answers a WHERE a.qa_post_id = q.id) as answers_count",
	).From("qa_posts q").
		Join("users u ON q.user_id = u.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanQAPostDetails(row pgx.Row) (*QAPostDetails, error) {
	var post QAPostDetails
	err := row.Scan(
		&post.ID, &post.UserID, &post.Question, &post.CreatedAt,
		&post.AuthorName, &post.AnswersCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQAPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// CreateQAPost inserts a question and returns its ID.
func (r *QARepository) CreateQAPost(ctx context.Context, userID int64, question string) (int64, error) {
	sqlStr, args, err := squirrel.Insert("qa_posts").
		Columns("user_id", "question").
		Values(userID, question).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create qa post SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create qa post query")
		return 0, err
	}
	return id, nil
}

// GetQAPostByID retrieves a single question with author name and answer count.
func (r *QARepository) GetQAPostByID(ctx context.Context, id int64) (*QAPostDetails, error) {
	sqlStr, args, err := r.selectQAPostQuery().Where(squirrel.Eq{"q.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get qa post by ID SQL")
		return nil, err
	}

	return scanQAPostDetails(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetAllQAPosts retrieves a paginated, newest-first list of questions.
func (r *QARepository) GetAllQAPosts(ctx context.Context, limit, offset int) ([]*QAPostDetails, error) {
	sqlStr, args, err := r.selectQAPostQuery().
		OrderBy("q.created_at DESC", "q.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all qa posts SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all qa posts query")
		return nil, err
	}
	defer rows.Close()

	posts := make([]*QAPostDetails, 0)
	for rows.Next() {
		post, err := scanQAPostDetails(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// UpdateQAPost rewrites a question owned by userID.
func (r *QARepository) UpdateQAPost(ctx context.Context, id, userID int64, question string) error {
	sqlStr, args, err := squirrel.Update("qa_posts").
		Set("question", question).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update qa post SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update qa post query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQAPostNotFound
	}
	return nil
}

// DeleteQAPost removes a question owned by userID. Its answers are removed by
// cascade.
func (r *QARepository) DeleteQAPost(ctx context.Context, id, userID int64) error {
	sqlStr, args, err := squirrel.Delete("qa_posts").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete qa post SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete qa post query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQAPostNotFound
	}
	return nil
}

// CreateQAAnswer appends an answer to a question. A missing question surfaces
// through the FK.
func (r *QARepository) CreateQAAnswer(ctx context.Context, qaPostID, userID int64, answer string) (*QAAnswerDetails, error) {
	sqlStr, args, err := squirrel.Insert("qa_answers").
		Columns("qa_post_id", "user_id", "answer").
		Values(qaPostID, userID, answer).
		Suffix("RETURNING id, qa_post_id, user_id, answer, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create qa answer SQL")
		return nil, err
	}

	var ans QAAnswerDetails
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&ans.ID, &ans.QAPostID, &ans.UserID, &ans.Answer, &ans.CreatedAt,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrQAPostNotFound
		}
		logger.Error().Err(err).Msg("Error executing create qa answer query")
		return nil, err
	}

	nameSQL, nameArgs, err := squirrel.Select("name").
		From("users").
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building qa answer author name SQL")
		return nil, err
	}
	if err := r.DB.QueryRow(ctx, nameSQL, nameArgs...).Scan(&ans.AuthorName); err != nil {
		logger.Error().Err(err).Msg("Error fetching qa answer author name")
		return nil, err
	}
	return &ans, nil
}

// GetAnswersByPostID retrieves a question's answers oldest first.
func (r *QARepository) GetAnswersByPostID(ctx context.Context, qaPostID int64, limit, offset int) ([]*QAAnswerDetails, error) {
	sqlStr, args, err := squirrel.Select(
		"a.id", "a.qa_post_id", "a.user_id", "a.answer", "a.created_at",
		"u.name as author_name",
	).From("qa_answers a").
		Join("users u ON a.user_id = u.id").
		Where(squirrel.Eq{"a.qa_post_id": qaPostID}).
		OrderBy("a.created_at ASC", "a.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get qa answers SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get qa answers query")
		return nil, err
	}
	defer rows.Close()

	answers := make([]*QAAnswerDetails, 0)
	for rows.Next() {
		var ans QAAnswerDetails
		err := rows.Scan(&ans.ID, &ans.QAPostID, &ans.UserID, &ans.Answer, &ans.CreatedAt, &ans.AuthorName)
		if err != nil {
			return nil, err
		}
		answers = append(answers, &ans)
	}
	return answers, rows.Err()
}
