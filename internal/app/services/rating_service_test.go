package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freemodule/backend/internal/app/repositories"
	"github.com/freemodule/backend/internal/pkg/apperrors"
)

// fakeRatingStore toggles likes in memory per (noteID, userID).
type fakeRatingStore struct {
	likes map[int64]map[int64]bool // noteID -> userID -> liked
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{likes: map[int64]map[int64]bool{}}
}

func (f *fakeRatingStore) ToggleRating(_ context.Context, noteID, userID int64) (string, int64, error) {
	if f.likes[noteID] == nil {
		f.likes[noteID] = map[int64]bool{}
	}
	if f.likes[noteID][userID] {
		delete(f.likes[noteID], userID)
		count, _ := f.CountByNoteID(context.Background(), noteID)
		return repositories.RatingActionUnliked, count, nil
	}
	f.likes[noteID][userID] = true
	count, _ := f.CountByNoteID(context.Background(), noteID)
	return repositories.RatingActionLiked, count, nil
}

func (f *fakeRatingStore) CountByNoteID(_ context.Context, noteID int64) (int64, error) {
	return int64(len(f.likes[noteID])), nil
}

func (f *fakeRatingStore) GetLikersByNoteID(_ context.Context, noteID int64, limit, offset int) ([]*repositories.RatingUser, error) {
	var out []*repositories.RatingUser
	for userID := range f.likes[noteID] {
		out = append(out, &repositories.RatingUser{ID: userID, Name: "Liker"})
	}
	return out, nil
}

func newRatingServiceForTest(t *testing.T) (*RatingService, *fakeNoteStore) {
	t.Helper()
	notes := newFakeNoteStore()
	id, err := notes.CreateNote(context.Background(), 1, nil, "Notes", nil, "/uploads/f.pdf")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	return NewRatingService(newFakeRatingStore(), notes), notes
}

func TestToggleRating(t *testing.T) {
	svc, _ := newRatingServiceForTest(t)

	resp, err := svc.ToggleRating(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, repositories.RatingActionLiked, resp.Action)
	assert.Equal(t, int64(1), resp.TotalLikes)

	// A second toggle by the same user removes the like.
	resp, err = svc.ToggleRating(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, repositories.RatingActionUnliked, resp.Action)
	assert.Equal(t, int64(0), resp.TotalLikes)

	// And a third restores it.
	resp, err = svc.ToggleRating(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, repositories.RatingActionLiked, resp.Action)
	assert.Equal(t, int64(1), resp.TotalLikes)
}

func TestToggleRating_UnknownNote(t *testing.T) {
	svc, _ := newRatingServiceForTest(t)

	_, err := svc.ToggleRating(context.Background(), 999, 5)
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
}

func TestListRatings(t *testing.T) {
	svc, _ := newRatingServiceForTest(t)

	_, err := svc.ToggleRating(context.Background(), 1, 5)
	require.NoError(t, err)
	_, err = svc.ToggleRating(context.Background(), 1, 6)
	require.NoError(t, err)

	resp, err := svc.ListRatings(context.Background(), 1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Likes)
	assert.Len(t, resp.Users, 2)
}

func TestListRatings_EmptyUsersNotNil(t *testing.T) {
	svc, _ := newRatingServiceForTest(t)

	resp, err := svc.ListRatings(context.Background(), 1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Likes)
	assert.NotNil(t, resp.Users)
	assert.Empty(t, resp.Users)
}

func TestListRatings_UnknownNote(t *testing.T) {
	svc, _ := newRatingServiceForTest(t)

	_, err := svc.ListRatings(context.Background(), 999, 20, 0)
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
}
