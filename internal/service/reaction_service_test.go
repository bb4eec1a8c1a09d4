package service

import (
	"testing"

	"newtube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeReactionStore 内存反应事实表，(userID, targetID) 至多一行
type fakeReactionStore struct {
	rows    map[[2]int64]string
	deletes int
	upserts int
}

func newFakeReactionStore() *fakeReactionStore {
	return &fakeReactionStore{rows: make(map[[2]int64]string)}
}

func (f *fakeReactionStore) GetType(userID, targetID int64) (*string, error) {
	t, ok := f.rows[[2]int64{userID, targetID}]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeReactionStore) Upsert(userID, targetID int64, reactionType string) error {
	f.upserts++
	f.rows[[2]int64{userID, targetID}] = reactionType
	return nil
}

func (f *fakeReactionStore) Delete(userID, targetID int64) (bool, error) {
	f.deletes++
	key := [2]int64{userID, targetID}
	_, ok := f.rows[key]
	delete(f.rows, key)
	return ok, nil
}

func (f *fakeReactionStore) CountByType(targetID int64, reactionType string) (int64, error) {
	var n int64
	for key, t := range f.rows {
		if key[1] == targetID && t == reactionType {
			n++
		}
	}
	return n, nil
}

type fakeVideoFinder struct {
	ids map[int64]bool
}

func (f *fakeVideoFinder) GetByID(id int64) (*model.Video, error) {
	if !f.ids[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Video{ID: id}, nil
}

type fakeCommentFinder struct {
	ids map[int64]bool
}

func (f *fakeCommentFinder) GetByID(id int64) (*model.Comment, error) {
	if !f.ids[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Comment{ID: id}, nil
}

func newTestReactionService(store *fakeReactionStore) *ReactionService {
	return &ReactionService{
		videoStore:   store,
		commentStore: store,
		videoRepo:    &fakeVideoFinder{ids: map[int64]bool{1: true}},
		commentRepo:  &fakeCommentFinder{ids: map[int64]bool{1: true}},
	}
}

func TestToggleVideoReactionLifecycle(t *testing.T) {
	store := newFakeReactionStore()
	svc := newTestReactionService(store)

	// 首次 like：写入一行
	data, err := svc.ToggleVideoReaction(10, 1, model.ReactionLike)
	require.NoError(t, err)
	require.NotNil(t, data.ViewerReaction)
	assert.Equal(t, model.ReactionLike, *data.ViewerReaction)
	assert.Equal(t, int64(1), data.LikeCount)
	assert.Equal(t, int64(0), data.DislikeCount)

	// 再次 like：视为取消，回到无反应
	data, err = svc.ToggleVideoReaction(10, 1, model.ReactionLike)
	require.NoError(t, err)
	assert.Nil(t, data.ViewerReaction)
	assert.Equal(t, int64(0), data.LikeCount)
	assert.Equal(t, 1, store.deletes)
	assert.Empty(t, store.rows)
}

func TestToggleVideoReactionSwitchOverwrites(t *testing.T) {
	store := newFakeReactionStore()
	svc := newTestReactionService(store)

	_, err := svc.ToggleVideoReaction(10, 1, model.ReactionLike)
	require.NoError(t, err)

	// like 切换到 dislike：原地覆盖，不产生第二行
	data, err := svc.ToggleVideoReaction(10, 1, model.ReactionDislike)
	require.NoError(t, err)
	require.NotNil(t, data.ViewerReaction)
	assert.Equal(t, model.ReactionDislike, *data.ViewerReaction)
	assert.Equal(t, int64(0), data.LikeCount)
	assert.Equal(t, int64(1), data.DislikeCount)
	assert.Len(t, store.rows, 1)
	assert.Equal(t, 0, store.deletes)
}

func TestToggleVideoReactionCountsAcrossUsers(t *testing.T) {
	store := newFakeReactionStore()
	svc := newTestReactionService(store)

	_, err := svc.ToggleVideoReaction(10, 1, model.ReactionLike)
	require.NoError(t, err)
	_, err = svc.ToggleVideoReaction(11, 1, model.ReactionLike)
	require.NoError(t, err)

	data, err := svc.ToggleVideoReaction(12, 1, model.ReactionDislike)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.LikeCount)
	assert.Equal(t, int64(1), data.DislikeCount)
}

func TestToggleVideoReactionInvalidType(t *testing.T) {
	svc := newTestReactionService(newFakeReactionStore())

	_, err := svc.ToggleVideoReaction(10, 1, "love")
	assert.ErrorIs(t, err, ErrInvalidReactionType)
}

func TestToggleVideoReactionVideoNotFound(t *testing.T) {
	svc := newTestReactionService(newFakeReactionStore())

	_, err := svc.ToggleVideoReaction(10, 999, model.ReactionLike)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestToggleCommentReaction(t *testing.T) {
	store := newFakeReactionStore()
	svc := newTestReactionService(store)

	data, err := svc.ToggleCommentReaction(10, 1, model.ReactionDislike)
	require.NoError(t, err)
	require.NotNil(t, data.ViewerReaction)
	assert.Equal(t, model.ReactionDislike, *data.ViewerReaction)

	_, err = svc.ToggleCommentReaction(10, 999, model.ReactionLike)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
