package service

import (
	"testing"

	"newtube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubscriptionStore 内存订阅表，(viewer, creator) 至多一行
type fakeSubscriptionStore struct {
	rows map[[2]int64]bool
}

func newFakeSubscriptionStore() *fakeSubscriptionStore {
	return &fakeSubscriptionStore{rows: make(map[[2]int64]bool)}
}

func (f *fakeSubscriptionStore) Create(viewerID, creatorID int64) (*model.Subscription, error) {
	f.rows[[2]int64{viewerID, creatorID}] = true
	return &model.Subscription{ViewerID: viewerID, CreatorID: creatorID}, nil
}

func (f *fakeSubscriptionStore) Delete(viewerID, creatorID int64) (bool, error) {
	key := [2]int64{viewerID, creatorID}
	existed := f.rows[key]
	delete(f.rows, key)
	return existed, nil
}

func (f *fakeSubscriptionStore) CountByCreator(creatorID int64) (int64, error) {
	var n int64
	for key := range f.rows {
		if key[1] == creatorID {
			n++
		}
	}
	return n, nil
}

func newTestSubscriptionService(store *fakeSubscriptionStore) *SubscriptionService {
	return &SubscriptionService{
		subStore: store,
		userRepo: &fakeUserFinder{users: map[int64]*model.User{
			1: {ID: 1, Name: "Creator"},
			2: {ID: 2, Name: "Viewer"},
		}},
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	store := newFakeSubscriptionStore()
	svc := newTestSubscriptionService(store)

	data, err := svc.Subscribe(2, 1)
	require.NoError(t, err)
	assert.True(t, data.Subscribed)
	assert.Equal(t, int64(1), data.SubscriberCount)

	// 重复订阅幂等
	data, err = svc.Subscribe(2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.SubscriberCount)

	data, err = svc.Unsubscribe(2, 1)
	require.NoError(t, err)
	assert.False(t, data.Subscribed)
	assert.Equal(t, int64(0), data.SubscriberCount)

	// 未订阅时取消同样幂等
	data, err = svc.Unsubscribe(2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), data.SubscriberCount)
}

func TestSubscribeSelf(t *testing.T) {
	svc := newTestSubscriptionService(newFakeSubscriptionStore())

	_, err := svc.Subscribe(1, 1)
	assert.ErrorIs(t, err, ErrCannotSubscribeSelf)

	_, err = svc.Unsubscribe(1, 1)
	assert.ErrorIs(t, err, ErrCannotSubscribeSelf)
}

func TestSubscribeUnknownCreator(t *testing.T) {
	svc := newTestSubscriptionService(newFakeSubscriptionStore())

	_, err := svc.Subscribe(2, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
