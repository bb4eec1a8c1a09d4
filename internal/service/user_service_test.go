package service

import (
	"testing"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserStore 以 external_id 为主键的内存用户表
type fakeUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) GetByExternalID(externalID string) (*model.User, error) {
	if u, ok := f.users[externalID]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// Create 模拟 external_id 冲突覆盖的 upsert 语义
func (f *fakeUserStore) Create(user *model.User) error {
	if existing, ok := f.users[user.ExternalID]; ok {
		existing.Name = user.Name
		existing.AvatarURL = user.AvatarURL
		return nil
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ExternalID] = user
	return nil
}

func (f *fakeUserStore) UpdateByExternalID(externalID string, updates map[string]interface{}) error {
	u, ok := f.users[externalID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		u.Name = name
	}
	if avatar, ok := updates["avatar_url"].(string); ok {
		u.AvatarURL = avatar
	}
	return nil
}

func (f *fakeUserStore) DeleteByExternalID(externalID string) (bool, error) {
	if _, ok := f.users[externalID]; !ok {
		return false, nil
	}
	delete(f.users, externalID)
	return true, nil
}

func TestHandleIdentityEventCreated(t *testing.T) {
	store := newFakeUserStore()
	svc := &UserService{userStore: store}

	err := svc.HandleIdentityEvent(&dto.IdentityEvent{
		Type: "user.created",
		Data: dto.IdentityEventData{ID: "ext-1", FirstName: "Ada", LastName: "Lovelace", ImageURL: "https://img/a.png"},
	})
	require.NoError(t, err)
	require.Contains(t, store.users, "ext-1")
	assert.Equal(t, "Ada Lovelace", store.users["ext-1"].Name)

	// created 重放：按事件内容覆盖，不重复建行
	err = svc.HandleIdentityEvent(&dto.IdentityEvent{
		Type: "user.created",
		Data: dto.IdentityEventData{ID: "ext-1", FirstName: "Ada", LastName: "L."},
	})
	require.NoError(t, err)
	assert.Len(t, store.users, 1)
	assert.Equal(t, "Ada L.", store.users["ext-1"].Name)
}

func TestHandleIdentityEventUpdatedBeforeCreated(t *testing.T) {
	store := newFakeUserStore()
	svc := &UserService{userStore: store}

	// updated 先于 created 到达时直接落库
	err := svc.HandleIdentityEvent(&dto.IdentityEvent{
		Type: "user.updated",
		Data: dto.IdentityEventData{ID: "ext-2", FirstName: "Grace"},
	})
	require.NoError(t, err)
	require.Contains(t, store.users, "ext-2")
	assert.Equal(t, "Grace", store.users["ext-2"].Name)
}

func TestHandleIdentityEventDeleted(t *testing.T) {
	store := newFakeUserStore()
	svc := &UserService{userStore: store}

	require.NoError(t, store.Create(&model.User{ExternalID: "ext-3", Name: "Bob"}))

	err := svc.HandleIdentityEvent(&dto.IdentityEvent{
		Type: "user.deleted",
		Data: dto.IdentityEventData{ID: "ext-3"},
	})
	require.NoError(t, err)
	assert.NotContains(t, store.users, "ext-3")

	// 删除不存在的用户只记日志，不报错
	err = svc.HandleIdentityEvent(&dto.IdentityEvent{
		Type: "user.deleted",
		Data: dto.IdentityEventData{ID: "ext-3"},
	})
	assert.NoError(t, err)
}

func TestHandleIdentityEventUnknownType(t *testing.T) {
	svc := &UserService{userStore: newFakeUserStore()}

	err := svc.HandleIdentityEvent(&dto.IdentityEvent{Type: "session.created"})
	assert.NoError(t, err)
}

func TestResolveExternalID(t *testing.T) {
	store := newFakeUserStore()
	svc := &UserService{userStore: store}

	require.NoError(t, store.Create(&model.User{ExternalID: "ext-9", Name: "Eve"}))

	id, err := svc.ResolveExternalID("ext-9")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = svc.ResolveExternalID("ext-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", displayName(&dto.IdentityEventData{FirstName: "Ada", LastName: "Lovelace"}))
	assert.Equal(t, "Ada", displayName(&dto.IdentityEventData{FirstName: " Ada "}))
	assert.Equal(t, "User", displayName(&dto.IdentityEventData{}))
}
