package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"newtube-go/internal/api/dto"
	infraKafka "newtube-go/internal/infra/kafka"
	"newtube-go/internal/infra/mediapipe"
	"newtube-go/internal/model"
	"newtube-go/internal/repository"
	"newtube-go/pkg/cursor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeVideoStore 内存视频表，map 形式的 updates 直接套回模型字段
type fakeVideoStore struct {
	videos map[int64]*model.Video
	nextID int64
}

func newFakeVideoStore() *fakeVideoStore {
	return &fakeVideoStore{videos: make(map[int64]*model.Video)}
}

func (f *fakeVideoStore) Create(video *model.Video) error {
	f.nextID++
	video.ID = f.nextID
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now
	f.videos[video.ID] = video
	return nil
}

func (f *fakeVideoStore) GetByID(id int64) (*model.Video, error) {
	if v, ok := f.videos[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVideoStore) GetByIDAndOwner(videoID, ownerID int64) (*model.Video, error) {
	if v, ok := f.videos[videoID]; ok && v.UserID == ownerID {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVideoStore) GetByUploadID(uploadID string) (*model.Video, error) {
	for _, v := range f.videos {
		if v.UploadID != nil && *v.UploadID == uploadID {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func applyVideoUpdates(v *model.Video, updates map[string]interface{}) {
	strPtr := func(val interface{}) *string {
		if s, ok := val.(string); ok {
			return &s
		}
		return nil
	}
	for key, val := range updates {
		switch key {
		case "title":
			v.Title = val.(string)
		case "description":
			v.Description = val.(string)
		case "visibility":
			v.Visibility = val.(string)
		case "category_id":
			if val == nil {
				v.CategoryID = nil
			} else {
				id := val.(int64)
				v.CategoryID = &id
			}
		case "duration":
			v.Duration = val.(int)
		case "asset_id":
			v.AssetID = strPtr(val)
		case "asset_status":
			v.AssetStatus = val.(string)
		case "playback_id":
			v.PlaybackID = strPtr(val)
		case "thumbnail_url":
			v.ThumbnailURL = strPtr(val)
		case "thumbnail_key":
			v.ThumbnailKey = strPtr(val)
		case "preview_url":
			v.PreviewURL = strPtr(val)
		case "preview_key":
			v.PreviewKey = strPtr(val)
		case "track_id":
			v.TrackID = strPtr(val)
		case "track_status":
			v.TrackStatus = strPtr(val)
		}
	}
	v.UpdatedAt = time.Now()
}

func (f *fakeVideoStore) UpdateByID(videoID int64, updates map[string]interface{}) error {
	v, ok := f.videos[videoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	applyVideoUpdates(v, updates)
	return nil
}

func (f *fakeVideoStore) UpdateOwned(videoID, ownerID int64, updates map[string]interface{}) error {
	v, ok := f.videos[videoID]
	if !ok || v.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	applyVideoUpdates(v, updates)
	return nil
}

func (f *fakeVideoStore) DeleteOwned(videoID, ownerID int64) (bool, error) {
	v, ok := f.videos[videoID]
	if !ok || v.UserID != ownerID {
		return false, nil
	}
	delete(f.videos, videoID)
	return true, nil
}

func (f *fakeVideoStore) UpdateByUploadID(uploadID string, updates map[string]interface{}) error {
	v, err := f.GetByUploadID(uploadID)
	if err != nil {
		return err
	}
	applyVideoUpdates(v, updates)
	return nil
}

func (f *fakeVideoStore) UpdateByAssetID(assetID string, updates map[string]interface{}) error {
	for _, v := range f.videos {
		if v.AssetID != nil && *v.AssetID == assetID {
			applyVideoUpdates(v, updates)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeVideoStore) DeleteByUploadID(uploadID string) error {
	for id, v := range f.videos {
		if v.UploadID != nil && *v.UploadID == uploadID {
			delete(f.videos, id)
			return nil
		}
	}
	return nil
}

func videoToRow(v *model.Video) repository.VideoRow {
	return repository.VideoRow{
		ID:           v.ID,
		UserID:       v.UserID,
		CategoryID:   v.CategoryID,
		Title:        v.Title,
		Description:  v.Description,
		Duration:     v.Duration,
		Visibility:   v.Visibility,
		ThumbnailURL: v.ThumbnailURL,
		PreviewURL:   v.PreviewURL,
		AssetStatus:  v.AssetStatus,
		PlaybackID:   v.PlaybackID,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func (f *fakeVideoStore) GetDetail(videoID, viewerID int64) (*repository.VideoRow, error) {
	v, ok := f.videos[videoID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row := videoToRow(v)
	return &row, nil
}

func (f *fakeVideoStore) listRows(filter func(*model.Video) bool, cur *cursor.Cursor, limit int) []repository.VideoRow {
	rows := make([]repository.VideoRow, 0)
	for _, v := range f.videos {
		if !filter(v) {
			continue
		}
		if cur != nil {
			if v.UpdatedAt.After(cur.UpdatedAt) {
				continue
			}
			if v.UpdatedAt.Equal(cur.UpdatedAt) && v.ID >= cur.ID {
				continue
			}
		}
		rows = append(rows, videoToRow(v))
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].UpdatedAt.Equal(rows[j].UpdatedAt) {
			return rows[i].UpdatedAt.After(rows[j].UpdatedAt)
		}
		return rows[i].ID > rows[j].ID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func (f *fakeVideoStore) ListPublic(categoryID *int64, cur *cursor.Cursor, limit int, viewerID int64) ([]repository.VideoRow, error) {
	return f.listRows(func(v *model.Video) bool {
		if v.Visibility != model.VisibilityPublic {
			return false
		}
		if categoryID != nil && (v.CategoryID == nil || *v.CategoryID != *categoryID) {
			return false
		}
		return true
	}, cur, limit), nil
}

func (f *fakeVideoStore) CountPublic(categoryID *int64) (int64, error) {
	var n int64
	for _, v := range f.videos {
		if v.Visibility != model.VisibilityPublic {
			continue
		}
		if categoryID != nil && (v.CategoryID == nil || *v.CategoryID != *categoryID) {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeVideoStore) ListByOwner(ownerID int64, cur *cursor.Cursor, limit int) ([]repository.VideoRow, error) {
	return f.listRows(func(v *model.Video) bool { return v.UserID == ownerID }, cur, limit), nil
}

func (f *fakeVideoStore) CountByOwner(ownerID int64) (int64, error) {
	var n int64
	for _, v := range f.videos {
		if v.UserID == ownerID {
			n++
		}
	}
	return n, nil
}

type fakeCategoryFinder struct {
	ids map[int64]bool
}

func (f *fakeCategoryFinder) GetByID(id int64) (*model.Category, error) {
	if !f.ids[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Category{ID: id}, nil
}

type fakeViewRecorder struct {
	views map[[2]int64]bool
}

func newFakeViewRecorder() *fakeViewRecorder {
	return &fakeViewRecorder{views: make(map[[2]int64]bool)}
}

func (f *fakeViewRecorder) Record(userID, videoID int64) (*model.VideoView, error) {
	f.views[[2]int64{userID, videoID}] = true
	return &model.VideoView{UserID: userID, VideoID: videoID}, nil
}

func (f *fakeViewRecorder) CountByVideo(videoID int64) (int64, error) {
	var n int64
	for key := range f.views {
		if key[1] == videoID {
			n++
		}
	}
	return n, nil
}

// newTestVideoService 外部依赖全部替换成无副作用的 stub
func newTestVideoService(store *fakeVideoStore) *VideoService {
	return &VideoService{
		videoRepo:    store,
		categoryRepo: &fakeCategoryFinder{ids: map[int64]bool{1: true}},
		viewRepo:     newFakeViewRecorder(),
		createUpload: func(ctx context.Context) (*mediapipe.Upload, error) {
			return &mediapipe.Upload{UploadID: "up-1", UploadURL: "https://upload.example/up-1"}, nil
		},
		fetchThumbnail: func(ctx context.Context, playbackID string) ([]byte, string, error) {
			return []byte("jpg"), "image/jpeg", nil
		},
		fetchPreview: func(ctx context.Context, playbackID string) ([]byte, string, error) {
			return []byte("gif"), "image/gif", nil
		},
		storeImage: func(ctx context.Context, bucket, object string, data []byte, contentType string) (string, error) {
			return "https://cdn.example/" + bucket + "/" + object, nil
		},
		removeImage: func(ctx context.Context, bucket, object string) error { return nil },
		sendTask:    func(ctx context.Context, task *infraKafka.EnrichTask) error { return nil },
	}
}

func seedVideo(store *fakeVideoStore, userID int64, uploadID string) *model.Video {
	v := &model.Video{
		UserID:      userID,
		Title:       "Untitled",
		Visibility:  model.VisibilityPrivate,
		AssetStatus: model.AssetStatusWaiting,
		UploadID:    &uploadID,
	}
	_ = store.Create(v)
	return v
}

func TestVideoCreate(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)

	data, err := svc.Create(10)
	require.NoError(t, err)
	assert.Equal(t, "up-1", data.UploadID)
	assert.Equal(t, "https://upload.example/up-1", data.UploadURL)

	v := store.videos[data.VideoID]
	require.NotNil(t, v)
	assert.Equal(t, model.VisibilityPrivate, v.Visibility)
	assert.Equal(t, model.AssetStatusWaiting, v.AssetStatus)
}

func TestVideoCreateUploadFails(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	svc.createUpload = func(ctx context.Context) (*mediapipe.Upload, error) {
		return nil, errors.New("upstream down")
	}

	_, err := svc.Create(10)
	require.Error(t, err)
	assert.Empty(t, store.videos)
}

func TestVideoUpdate(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	title := "My Video"
	visibility := model.VisibilityPublic
	info, err := svc.Update(v.ID, 10, &dto.VideoUpdateRequest{Title: &title, Visibility: &visibility})
	require.NoError(t, err)
	assert.Equal(t, "My Video", info.Title)
	assert.Equal(t, model.VisibilityPublic, info.Visibility)
}

func TestVideoUpdateNoFields(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	_, err := svc.Update(v.ID, 10, &dto.VideoUpdateRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestVideoUpdateCategory(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	unknown := int64(999)
	_, err := svc.Update(v.ID, 10, &dto.VideoUpdateRequest{CategoryID: &unknown})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	valid := int64(1)
	info, err := svc.Update(v.ID, 10, &dto.VideoUpdateRequest{CategoryID: &valid})
	require.NoError(t, err)
	require.NotNil(t, info.CategoryID)
	assert.Equal(t, int64(1), *info.CategoryID)

	// category_id = 0 表示清除分类
	zero := int64(0)
	info, err = svc.Update(v.ID, 10, &dto.VideoUpdateRequest{CategoryID: &zero})
	require.NoError(t, err)
	assert.Nil(t, info.CategoryID)
}

func TestVideoUpdateNotOwner(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	title := "hijack"
	_, err := svc.Update(v.ID, 99, &dto.VideoUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoRemove(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	removed := make([]string, 0)
	svc.removeImage = func(ctx context.Context, bucket, object string) error {
		removed = append(removed, bucket+"/"+object)
		return nil
	}
	key := "1/thumbnail.jpg"
	v.ThumbnailKey = &key

	require.NoError(t, svc.Remove(v.ID, 10))
	assert.Empty(t, store.videos)
	assert.Equal(t, []string{"thumbnails/1/thumbnail.jpg"}, removed)

	assert.ErrorIs(t, svc.Remove(v.ID, 10), ErrVideoNotFound)
}

func TestVideoRecordViewIdempotent(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	count, err := svc.RecordView(20, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 同一用户重复观看不增计数
	count, err = svc.RecordView(20, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.RecordView(21, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestVideoFeedPagination(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		uploadID := "up"
		store.Create(&model.Video{
			UserID:     10,
			Title:      "v",
			Visibility: model.VisibilityPublic,
			UploadID:   &uploadID,
		})
		store.videos[int64(i+1)].UpdatedAt = base.Add(time.Duration(i) * time.Minute)
	}
	// 私有视频不进公开流
	seedVideo(store, 10, "up-private")

	page1, err := svc.GetFeed(nil, "", 5, 0)
	require.NoError(t, err)
	require.Len(t, page1.Videos, 5)
	assert.Equal(t, int64(7), page1.TotalCount)
	assert.Equal(t, int64(7), page1.Videos[0].ID)
	require.NotNil(t, page1.NextCursor)

	page2, err := svc.GetFeed(nil, *page1.NextCursor, 5, 0)
	require.NoError(t, err)
	require.Len(t, page2.Videos, 2)
	assert.Equal(t, int64(1), page2.Videos[1].ID)
	assert.Nil(t, page2.NextCursor)
}

func TestVideoStudioListIncludesPrivate(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	seedVideo(store, 10, "up-1")
	seedVideo(store, 10, "up-2")
	seedVideo(store, 99, "up-3")

	data, err := svc.GetStudioList(10, "", 20)
	require.NoError(t, err)
	assert.Len(t, data.Videos, 2)
	assert.Equal(t, int64(2), data.TotalCount)
}

func TestRestoreThumbnail(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	// 转码未完成时拒绝
	_, err := svc.RestoreThumbnail(v.ID, 10)
	assert.ErrorIs(t, err, ErrAssetNotReady)

	playbackID := "pb-1"
	v.PlaybackID = &playbackID
	oldKey := "1/thumbnail-old.jpg"
	v.ThumbnailKey = &oldKey

	var removedKey string
	svc.removeImage = func(ctx context.Context, bucket, object string) error {
		removedKey = object
		return nil
	}

	info, err := svc.RestoreThumbnail(v.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, "1/thumbnail-old.jpg", removedKey)
	require.NotNil(t, info.ThumbnailURL)
	require.NotNil(t, v.ThumbnailKey)
	assert.NotEqual(t, "1/thumbnail-old.jpg", *v.ThumbnailKey)
}

func TestUploadThumbnail(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")
	oldKey := "1/thumbnail.jpg"
	v.ThumbnailKey = &oldKey

	var removedKey string
	svc.removeImage = func(ctx context.Context, bucket, object string) error {
		removedKey = object
		return nil
	}

	info, err := svc.UploadThumbnail(v.ID, 10, []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	// 旧对象先清理，再写入带扩展名的新对象
	assert.Equal(t, "1/thumbnail.jpg", removedKey)
	require.NotNil(t, v.ThumbnailKey)
	assert.NotEqual(t, "1/thumbnail.jpg", *v.ThumbnailKey)
	assert.Contains(t, *v.ThumbnailKey, ".png")
	require.NotNil(t, info.ThumbnailURL)
}

func TestUploadThumbnailRejectsNonImage(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	_, err := svc.UploadThumbnail(v.ID, 10, []byte("%PDF-"), "application/pdf")
	assert.ErrorIs(t, err, ErrInvalidImageType)

	_, err = svc.UploadThumbnail(v.ID, 99, []byte("jpg"), "image/jpeg")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestEnqueueTranscriptTask(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	var sent *infraKafka.EnrichTask
	svc.sendTask = func(ctx context.Context, task *infraKafka.EnrichTask) error {
		sent = task
		return nil
	}

	assert.ErrorIs(t, svc.GenerateTitle(v.ID, 10), ErrAssetNotReady)

	playbackID := "pb-1"
	v.PlaybackID = &playbackID
	assert.ErrorIs(t, svc.GenerateTitle(v.ID, 10), ErrTranscriptNotReady)

	trackID := "trk-1"
	v.TrackID = &trackID
	require.NoError(t, svc.GenerateDescription(v.ID, 10))
	require.NotNil(t, sent)
	assert.Equal(t, infraKafka.EnrichKindDescription, sent.Kind)
	assert.Equal(t, "pb-1", sent.PlaybackID)
	assert.Equal(t, "trk-1", sent.TrackID)

	assert.ErrorIs(t, svc.GenerateTitle(v.ID, 99), ErrVideoNotFound)
}

func TestGenerateThumbnailTask(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	var sent *infraKafka.EnrichTask
	svc.sendTask = func(ctx context.Context, task *infraKafka.EnrichTask) error {
		sent = task
		return nil
	}

	require.NoError(t, svc.GenerateThumbnail(v.ID, 10, &dto.GenerateThumbnailRequest{Prompt: "a red panda coding"}))
	require.NotNil(t, sent)
	assert.Equal(t, infraKafka.EnrichKindThumbnail, sent.Kind)
	assert.Equal(t, "a red panda coding", sent.Prompt)
}

func TestApplyEnrichResult(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	require.NoError(t, svc.ApplyEnrichResult(&infraKafka.EnrichResult{
		VideoID: v.ID,
		Kind:    infraKafka.EnrichKindTitle,
		Status:  infraKafka.EnrichStatusDone,
		Value:   "Generated Title",
	}))
	assert.Equal(t, "Generated Title", v.Title)

	// 失败结果只记日志，不回写
	require.NoError(t, svc.ApplyEnrichResult(&infraKafka.EnrichResult{
		VideoID: v.ID,
		Kind:    infraKafka.EnrichKindTitle,
		Status:  infraKafka.EnrichStatusFailed,
		Error:   "model timeout",
	}))
	assert.Equal(t, "Generated Title", v.Title)
}

func TestApplyEnrichResultThumbnail(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")
	oldKey := "1/thumbnail.jpg"
	v.ThumbnailKey = &oldKey

	var removedKey string
	svc.removeImage = func(ctx context.Context, bucket, object string) error {
		removedKey = object
		return nil
	}

	require.NoError(t, svc.ApplyEnrichResult(&infraKafka.EnrichResult{
		VideoID: v.ID,
		Kind:    infraKafka.EnrichKindThumbnail,
		Status:  infraKafka.EnrichStatusDone,
		Value:   "1/thumbnail-ai-123.png",
		URL:     "https://cdn.example/thumbnails/1/thumbnail-ai-123.png",
	}))
	assert.Equal(t, "1/thumbnail.jpg", removedKey)
	require.NotNil(t, v.ThumbnailKey)
	assert.Equal(t, "1/thumbnail-ai-123.png", *v.ThumbnailKey)
}

func TestHandleMediaEventAssetCreated(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	err := svc.HandleMediaEvent(&dto.MediaEvent{
		Type: "video.asset.created",
		Data: dto.MediaEventData{ID: "asset-1", UploadID: "up-1"},
	})
	require.NoError(t, err)
	require.NotNil(t, v.AssetID)
	assert.Equal(t, "asset-1", *v.AssetID)
	assert.Equal(t, model.AssetStatusPreparing, v.AssetStatus)

	err = svc.HandleMediaEvent(&dto.MediaEvent{
		Type: "video.asset.created",
		Data: dto.MediaEventData{ID: "asset-1"},
	})
	assert.ErrorIs(t, err, ErrMissingUploadID)
}

func TestHandleMediaEventAssetReady(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	err := svc.HandleMediaEvent(&dto.MediaEvent{
		Type: "video.asset.ready",
		Data: dto.MediaEventData{
			ID:          "asset-1",
			UploadID:    "up-1",
			Duration:    12.3456,
			PlaybackIDs: []dto.MediaPlaybackID{{ID: "pb-1", Policy: "public"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.AssetStatusReady, v.AssetStatus)
	// 秒转毫秒，四舍五入
	assert.Equal(t, 12346, v.Duration)
	require.NotNil(t, v.PlaybackID)
	assert.Equal(t, "pb-1", *v.PlaybackID)
	require.NotNil(t, v.ThumbnailKey)
	require.NotNil(t, v.PreviewKey)
}

func TestHandleMediaEventAssetReadyKeepsCustomThumbnail(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")
	custom := "1/thumbnail-ai-9.png"
	v.ThumbnailKey = &custom

	err := svc.HandleMediaEvent(&dto.MediaEvent{
		Type: "video.asset.ready",
		Data: dto.MediaEventData{
			ID:          "asset-1",
			UploadID:    "up-1",
			Duration:    1,
			PlaybackIDs: []dto.MediaPlaybackID{{ID: "pb-1"}},
		},
	})
	require.NoError(t, err)
	// 已有自定义封面不被默认封面覆盖
	assert.Equal(t, "1/thumbnail-ai-9.png", *v.ThumbnailKey)
}

func TestHandleMediaEventAssetErroredAndDeleted(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")

	err := svc.HandleMediaEvent(&dto.MediaEvent{
		Type: "video.asset.errored",
		Data: dto.MediaEventData{UploadID: "up-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.AssetStatusErrored, v.AssetStatus)

	err = svc.HandleMediaEvent(&dto.MediaEvent{
		Type: "video.asset.deleted",
		Data: dto.MediaEventData{UploadID: "up-1"},
	})
	require.NoError(t, err)
	assert.Empty(t, store.videos)
}

func TestHandleMediaEventTrackReady(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)
	v := seedVideo(store, 10, "up-1")
	assetID := "asset-1"
	v.AssetID = &assetID

	err := svc.HandleMediaEvent(&dto.MediaEvent{
		Type: "video.asset.track.ready",
		Data: dto.MediaEventData{ID: "trk-1", AssetID: "asset-1", Status: "ready"},
	})
	require.NoError(t, err)
	require.NotNil(t, v.TrackID)
	assert.Equal(t, "trk-1", *v.TrackID)

	err = svc.HandleMediaEvent(&dto.MediaEvent{
		Type: "video.asset.track.ready",
		Data: dto.MediaEventData{ID: "trk-1"},
	})
	assert.ErrorIs(t, err, ErrMissingAssetID)
}

func TestHandleMediaEventUnknownType(t *testing.T) {
	svc := newTestVideoService(newFakeVideoStore())

	err := svc.HandleMediaEvent(&dto.MediaEvent{Type: "video.upload.cancelled"})
	assert.NoError(t, err)
}
