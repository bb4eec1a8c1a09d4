package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/config"
	infraES "newtube-go/internal/infra/elasticsearch"
	infraKafka "newtube-go/internal/infra/kafka"
	"newtube-go/internal/infra/mediapipe"
	infraMinio "newtube-go/internal/infra/minio"
	"newtube-go/internal/model"
	"newtube-go/internal/repository"
	"newtube-go/pkg/cursor"
	"newtube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound       = errors.New("视频不存在")
	ErrCategoryNotFound    = errors.New("分类不存在")
	ErrNoFieldsToUpdate    = errors.New("没有需要更新的字段")
	ErrAssetNotReady       = errors.New("视频尚未转码完成")
	ErrTranscriptNotReady  = errors.New("视频字幕尚未就绪")
	ErrInvalidImageType    = errors.New("不支持的图片类型")
	ErrMissingUploadID     = errors.New("媒体事件缺少 upload_id")
	ErrMissingAssetID      = errors.New("媒体事件缺少 asset_id")
)

// 媒体管线 Webhook 事件类型
const (
	mediaEventAssetCreated = "video.asset.created"
	mediaEventAssetReady   = "video.asset.ready"
	mediaEventAssetErrored = "video.asset.errored"
	mediaEventAssetDeleted = "video.asset.deleted"
	mediaEventTrackReady   = "video.asset.track.ready"
)

// videoStore 视频服务依赖的数据访问面
type videoStore interface {
	Create(video *model.Video) error
	GetByID(id int64) (*model.Video, error)
	GetByIDAndOwner(videoID, ownerID int64) (*model.Video, error)
	GetByUploadID(uploadID string) (*model.Video, error)
	UpdateByID(videoID int64, updates map[string]interface{}) error
	UpdateOwned(videoID, ownerID int64, updates map[string]interface{}) error
	DeleteOwned(videoID, ownerID int64) (bool, error)
	UpdateByUploadID(uploadID string, updates map[string]interface{}) error
	UpdateByAssetID(assetID string, updates map[string]interface{}) error
	DeleteByUploadID(uploadID string) error
	GetDetail(videoID, viewerID int64) (*repository.VideoRow, error)
	ListPublic(categoryID *int64, cur *cursor.Cursor, limit int, viewerID int64) ([]repository.VideoRow, error)
	CountPublic(categoryID *int64) (int64, error)
	ListByOwner(ownerID int64, cur *cursor.Cursor, limit int) ([]repository.VideoRow, error)
	CountByOwner(ownerID int64) (int64, error)
}

type categoryFinder interface {
	GetByID(id int64) (*model.Category, error)
}

type viewRecorder interface {
	Record(userID, videoID int64) (*model.VideoView, error)
	CountByVideo(videoID int64) (int64, error)
}

type VideoService struct {
	videoRepo    videoStore
	categoryRepo categoryFinder
	viewRepo     viewRecorder

	// 外部依赖以函数形式注入，默认指向 infra 包
	createUpload   func(ctx context.Context) (*mediapipe.Upload, error)
	fetchThumbnail func(ctx context.Context, playbackID string) ([]byte, string, error)
	fetchPreview   func(ctx context.Context, playbackID string) ([]byte, string, error)
	storeImage     func(ctx context.Context, bucket, object string, data []byte, contentType string) (string, error)
	removeImage    func(ctx context.Context, bucket, object string) error
	sendTask       func(ctx context.Context, task *infraKafka.EnrichTask) error
}

func NewVideoService(
	videoRepo *repository.VideoRepository,
	categoryRepo *repository.CategoryRepository,
	viewRepo *repository.VideoViewRepository,
) *VideoService {
	return &VideoService{
		videoRepo:    videoRepo,
		categoryRepo: categoryRepo,
		viewRepo:     viewRepo,
		createUpload: mediapipe.CreateUpload,
		fetchThumbnail: func(ctx context.Context, playbackID string) ([]byte, string, error) {
			return mediapipe.FetchBytes(ctx, mediapipe.ThumbnailURL(playbackID))
		},
		fetchPreview: func(ctx context.Context, playbackID string) ([]byte, string, error) {
			return mediapipe.FetchBytes(ctx, mediapipe.PreviewURL(playbackID))
		},
		storeImage:  infraMinio.UploadBytes,
		removeImage: infraMinio.RemoveObject,
		sendTask: func(ctx context.Context, task *infraKafka.EnrichTask) error {
			return infraKafka.SendEnrichTask(ctx, config.GetKafka().Topics["enrich_task"], task)
		},
	}
}

// Create 创建视频：在媒体管线注册直传会话，本地落一条待转码记录
func (s *VideoService) Create(userID int64) (*dto.VideoCreateData, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	upload, err := s.createUpload(ctx)
	if err != nil {
		logger.Error("Create media upload failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("创建上传会话失败: %w", err)
	}

	video := &model.Video{
		UserID:      userID,
		Title:       "Untitled",
		Visibility:  model.VisibilityPrivate,
		AssetStatus: model.AssetStatusWaiting,
		UploadID:    &upload.UploadID,
	}
	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}

	return &dto.VideoCreateData{
		VideoID:   video.ID,
		UploadID:  upload.UploadID,
		UploadURL: upload.UploadURL,
	}, nil
}

// Update 更新视频信息（仅作者本人）
func (s *VideoService) Update(videoID, userID int64, req *dto.VideoUpdateRequest) (*dto.VideoInfo, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Visibility != nil {
		updates["visibility"] = *req.Visibility
	}
	if req.CategoryID != nil {
		if *req.CategoryID == 0 {
			updates["category_id"] = nil
		} else {
			if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrCategoryNotFound
				}
				return nil, err
			}
			updates["category_id"] = *req.CategoryID
		}
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	// 归属条件直接进 UPDATE 谓词，0 行视为不存在，不泄露他人视频的存在性
	if err := s.videoRepo.UpdateOwned(videoID, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	s.syncSearchIndex(videoID)

	return s.GetDetail(videoID, userID)
}

// Remove 删除视频（仅作者本人，级联删除观看/反应/评论）
func (s *VideoService) Remove(videoID, userID int64) error {
	video, err := s.videoRepo.GetByIDAndOwner(videoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	deleted, err := s.videoRepo.DeleteOwned(videoID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVideoNotFound
	}

	s.cleanupObjects(video)
	s.deleteSearchIndex(videoID)

	return nil
}

// GetDetail 获取单个视频的聚合视图，匿名请求 viewerID 传 0
func (s *VideoService) GetDetail(videoID, viewerID int64) (*dto.VideoInfo, error) {
	row, err := s.videoRepo.GetDetail(videoID, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	info := toVideoInfo(row)
	return &info, nil
}

// RecordView 记录观看。同一用户对同一视频至多一行，重复观看不报错也不加行
func (s *VideoService) RecordView(userID, videoID int64) (int64, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrVideoNotFound
		}
		return 0, err
	}

	if _, err := s.viewRepo.Record(userID, videoID); err != nil {
		return 0, err
	}

	return s.viewRepo.CountByVideo(videoID)
}

// GetFeed 公开视频流（键集分页）
func (s *VideoService) GetFeed(categoryID *int64, cursorStr string, limit int, viewerID int64) (*dto.VideoListData, error) {
	cur, err := cursor.Decode(cursorStr)
	if err != nil {
		return nil, err
	}
	limit = clampPageLimit(limit)

	rows, err := s.videoRepo.ListPublic(categoryID, cur, limit+1, viewerID)
	if err != nil {
		return nil, err
	}

	total, err := s.videoRepo.CountPublic(categoryID)
	if err != nil {
		return nil, err
	}

	return buildVideoListData(rows, total, limit), nil
}

// GetStudioList 作者自己的视频列表（创作后台，含未公开视频）
func (s *VideoService) GetStudioList(ownerID int64, cursorStr string, limit int) (*dto.VideoListData, error) {
	cur, err := cursor.Decode(cursorStr)
	if err != nil {
		return nil, err
	}
	limit = clampPageLimit(limit)

	rows, err := s.videoRepo.ListByOwner(ownerID, cur, limit+1)
	if err != nil {
		return nil, err
	}

	total, err := s.videoRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	return buildVideoListData(rows, total, limit), nil
}

// RestoreThumbnail 丢弃自定义封面，重新从媒体管线抓取默认封面帧。
// 先清理旧对象再拉新图，外部调用都成功后才回写数据库
func (s *VideoService) RestoreThumbnail(videoID, userID int64) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByIDAndOwner(videoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if video.PlaybackID == nil {
		return nil, ErrAssetNotReady
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if video.ThumbnailKey != nil {
		if err := s.removeImage(ctx, infraMinio.BucketThumbnails, *video.ThumbnailKey); err != nil {
			logger.Warn("Remove old thumbnail failed",
				zap.Int64("video_id", videoID),
				zap.String("key", *video.ThumbnailKey),
				zap.Error(err))
		}
	}

	data, contentType, err := s.fetchThumbnail(ctx, *video.PlaybackID)
	if err != nil {
		return nil, fmt.Errorf("拉取封面失败: %w", err)
	}

	object := fmt.Sprintf("%d/thumbnail-%d.jpg", videoID, time.Now().Unix())
	url, err := s.storeImage(ctx, infraMinio.BucketThumbnails, object, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("存储封面失败: %w", err)
	}

	if err := s.videoRepo.UpdateOwned(videoID, userID, map[string]interface{}{
		"thumbnail_url": url,
		"thumbnail_key": object,
	}); err != nil {
		return nil, err
	}

	return s.GetDetail(videoID, userID)
}

// UploadThumbnail 上传自定义封面（仅作者本人）。
// 和 RestoreThumbnail 同样的顺序：先清理旧对象，外部存储成功后才回写数据库
func (s *VideoService) UploadThumbnail(videoID, userID int64, data []byte, contentType string) (*dto.VideoInfo, error) {
	ext, ok := thumbnailExt(contentType)
	if !ok {
		return nil, ErrInvalidImageType
	}

	video, err := s.videoRepo.GetByIDAndOwner(videoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if video.ThumbnailKey != nil {
		if err := s.removeImage(ctx, infraMinio.BucketThumbnails, *video.ThumbnailKey); err != nil {
			logger.Warn("Remove old thumbnail failed",
				zap.Int64("video_id", videoID),
				zap.String("key", *video.ThumbnailKey),
				zap.Error(err))
		}
	}

	object := fmt.Sprintf("%d/thumbnail-%d%s", videoID, time.Now().Unix(), ext)
	url, err := s.storeImage(ctx, infraMinio.BucketThumbnails, object, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("存储封面失败: %w", err)
	}

	if err := s.videoRepo.UpdateOwned(videoID, userID, map[string]interface{}{
		"thumbnail_url": url,
		"thumbnail_key": object,
	}); err != nil {
		return nil, err
	}

	return s.GetDetail(videoID, userID)
}

// thumbnailExt 按图片类型给出对象名后缀，非图片类型拒绝
func thumbnailExt(contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg":
		return ".jpg", true
	case "image/png":
		return ".png", true
	case "image/webp":
		return ".webp", true
	case "image/gif":
		return ".gif", true
	default:
		return "", false
	}
}

// GenerateTitle 提交 AI 标题生成任务（仅作者本人，需要字幕轨道就绪）
func (s *VideoService) GenerateTitle(videoID, userID int64) error {
	return s.enqueueTranscriptTask(videoID, userID, infraKafka.EnrichKindTitle)
}

// GenerateDescription 提交 AI 描述生成任务（仅作者本人，需要字幕轨道就绪）
func (s *VideoService) GenerateDescription(videoID, userID int64) error {
	return s.enqueueTranscriptTask(videoID, userID, infraKafka.EnrichKindDescription)
}

func (s *VideoService) enqueueTranscriptTask(videoID, userID int64, kind string) error {
	video, err := s.videoRepo.GetByIDAndOwner(videoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	if video.PlaybackID == nil {
		return ErrAssetNotReady
	}
	if video.TrackID == nil {
		return ErrTranscriptNotReady
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.sendTask(ctx, &infraKafka.EnrichTask{
		VideoID:    videoID,
		Kind:       kind,
		PlaybackID: *video.PlaybackID,
		TrackID:    *video.TrackID,
	})
}

// GenerateThumbnail 提交 AI 封面生成任务（仅作者本人）
func (s *VideoService) GenerateThumbnail(videoID, userID int64, req *dto.GenerateThumbnailRequest) error {
	if _, err := s.videoRepo.GetByIDAndOwner(videoID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.sendTask(ctx, &infraKafka.EnrichTask{
		VideoID: videoID,
		Kind:    infraKafka.EnrichKindThumbnail,
		Prompt:  req.Prompt,
	})
}

// ApplyEnrichResult 处理 Kafka 消费者收到的 AI 生成结果
func (s *VideoService) ApplyEnrichResult(result *infraKafka.EnrichResult) error {
	if result.Status != infraKafka.EnrichStatusDone {
		logger.Warn("Enrich task failed",
			zap.Int64("video_id", result.VideoID),
			zap.String("kind", result.Kind),
			zap.String("error", result.Error))
		return nil
	}

	switch result.Kind {
	case infraKafka.EnrichKindTitle:
		if err := s.videoRepo.UpdateByID(result.VideoID, map[string]interface{}{"title": result.Value}); err != nil {
			return err
		}
	case infraKafka.EnrichKindDescription:
		if err := s.videoRepo.UpdateByID(result.VideoID, map[string]interface{}{"description": result.Value}); err != nil {
			return err
		}
	case infraKafka.EnrichKindThumbnail:
		video, err := s.videoRepo.GetByID(result.VideoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if video.ThumbnailKey != nil && *video.ThumbnailKey != result.Value {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s.removeImage(ctx, infraMinio.BucketThumbnails, *video.ThumbnailKey); err != nil {
				logger.Warn("Remove replaced thumbnail failed",
					zap.Int64("video_id", result.VideoID), zap.Error(err))
			}
			cancel()
		}
		if err := s.videoRepo.UpdateByID(result.VideoID, map[string]interface{}{
			"thumbnail_url": result.URL,
			"thumbnail_key": result.Value,
		}); err != nil {
			return err
		}
	default:
		logger.Warn("Unknown enrich result kind", zap.String("kind", result.Kind))
		return nil
	}

	s.syncSearchIndex(result.VideoID)

	logger.Info("Enrich result applied",
		zap.Int64("video_id", result.VideoID),
		zap.String("kind", result.Kind))
	return nil
}

// HandleMediaEvent 处理媒体管线 Webhook 事件。
// 事件按 upload_id / asset_id 定位本地记录；抓图等外部调用都排在数据库回写之前
func (s *VideoService) HandleMediaEvent(event *dto.MediaEvent) error {
	switch event.Type {
	case mediaEventAssetCreated:
		if event.Data.UploadID == "" {
			return ErrMissingUploadID
		}
		status := event.Data.Status
		if status == "" {
			status = model.AssetStatusPreparing
		}
		return s.videoRepo.UpdateByUploadID(event.Data.UploadID, map[string]interface{}{
			"asset_id":     event.Data.ID,
			"asset_status": status,
		})

	case mediaEventAssetReady:
		return s.handleAssetReady(&event.Data)

	case mediaEventAssetErrored:
		if event.Data.UploadID == "" {
			return ErrMissingUploadID
		}
		return s.videoRepo.UpdateByUploadID(event.Data.UploadID, map[string]interface{}{
			"asset_status": model.AssetStatusErrored,
		})

	case mediaEventAssetDeleted:
		if event.Data.UploadID == "" {
			return ErrMissingUploadID
		}
		if video, err := s.videoRepo.GetByUploadID(event.Data.UploadID); err == nil {
			s.cleanupObjects(video)
			s.deleteSearchIndex(video.ID)
		}
		return s.videoRepo.DeleteByUploadID(event.Data.UploadID)

	case mediaEventTrackReady:
		// track.ready 没有 upload_id，ID 是轨道自己的标识
		if event.Data.AssetID == "" {
			return ErrMissingAssetID
		}
		return s.videoRepo.UpdateByAssetID(event.Data.AssetID, map[string]interface{}{
			"track_id":     event.Data.ID,
			"track_status": event.Data.Status,
		})

	default:
		logger.Debug("Ignoring media event", zap.String("type", event.Type))
		return nil
	}
}

func (s *VideoService) handleAssetReady(data *dto.MediaEventData) error {
	if data.UploadID == "" {
		return ErrMissingUploadID
	}

	updates := map[string]interface{}{
		"asset_status": model.AssetStatusReady,
		"asset_id":     data.ID,
		"duration":     int(math.Round(data.Duration * 1000)),
	}

	if len(data.PlaybackIDs) > 0 {
		playbackID := data.PlaybackIDs[0].ID
		updates["playback_id"] = playbackID

		video, err := s.videoRepo.GetByUploadID(data.UploadID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		// 已有自定义封面（AI 生成或手动上传）时不覆盖
		if video.ThumbnailKey == nil {
			if thumbData, contentType, err := s.fetchThumbnail(ctx, playbackID); err != nil {
				logger.Warn("Fetch thumbnail failed",
					zap.Int64("video_id", video.ID), zap.Error(err))
			} else {
				object := fmt.Sprintf("%d/thumbnail.jpg", video.ID)
				if url, err := s.storeImage(ctx, infraMinio.BucketThumbnails, object, thumbData, contentType); err != nil {
					logger.Warn("Store thumbnail failed",
						zap.Int64("video_id", video.ID), zap.Error(err))
				} else {
					updates["thumbnail_url"] = url
					updates["thumbnail_key"] = object
				}
			}
		}

		if previewData, contentType, err := s.fetchPreview(ctx, playbackID); err != nil {
			logger.Warn("Fetch preview failed",
				zap.Int64("video_id", video.ID), zap.Error(err))
		} else {
			object := fmt.Sprintf("%d/preview.gif", video.ID)
			if url, err := s.storeImage(ctx, infraMinio.BucketPreviews, object, previewData, contentType); err != nil {
				logger.Warn("Store preview failed",
					zap.Int64("video_id", video.ID), zap.Error(err))
			} else {
				updates["preview_url"] = url
				updates["preview_key"] = object
			}
		}
	}

	if err := s.videoRepo.UpdateByUploadID(data.UploadID, updates); err != nil {
		return err
	}

	if video, err := s.videoRepo.GetByUploadID(data.UploadID); err == nil {
		s.syncSearchIndex(video.ID)
	}
	return nil
}

// cleanupObjects 清理视频在对象存储里的衍生素材，失败只记日志
func (s *VideoService) cleanupObjects(video *model.Video) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if video.ThumbnailKey != nil {
		if err := s.removeImage(ctx, infraMinio.BucketThumbnails, *video.ThumbnailKey); err != nil {
			logger.Warn("Remove thumbnail object failed",
				zap.Int64("video_id", video.ID), zap.Error(err))
		}
	}
	if video.PreviewKey != nil {
		if err := s.removeImage(ctx, infraMinio.BucketPreviews, *video.PreviewKey); err != nil {
			logger.Warn("Remove preview object failed",
				zap.Int64("video_id", video.ID), zap.Error(err))
		}
	}
}

// syncSearchIndex 同步视频到搜索索引，ES 未启用时跳过，失败只记日志。
// 索引里只放公开视频，转私有等同于从索引删除
func (s *VideoService) syncSearchIndex(videoID int64) {
	if !infraES.Enabled() {
		return
	}

	row, err := s.videoRepo.GetDetail(videoID, 0)
	if err != nil {
		logger.Warn("Load video for search sync failed", zap.Int64("video_id", videoID), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if row.Visibility != model.VisibilityPublic {
		if err := infraES.DeleteVideo(ctx, videoID); err != nil {
			logger.Warn("Remove video from search index failed", zap.Int64("video_id", videoID), zap.Error(err))
		}
		return
	}

	doc := &infraES.VideoDoc{
		ID:          row.ID,
		UserID:      row.UserID,
		OwnerName:   row.OwnerName,
		CategoryID:  row.CategoryID,
		Title:       row.Title,
		Description: row.Description,
		Visibility:  row.Visibility,
		Duration:    row.Duration,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   row.UpdatedAt.Format(time.RFC3339),
	}
	if err := infraES.IndexVideo(ctx, doc); err != nil {
		logger.Warn("Sync video to search index failed", zap.Int64("video_id", videoID), zap.Error(err))
	}
}

func (s *VideoService) deleteSearchIndex(videoID int64) {
	if !infraES.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := infraES.DeleteVideo(ctx, videoID); err != nil {
		logger.Warn("Remove video from search index failed", zap.Int64("video_id", videoID), zap.Error(err))
	}
}

// toVideoInfo 将聚合行转换为 dto.VideoInfo
func toVideoInfo(row *repository.VideoRow) dto.VideoInfo {
	return dto.VideoInfo{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		CategoryID:   row.CategoryID,
		Duration:     row.Duration,
		Visibility:   row.Visibility,
		ThumbnailURL: row.ThumbnailURL,
		PreviewURL:   row.PreviewURL,
		AssetStatus:  row.AssetStatus,
		PlaybackID:   row.PlaybackID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		Owner: dto.OwnerBrief{
			ID:        row.UserID,
			Name:      row.OwnerName,
			AvatarURL: row.OwnerAvatarURL,
		},
		ViewCount:        row.ViewCount,
		LikeCount:        row.LikeCount,
		DislikeCount:     row.DislikeCount,
		SubscriberCount:  row.SubscriberCount,
		ViewerReaction:   row.ViewerReaction,
		ViewerSubscribed: row.ViewerSubscribed,
	}
}

// buildVideoListData 组装键集分页结果：多取的一条只用来探测下一页，
// 游标取最后一条保留行的 (updated_at, id)
func buildVideoListData(rows []repository.VideoRow, total int64, limit int) *dto.VideoListData {
	var nextCursor *string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		encoded := (&cursor.Cursor{UpdatedAt: last.UpdatedAt, ID: last.ID}).Encode()
		nextCursor = &encoded
	}

	items := make([]dto.VideoInfo, 0, len(rows))
	for i := range rows {
		items = append(items, toVideoInfo(&rows[i]))
	}

	return &dto.VideoListData{
		Videos:     items,
		NextCursor: nextCursor,
		TotalCount: total,
	}
}
