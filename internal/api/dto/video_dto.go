package dto

import "time"

// VideoUpdateRequest 视频更新请求
type VideoUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"category_id"`
	Visibility  *string `json:"visibility" binding:"omitempty,oneof=private public"`
}

// GenerateThumbnailRequest AI 封面生成请求
type GenerateThumbnailRequest struct {
	Prompt string `json:"prompt" binding:"required,min=10"`
}

// OwnerBrief 视频中嵌套的作者简要信息
type OwnerBrief struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// VideoInfo 视频聚合视图：基础字段 + 作者 + 派生计数 + 请求者视角字段
type VideoInfo struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CategoryID   *int64     `json:"category_id"`
	Duration     int        `json:"duration"`
	Visibility   string     `json:"visibility"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	PreviewURL   *string    `json:"preview_url"`
	AssetStatus  string     `json:"asset_status"`
	PlaybackID   *string    `json:"playback_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Owner OwnerBrief `json:"owner"`

	ViewCount    int64 `json:"view_count"`
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`

	SubscriberCount  int64   `json:"subscriber_count"`
	ViewerReaction   *string `json:"viewer_reaction"`
	ViewerSubscribed bool    `json:"viewer_subscribed"`
}

// VideoCreateData 创建视频响应：本地记录 + 媒体管线直传地址
type VideoCreateData struct {
	VideoID   int64  `json:"video_id"`
	UploadID  string `json:"upload_id"`
	UploadURL string `json:"upload_url"`
}

// VideoListData 视频列表数据（键集分页）
type VideoListData struct {
	Videos     []VideoInfo `json:"videos"`
	NextCursor *string     `json:"next_cursor"`
	TotalCount int64       `json:"total_count"`
}
