package model

import "time"

// 视频可见性
const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// 媒体管线资产状态（由 Webhook 回写）
const (
	AssetStatusWaiting   = "waiting"
	AssetStatusPreparing = "preparing"
	AssetStatusReady     = "ready"
	AssetStatusErrored   = "errored"
)

// Video 视频模型
// 转码状态字段是外部媒体管线的投影，随 Webhook 事件异步更新；
// 观看数/点赞数等计数不落库，查询时按事实表聚合得出
type Video struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	UserID      int64  `gorm:"not null;index:idx_videos_user_id;comment:视频作者ID" json:"user_id"`
	CategoryID  *int64 `gorm:"index:idx_videos_category_id;comment:分类ID" json:"category_id"`
	Title       string `gorm:"size:200;not null;comment:视频标题" json:"title"`
	Description string `gorm:"type:text;comment:视频描述" json:"description"`
	Duration    int    `gorm:"not null;default:0;comment:视频时长（毫秒）" json:"duration"`
	Visibility  string `gorm:"size:20;not null;default:'private';index:idx_videos_visibility;comment:可见性" json:"visibility"`

	ThumbnailURL *string `gorm:"size:500;comment:封面地址" json:"thumbnail_url"`
	ThumbnailKey *string `gorm:"size:255;comment:封面对象存储Key" json:"thumbnail_key"`
	PreviewURL   *string `gorm:"size:500;comment:动态预览地址" json:"preview_url"`
	PreviewKey   *string `gorm:"size:255;comment:动态预览对象存储Key" json:"preview_key"`

	AssetStatus string  `gorm:"size:20;not null;default:'waiting';comment:媒体管线资产状态" json:"asset_status"`
	AssetID     *string `gorm:"size:255;index:idx_videos_asset_id;comment:媒体管线资产ID" json:"asset_id"`
	UploadID    *string `gorm:"size:255;index:idx_videos_upload_id;comment:媒体管线上传ID" json:"upload_id"`
	PlaybackID  *string `gorm:"size:255;comment:播放ID" json:"playback_id"`
	TrackID     *string `gorm:"size:255;comment:字幕轨道ID" json:"track_id"`
	TrackStatus *string `gorm:"size:20;comment:字幕轨道状态" json:"track_status"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_videos_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index:idx_videos_updated_at;comment:更新时间" json:"updated_at"`

	// 关联关系：删除视频时级联删除观看/反应/评论；分类删除时置空
	Owner     User            `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Category  *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Views     []VideoView     `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
	Reactions []VideoReaction `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
	Comments  []Comment       `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Video) TableName() string {
	return "videos"
}
