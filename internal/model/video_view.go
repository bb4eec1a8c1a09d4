package model

import "time"

// VideoView 观看记录模型
// (user, video) 唯一，一条记录表示"看过"这一事实而非计数器，
// 观看数由 COUNT 聚合得出
type VideoView struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:观看记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_video_view;index:idx_video_views_user_id;comment:观看用户ID" json:"user_id"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_user_video_view;index:idx_video_views_video_id;comment:被观看视频ID" json:"video_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:首次观看时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (VideoView) TableName() string {
	return "video_views"
}
