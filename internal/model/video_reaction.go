package model

import "time"

// 反应类型
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// VideoReaction 视频反应模型
// (user, video) 唯一，type 为 like 或 dislike；
// 同类型重复提交删除记录（toggle-off），异类型提交原地覆盖 type
type VideoReaction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:反应记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_video_reaction;index:idx_video_reactions_user_id;comment:用户ID" json:"user_id"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_user_video_reaction;index:idx_video_reactions_video_id;comment:视频ID" json:"video_id"`
	Type      string    `gorm:"size:10;not null;comment:反应类型 like/dislike" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (VideoReaction) TableName() string {
	return "video_reactions"
}
