package model

import "time"

// Comment 评论模型
// updated_at + id 构成评论列表的键集分页排序键
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评论ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_comments_user_id;comment:评论用户ID" json:"user_id"`
	VideoID   int64     `gorm:"not null;index:idx_comments_video_id;comment:被评论视频ID" json:"video_id"`
	Value     string    `gorm:"type:text;not null;comment:评论内容" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:评论时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index:idx_comments_updated_at;comment:更新时间" json:"updated_at"`

	User      User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Video     Video             `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	Reactions []CommentReaction `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
