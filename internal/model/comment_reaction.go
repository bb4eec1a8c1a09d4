package model

import "time"

// CommentReaction 评论反应模型
// 约束与 VideoReaction 相同：(user, comment) 唯一，type ∈ {like, dislike}
type CommentReaction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:反应记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_comment_reaction;index:idx_comment_reactions_user_id;comment:用户ID" json:"user_id"`
	CommentID int64     `gorm:"not null;uniqueIndex:uq_user_comment_reaction;index:idx_comment_reactions_comment_id;comment:评论ID" json:"comment_id"`
	Type      string    `gorm:"size:10;not null;comment:反应类型 like/dislike" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comment Comment `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
}

func (CommentReaction) TableName() string {
	return "comment_reactions"
}
