package dto

import "time"

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Value string `json:"value" binding:"required,min=1,max=1000"`
}

// CommentInfo 评论聚合视图
type CommentInfo struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	VideoID   int64     `json:"video_id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User OwnerBrief `json:"user"`

	LikeCount      int64   `json:"like_count"`
	DislikeCount   int64   `json:"dislike_count"`
	ViewerReaction *string `json:"viewer_reaction"`
}

// CommentListData 评论列表数据（键集分页）
type CommentListData struct {
	Comments   []CommentInfo `json:"comments"`
	NextCursor *string       `json:"next_cursor"`
	TotalCount int64         `json:"total_count"`
}
