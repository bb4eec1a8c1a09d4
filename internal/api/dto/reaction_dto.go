package dto

// ReactionRequest 反应切换请求
type ReactionRequest struct {
	Type string `json:"type" binding:"required,oneof=like dislike"`
}

// ReactionData 反应切换结果：调用后该用户对目标的当前反应与派生计数
type ReactionData struct {
	TargetID       int64   `json:"target_id"`
	ViewerReaction *string `json:"viewer_reaction"`
	LikeCount      int64   `json:"like_count"`
	DislikeCount   int64   `json:"dislike_count"`
}
