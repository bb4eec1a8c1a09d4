package repository

import (
	"time"

	"newtube-go/internal/model"
	"newtube-go/pkg/cursor"

	"gorm.io/gorm"
)

// CommentRow 聚合查询返回的评论行
type CommentRow struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	VideoID   int64     `json:"video_id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserName      string `json:"user_name"`
	UserAvatarURL string `json:"user_avatar_url"`

	LikeCount      int64   `json:"like_count"`
	DislikeCount   int64   `json:"dislike_count"`
	ViewerReaction *string `json:"viewer_reaction"`
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteOwned 删除评论（仅作者本人），影响 0 行等同于不存在
func (r *CommentRepository) DeleteOwned(commentID, userID int64) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", commentID, userID).Delete(&model.Comment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByVideo 视频评论列表（键集分页 + 聚合）。
// 游标谓词 updated_at < c OR (updated_at = c AND id < c.id) 处理同刻更新的并列行，
// 翻页不丢行不重行；viewerID 为 0 时视角字段按构造为 NULL
func (r *CommentRepository) ListByVideo(videoID int64, cur *cursor.Cursor, limit int, viewerID int64) ([]CommentRow, error) {
	sql := `SELECT
		c.id, c.user_id, c.video_id, c.value, c.created_at, c.updated_at,
		u.name AS user_name, u.avatar_url AS user_avatar_url,
		(SELECT COUNT(*) FROM comment_reactions cr WHERE cr.comment_id = c.id AND cr.type = 'like') AS like_count,
		(SELECT COUNT(*) FROM comment_reactions cr WHERE cr.comment_id = c.id AND cr.type = 'dislike') AS dislike_count,
		viewer_reaction.type AS viewer_reaction
	FROM comments c
	INNER JOIN users u ON u.id = c.user_id
	LEFT JOIN (
		SELECT comment_id, type FROM comment_reactions WHERE user_id = ?
	) viewer_reaction ON viewer_reaction.comment_id = c.id
	WHERE c.video_id = ?`
	args := []interface{}{viewerID, videoID}

	if cur != nil {
		sql += " AND (c.updated_at < ? OR (c.updated_at = ? AND c.id < ?))"
		args = append(args, cur.UpdatedAt, cur.UpdatedAt, cur.ID)
	}

	sql += " ORDER BY c.updated_at DESC, c.id DESC LIMIT ?"
	args = append(args, limit)

	var rows []CommentRow
	err := r.db.Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

// CountByVideo 视频评论总数（不受游标过滤）
func (r *CommentRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
