package repository

import (
	"errors"

	"newtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentReactionRepository struct {
	db *gorm.DB
}

func NewCommentReactionRepository(db *gorm.DB) *CommentReactionRepository {
	return &CommentReactionRepository{db: db}
}

// Get 查询用户对评论的现有反应，不存在时返回 (nil, nil)
func (r *CommentReactionRepository) Get(userID, commentID int64) (*model.CommentReaction, error) {
	var reaction model.CommentReaction
	err := r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

// Upsert 以 (user_id, comment_id) 为冲突键原子写入反应
func (r *CommentReactionRepository) Upsert(userID, commentID int64, reactionType string) (*model.CommentReaction, error) {
	reaction := &model.CommentReaction{
		UserID:    userID,
		CommentID: commentID,
		Type:      reactionType,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "comment_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"type": reactionType}),
	}).Create(reaction).Error
	if err != nil {
		return nil, err
	}
	return reaction, nil
}

// Delete 删除用户对评论的反应，返回是否真的删掉了一行
func (r *CommentReactionRepository) Delete(userID, commentID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.CommentReaction{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByType 按类型统计评论的反应数
func (r *CommentReactionRepository) CountByType(commentID int64, reactionType string) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentReaction{}).
		Where("comment_id = ? AND type = ?", commentID, reactionType).
		Count(&count).Error
	return count, err
}
