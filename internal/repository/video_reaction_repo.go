package repository

import (
	"errors"

	"newtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoReactionRepository struct {
	db *gorm.DB
}

func NewVideoReactionRepository(db *gorm.DB) *VideoReactionRepository {
	return &VideoReactionRepository{db: db}
}

// Get 查询用户对视频的现有反应，不存在时返回 (nil, nil)
func (r *VideoReactionRepository) Get(userID, videoID int64) (*model.VideoReaction, error) {
	var reaction model.VideoReaction
	err := r.db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

// Upsert 以 (user_id, video_id) 为冲突键原子写入反应。
// 已有同键行时原地覆盖 type，单条语句在存储层原子完成
func (r *VideoReactionRepository) Upsert(userID, videoID int64, reactionType string) (*model.VideoReaction, error) {
	reaction := &model.VideoReaction{
		UserID:  userID,
		VideoID: videoID,
		Type:    reactionType,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"type": reactionType}),
	}).Create(reaction).Error
	if err != nil {
		return nil, err
	}
	return reaction, nil
}

// Delete 删除用户对视频的反应，返回是否真的删掉了一行
func (r *VideoReactionRepository) Delete(userID, videoID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.VideoReaction{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByType 按类型统计视频的反应数
func (r *VideoReactionRepository) CountByType(videoID int64, reactionType string) (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoReaction{}).
		Where("video_id = ? AND type = ?", videoID, reactionType).
		Count(&count).Error
	return count, err
}
