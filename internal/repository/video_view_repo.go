package repository

import (
	"newtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoViewRepository struct {
	db *gorm.DB
}

func NewVideoViewRepository(db *gorm.DB) *VideoViewRepository {
	return &VideoViewRepository{db: db}
}

// Record 记录观看事实。(user_id, video_id) 唯一，
// 重复观看命中冲突键直接忽略，一对至多一行
func (r *VideoViewRepository) Record(userID, videoID int64) (*model.VideoView, error) {
	view := &model.VideoView{UserID: userID, VideoID: videoID}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoNothing: true,
	}).Create(view).Error
	if err != nil {
		return nil, err
	}
	return view, nil
}

// CountByVideo 统计视频观看数（派生计数）
func (r *VideoViewRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoView{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
