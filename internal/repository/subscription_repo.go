package repository

import (
	"newtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create 创建订阅关系，重复订阅命中唯一键直接忽略
func (r *SubscriptionRepository) Create(viewerID, creatorID int64) (*model.Subscription, error) {
	sub := &model.Subscription{ViewerID: viewerID, CreatorID: creatorID}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "viewer_id"}, {Name: "creator_id"}},
		DoNothing: true,
	}).Create(sub).Error
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Delete 删除订阅关系，返回是否真的删掉了一行
func (r *SubscriptionRepository) Delete(viewerID, creatorID int64) (bool, error) {
	result := r.db.Where("viewer_id = ? AND creator_id = ?", viewerID, creatorID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByCreator 统计创作者的订阅者数（派生计数）
func (r *SubscriptionRepository) CountByCreator(creatorID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("creator_id = ?", creatorID).
		Count(&count).Error
	return count, err
}
