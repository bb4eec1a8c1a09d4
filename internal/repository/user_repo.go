package repository

import (
	"newtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByExternalID 按外部身份服务标识查询用户（请求认证时的主路径）
func (r *UserRepository) GetByExternalID(externalID string) (*model.User, error) {
	var user model.User
	err := r.db.Where("external_id = ?", externalID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 创建用户。external_id 冲突时按新内容覆盖：
// Webhook 重放或并发投递落到同一行，不产生唯一键冲突
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "avatar_url", "updated_at"}),
	}).Create(user).Error
}

// UpdateByExternalID 按外部标识更新用户资料（身份 Webhook 回写）
func (r *UserRepository) UpdateByExternalID(externalID string, updates map[string]interface{}) error {
	result := r.db.Model(&model.User{}).Where("external_id = ?", externalID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByExternalID 按外部标识删除用户。
// 外键级联删除其全部视频/观看/反应/订阅/评论
func (r *UserRepository) DeleteByExternalID(externalID string) (bool, error) {
	result := r.db.Where("external_id = ?", externalID).Delete(&model.User{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
