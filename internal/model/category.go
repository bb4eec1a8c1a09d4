package model

import "time"

// Category 视频分类模型（参考数据，普通用户不可修改）
type Category struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:分类标识" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex:idx_categories_name;comment:分类名称" json:"name"`
	Description *string   `gorm:"type:text;comment:分类描述" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
