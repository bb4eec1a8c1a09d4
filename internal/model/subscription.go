package model

import "time"

// Subscription 订阅关系模型
// viewer 订阅 creator 的有向边，viewer ≠ creator（服务层校验）
type Subscription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:订阅关系ID" json:"id"`
	ViewerID  int64     `gorm:"not null;uniqueIndex:uq_viewer_creator;index:idx_subscriptions_viewer_id;comment:订阅者用户ID" json:"viewer_id"`
	CreatorID int64     `gorm:"not null;uniqueIndex:uq_viewer_creator;index:idx_subscriptions_creator_id;comment:创作者用户ID" json:"creator_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:订阅时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
