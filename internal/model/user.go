package model

import "time"

// User 用户模型
// 用户由外部身份服务通过 Webhook 同步创建/更新/删除，不存储本地凭证
type User struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	ExternalID string    `gorm:"size:255;not null;uniqueIndex:idx_users_external_id;comment:外部身份服务用户标识" json:"external_id"`
	Name       string    `gorm:"size:255;not null;comment:展示名称" json:"name"`
	AvatarURL  string    `gorm:"size:500;not null;comment:头像地址" json:"avatar_url"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系：删除用户时级联删除其全部视频/观看/反应/订阅/评论
	Videos        []Video         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"videos,omitempty"`
	Views         []VideoView     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reactions     []VideoReaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comments      []Comment       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Subscriptions []Subscription  `gorm:"foreignKey:ViewerID;constraint:OnDelete:CASCADE" json:"-"`
	Subscribers   []Subscription  `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
