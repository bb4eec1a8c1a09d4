package dto

import "time"

// CategoryInfo 分类信息
type CategoryInfo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListData 分类列表数据
type CategoryListData struct {
	Categories []CategoryInfo `json:"categories"`
}
