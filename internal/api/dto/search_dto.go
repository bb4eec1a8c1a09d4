package dto

// SearchVideoRequest 视频搜索请求
type SearchVideoRequest struct {
	Keyword  string `form:"q" binding:"required,min=1,max=100"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// SearchVideoData 搜索结果数据
type SearchVideoData struct {
	Videos     []VideoInfo `json:"videos"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int64       `json:"total_pages"`
}
