package handler

import (
	"newtube-go/internal/api/dto"
	"newtube-go/internal/api/response"
	"newtube-go/internal/service"
	"newtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchVideos GET /api/v1/search/videos（公开）
func (h *SearchHandler) SearchVideos(c *gin.Context) {
	var req dto.SearchVideoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.searchService.SearchVideos(&req, viewerID(c))
	if err != nil {
		logger.Error("Search videos failed", zap.String("keyword", req.Keyword), zap.Error(err))
		response.InternalError(c, "搜索失败，请稍后重试")
		return
	}

	response.OK(c, "搜索成功", data)
}
