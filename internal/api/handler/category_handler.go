package handler

import (
	"newtube-go/internal/api/response"
	"newtube-go/internal/service"
	"newtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List GET /api/v1/categories（公开）
func (h *CategoryHandler) List(c *gin.Context) {
	data, err := h.categoryService.List()
	if err != nil {
		logger.Error("List categories failed", zap.Error(err))
		response.InternalError(c, "获取分类列表失败")
		return
	}

	response.OK(c, "获取分类列表成功", data)
}
