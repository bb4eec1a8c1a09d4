package handler

import (
	"errors"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/api/middleware"
	"newtube-go/internal/api/response"
	"newtube-go/internal/service"
	"newtube-go/pkg/cursor"
	"newtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create 发表评论
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param request body dto.CommentCreateRequest true "评论内容"
// @Success 201 {object} response.Response{data=dto.CommentInfo} "发表成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.commentService.Create(currentUserID, videoID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.Created(c, "发表评论成功", info)
}

// Delete 删除评论
// @Summary 删除评论
// @Description 仅评论作者本人可删除
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "评论不存在"
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.commentService.Delete(commentID, currentUserID); err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "删除评论成功", nil)
}

// ListByVideo 视频评论列表（匿名可访问）
// @Summary 视频评论列表
// @Description 按 (updated_at, id) 键集分页，登录后附带请求者对每条评论的反应
// @Tags 评论
// @Produce json
// @Param id path int true "视频ID"
// @Param cursor query string false "分页游标"
// @Param limit query int false "页大小"
// @Success 200 {object} response.Response{data=dto.CommentListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/comments [get]
func (h *CommentHandler) ListByVideo(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	cursorStr, limit := parseKeysetQuery(c)

	data, err := h.commentService.ListByVideo(videoID, cursorStr, limit, viewerID(c))
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "获取评论列表成功", data)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNoPermission):
		// 无权限与不存在同样返回 404，不泄露他人评论的存在性
		response.NotFound(c, err.Error())
	case errors.Is(err, cursor.ErrInvalidCursor):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
