package handler

import (
	"errors"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/api/middleware"
	"newtube-go/internal/api/response"
	"newtube-go/internal/service"
	"newtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReactionHandler struct {
	reactionService *service.ReactionService
}

func NewReactionHandler(reactionService *service.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionService: reactionService}
}

// ToggleVideoReaction 切换对视频的反应
// @Summary 切换视频反应
// @Description 重复提交同类型反应视为取消；提交另一类型则原地覆盖
// @Tags 反应
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param request body dto.ReactionRequest true "反应类型"
// @Success 200 {object} response.Response{data=dto.ReactionData} "切换成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/reactions [post]
func (h *ReactionHandler) ToggleVideoReaction(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.reactionService.ToggleVideoReaction(currentUserID, videoID, req.Type)
	if err != nil {
		handleReactionError(c, err)
		return
	}

	response.OK(c, "切换反应成功", data)
}

// ToggleCommentReaction 切换对评论的反应
// @Summary 切换评论反应
// @Tags 反应
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Param request body dto.ReactionRequest true "反应类型"
// @Success 200 {object} response.Response{data=dto.ReactionData} "切换成功"
// @Failure 404 {object} response.ErrorResponse "评论不存在"
// @Router /comments/{id}/reactions [post]
func (h *ReactionHandler) ToggleCommentReaction(c *gin.Context) {
	commentID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	var req dto.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.reactionService.ToggleCommentReaction(currentUserID, commentID, req.Type)
	if err != nil {
		handleReactionError(c, err)
		return
	}

	response.OK(c, "切换反应成功", data)
}

func handleReactionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidReactionType):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Reaction operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
