package handler

import (
	"errors"
	"io"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/api/middleware"
	"newtube-go/internal/api/response"
	"newtube-go/internal/service"
	"newtube-go/pkg/cursor"
	"newtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// 封面文件大小上限
const maxThumbnailBytes = 4 << 20

// Create 创建视频
// @Summary 创建视频
// @Description 在媒体管线注册直传会话，返回上传地址和待转码的视频记录
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.VideoCreateData} "创建成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.videoService.Create(currentUserID)
	if err != nil {
		logger.Error("Create video failed", zap.Int64("user_id", currentUserID), zap.Error(err))
		response.InternalError(c, "创建视频失败")
		return
	}

	response.Created(c, "创建视频成功", data)
}

// Update 更新视频信息
// @Summary 更新视频信息
// @Description 更新标题/描述/分类/可见性，仅作者本人
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param request body dto.VideoUpdateRequest true "更新信息"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "更新成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [put]
func (h *VideoHandler) Update(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.VideoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.Update(videoID, currentUserID, &req)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "更新视频成功", info)
}

// Delete 删除视频
// @Summary 删除视频
// @Description 删除视频及其观看/反应/评论，仅作者本人
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.Remove(videoID, currentUserID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "删除视频成功", nil)
}

// GetDetail 获取视频详情（匿名可访问，登录后附带请求者视角字段）
// @Summary 获取视频详情
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) GetDetail(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	info, err := h.videoService.GetDetail(videoID, viewerID(c))
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "获取视频详情成功", info)
}

// GetFeed 公开视频流
// @Summary 公开视频流
// @Description 公开视频按 (updated_at, id) 键集分页，支持按分类过滤
// @Tags 视频
// @Produce json
// @Param cursor query string false "分页游标"
// @Param limit query int false "页大小"
// @Param category_id query int false "分类ID"
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /videos/feed [get]
func (h *VideoHandler) GetFeed(c *gin.Context) {
	cursorStr, limit := parseKeysetQuery(c)

	var categoryID *int64
	if v := c.Query("category_id"); v != "" {
		id, err := parseQueryInt64(v)
		if err != nil {
			response.BadRequest(c, "无效的分类ID")
			return
		}
		categoryID = &id
	}

	data, err := h.videoService.GetFeed(categoryID, cursorStr, limit, viewerID(c))
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "获取视频流成功", data)
}

// GetStudioList 创作后台的视频列表（含未公开视频）
// @Summary 我的视频列表
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "分页游标"
// @Param limit query int false "页大小"
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /videos/studio [get]
func (h *VideoHandler) GetStudioList(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)
	cursorStr, limit := parseKeysetQuery(c)

	data, err := h.videoService.GetStudioList(currentUserID, cursorStr, limit)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "获取我的视频列表成功", data)
}

// RestoreThumbnail 恢复默认封面
// @Summary 恢复默认封面
// @Description 丢弃自定义封面，重新抓取媒体管线的默认封面帧
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "恢复成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/thumbnail/restore [post]
func (h *VideoHandler) RestoreThumbnail(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.RestoreThumbnail(videoID, currentUserID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "恢复默认封面成功", info)
}

// UploadThumbnail 上传自定义封面
// @Summary 上传自定义封面
// @Description 上传图片作为视频封面，替换并清理原有封面对象
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param thumbnail formData file true "封面图片（jpeg/png/webp/gif，最大 4MB）"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "上传成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/thumbnail [post]
func (h *VideoHandler) UploadThumbnail(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		response.BadRequest(c, "缺少封面文件")
		return
	}
	if file.Size > maxThumbnailBytes {
		response.BadRequest(c, "封面文件过大")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "封面文件无法读取")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxThumbnailBytes+1))
	if err != nil {
		response.BadRequest(c, "封面文件无法读取")
		return
	}
	if int64(len(data)) > maxThumbnailBytes {
		response.BadRequest(c, "封面文件过大")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.UploadThumbnail(videoID, currentUserID, data, file.Header.Get("Content-Type"))
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "上传封面成功", info)
}

// GenerateTitle 提交 AI 标题生成任务
func (h *VideoHandler) GenerateTitle(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.GenerateTitle(videoID, currentUserID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "标题生成任务已提交", nil)
}

// GenerateDescription 提交 AI 描述生成任务
func (h *VideoHandler) GenerateDescription(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.GenerateDescription(videoID, currentUserID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "描述生成任务已提交", nil)
}

// GenerateThumbnail 提交 AI 封面生成任务
func (h *VideoHandler) GenerateThumbnail(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.GenerateThumbnailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.GenerateThumbnail(videoID, currentUserID, &req); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "封面生成任务已提交", nil)
}

// RecordView 记录观看
// @Summary 记录观看
// @Description 同一用户对同一视频至多记一次观看，重复调用幂等
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "记录成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/views [post]
func (h *VideoHandler) RecordView(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	viewCount, err := h.videoService.RecordView(currentUserID, videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "记录观看成功", gin.H{
		"video_id":   videoID,
		"view_count": viewCount,
	})
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrNoFieldsToUpdate),
		errors.Is(err, service.ErrAssetNotReady),
		errors.Is(err, service.ErrTranscriptNotReady),
		errors.Is(err, service.ErrInvalidImageType),
		errors.Is(err, cursor.ErrInvalidCursor):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Video operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
