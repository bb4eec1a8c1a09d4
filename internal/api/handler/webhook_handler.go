package handler

import (
	"encoding/json"
	"errors"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/api/response"
	"newtube-go/internal/config"
	"newtube-go/internal/service"
	"newtube-go/pkg/logger"
	"newtube-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler 外部服务回调入口。
// 签名校验失败必须在任何状态变更之前拒绝
type WebhookHandler struct {
	userService  *service.UserService
	videoService *service.VideoService
}

func NewWebhookHandler(userService *service.UserService, videoService *service.VideoService) *WebhookHandler {
	return &WebhookHandler{userService: userService, videoService: videoService}
}

// Identity POST /api/webhooks/identity 身份服务用户同步
func (h *WebhookHandler) Identity(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "读取请求体失败")
		return
	}

	cfg := config.GetWebhook()
	if err := utils.VerifyIdentitySignature(
		cfg.IdentitySecret,
		c.GetHeader("svix-id"),
		c.GetHeader("svix-timestamp"),
		c.GetHeader("svix-signature"),
		body,
		cfg.ToleranceDuration(),
	); err != nil {
		logger.Warn("Identity webhook signature rejected", zap.Error(err))
		response.Unauthorized(c, "签名校验失败")
		return
	}

	var event dto.IdentityEvent
	if err := json.Unmarshal(body, &event); err != nil {
		response.BadRequest(c, "事件负载无效")
		return
	}

	if err := h.userService.HandleIdentityEvent(&event); err != nil {
		logger.Error("Handle identity event failed",
			zap.String("type", event.Type),
			zap.String("external_id", event.Data.ID),
			zap.Error(err))
		response.InternalError(c, "处理事件失败")
		return
	}

	response.OK(c, "事件已处理", nil)
}

// Media POST /api/webhooks/media 媒体管线转码状态同步
func (h *WebhookHandler) Media(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "读取请求体失败")
		return
	}

	cfg := config.GetWebhook()
	if err := utils.VerifyMediaSignature(
		cfg.MediaSecret,
		c.GetHeader("mux-signature"),
		body,
		cfg.ToleranceDuration(),
	); err != nil {
		logger.Warn("Media webhook signature rejected", zap.Error(err))
		response.Unauthorized(c, "签名校验失败")
		return
	}

	var event dto.MediaEvent
	if err := json.Unmarshal(body, &event); err != nil {
		response.BadRequest(c, "事件负载无效")
		return
	}

	if err := h.videoService.HandleMediaEvent(&event); err != nil {
		if errors.Is(err, service.ErrMissingUploadID) || errors.Is(err, service.ErrMissingAssetID) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Handle media event failed",
			zap.String("type", event.Type),
			zap.Error(err))
		response.InternalError(c, "处理事件失败")
		return
	}

	response.OK(c, "事件已处理", nil)
}
