package handler

import (
	"errors"

	"newtube-go/internal/api/middleware"
	"newtube-go/internal/api/response"
	"newtube-go/internal/service"
	"newtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Subscribe 订阅创作者
// @Summary 订阅创作者
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param id path int true "创作者用户ID"
// @Success 200 {object} response.Response{data=dto.SubscriptionData} "订阅成功"
// @Failure 400 {object} response.ErrorResponse "不能订阅自己"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/subscription [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	creatorID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.subscriptionService.Subscribe(currentUserID, creatorID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "订阅成功", data)
}

// Unsubscribe 取消订阅
// @Summary 取消订阅
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param id path int true "创作者用户ID"
// @Success 200 {object} response.Response{data=dto.SubscriptionData} "取消成功"
// @Failure 400 {object} response.ErrorResponse "不能订阅自己"
// @Router /users/{id}/subscription [delete]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	creatorID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.subscriptionService.Unsubscribe(currentUserID, creatorID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "取消订阅成功", data)
}

func handleSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCannotSubscribeSelf):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Subscription operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
