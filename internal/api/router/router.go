package router

import (
	"newtube-go/internal/api/handler"
	"newtube-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由。
// 读接口区分"匿名可访问"（可选认证，登录后聚合结果带请求者视角字段）
// 和"必须登录"；写接口统一挂认证 + 限流
func Setup(
	r *gin.Engine,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	reactionHandler *handler.ReactionHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	categoryHandler *handler.CategoryHandler,
	searchHandler *handler.SearchHandler,
	webhookHandler *handler.WebhookHandler,
	resolve middleware.UserResolver,
	rateLimit gin.HandlerFunc,
) {
	// Webhook 不走 v1 前缀，也不走会话认证：安全性来自请求体签名
	webhooks := r.Group("/api/webhooks")
	{
		webhooks.POST("/identity", webhookHandler.Identity)
		webhooks.POST("/media", webhookHandler.Media)
	}

	v1 := r.Group("/api/v1")

	// --- 视频模块 ---
	videos := v1.Group("/videos")
	{
		optional := videos.Group("", middleware.AuthOptional(resolve))
		{
			optional.GET("/feed", videoHandler.GetFeed)
			optional.GET("/:id", videoHandler.GetDetail)
			optional.GET("/:id/comments", commentHandler.ListByVideo)
		}

		authed := videos.Group("", middleware.AuthRequired(resolve), rateLimit)
		{
			authed.POST("", videoHandler.Create)
			authed.GET("/studio", videoHandler.GetStudioList)
			authed.PUT("/:id", videoHandler.Update)
			authed.DELETE("/:id", videoHandler.Delete)
			authed.POST("/:id/thumbnail", videoHandler.UploadThumbnail)
			authed.POST("/:id/thumbnail/restore", videoHandler.RestoreThumbnail)
			authed.POST("/:id/generate/title", videoHandler.GenerateTitle)
			authed.POST("/:id/generate/description", videoHandler.GenerateDescription)
			authed.POST("/:id/generate/thumbnail", videoHandler.GenerateThumbnail)
			authed.POST("/:id/views", videoHandler.RecordView)
			authed.POST("/:id/reactions", reactionHandler.ToggleVideoReaction)
			authed.POST("/:id/comments", commentHandler.Create)
		}
	}

	// --- 评论模块 ---
	comments := v1.Group("/comments", middleware.AuthRequired(resolve), rateLimit)
	{
		comments.DELETE("/:id", commentHandler.Delete)
		comments.POST("/:id/reactions", reactionHandler.ToggleCommentReaction)
	}

	// --- 订阅模块 ---
	users := v1.Group("/users", middleware.AuthRequired(resolve), rateLimit)
	{
		users.POST("/:id/subscription", subscriptionHandler.Subscribe)
		users.DELETE("/:id/subscription", subscriptionHandler.Unsubscribe)
	}

	// --- 分类模块 ---
	v1.GET("/categories", categoryHandler.List)

	// --- 搜索模块 ---
	v1.GET("/search/videos", middleware.AuthOptional(resolve), searchHandler.SearchVideos)
}
