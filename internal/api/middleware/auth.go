package middleware

import (
	"strings"

	"newtube-go/internal/api/response"
	"newtube-go/pkg/utils"

	"github.com/gin-gonic/gin"
)

const ContextKeyUserID = "currentUserID"

// UserResolver 将外部身份标识解析为本地用户 ID 的函数类型
type UserResolver func(externalID string) (int64, error)

// AuthRequired 认证中间件：请求必须携带身份服务签发的有效令牌，
// 且对应用户已通过 Webhook 同步到本地
func AuthRequired(resolve UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证令牌")
			c.Abort()
			return
		}

		externalID, err := utils.ParseSessionToken(token)
		if err != nil {
			response.Unauthorized(c, "无效或过期的认证令牌")
			c.Abort()
			return
		}

		userID, err := resolve(externalID)
		if err != nil {
			response.Unauthorized(c, "用户不存在")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// AuthOptional 可选认证中间件：匿名放行，携带有效令牌则解析出用户 ID。
// 供聚合查询的"请求者视角"字段使用
func AuthOptional(resolve UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		externalID, err := utils.ParseSessionToken(token)
		if err != nil {
			c.Next()
			return
		}

		if userID, err := resolve(externalID); err == nil {
			c.Set(ContextKeyUserID, userID)
		}
		c.Next()
	}
}

// GetCurrentUserID 从 Gin Context 中获取当前登录用户 ID
func GetCurrentUserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := val.(int64)
	return userID, ok
}

// extractToken 从 Authorization 头中提取 Bearer Token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
