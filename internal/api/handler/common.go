package handler

import (
	"strconv"

	"newtube-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径中的 :id
func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func parseQueryInt64(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}

// parseKeysetQuery 解析键集分页参数：cursor 为不透明游标，limit 为页大小
func parseKeysetQuery(c *gin.Context) (cursorStr string, limit int) {
	cursorStr = c.Query("cursor")
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	return cursorStr, limit
}

// viewerID 当前请求者的用户 ID，匿名请求返回 0。
// 0 不可能是真实用户 ID，聚合查询的视角侧查询用它兜底匹配空集
func viewerID(c *gin.Context) int64 {
	id, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return 0
	}
	return id
}
