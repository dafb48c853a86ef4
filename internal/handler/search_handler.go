package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Search 处理 GET /api/search?q=。
// 搜索结果跟随输入实时变化，必须禁止任何缓存；空查询返回空数组而不是 null。
func (a *API) Search(c *gin.Context) {
	c.Header("Cache-Control", "no-store, max-age=0")

	results := a.queries.Search(c.Query("q"))
	c.JSON(http.StatusOK, results)
}
