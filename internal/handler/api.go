package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/screenbox/internal/history"
	"github.com/user/screenbox/internal/utils"
)

// logSearch 异步记录站点搜索日志（仅在配置了数据库且有结果时）
func (h *Handler) logSearch(c *gin.Context, keyword string, resultCount int) {
	if h.Repos == nil || resultCount == 0 {
		return
	}
	ipHash := utils.HashIP(c.ClientIP())
	go func(kw, ip string) {
		if err := h.Repos.SearchLog.Log(kw, ip); err != nil {
			log.Printf("[logSearch] 记录搜索日志失败: %v", err)
		}
	}(keyword, ipHash)
}

// ==================== htmx 片段 ====================

// SearchHTMX 搜索浮层结果片段
// 回显 seq 序号，前端用它丢弃乱序到达的旧响应（最新请求胜出）。
func (h *Handler) SearchHTMX(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("kw"))
	if keyword == "" {
		c.String(http.StatusOK, "")
		return
	}

	results := h.movies.Search(c.Request.Context(), keyword)

	history.Record(history.NewSessionStore(c), keyword)
	h.logSearch(c, keyword, len(results))

	c.HTML(http.StatusOK, "partials/search_results.html", gin.H{
		"Results": results,
		"Keyword": keyword,
		"Seq":     c.Query("seq"),
	})
}

// RelatedHTMX 相关电影片段（详情页懒加载）
func (h *Handler) RelatedHTMX(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusOK, "")
		return
	}

	detail := h.movies.FetchDetail(c.Request.Context(), id)
	c.HTML(http.StatusOK, "partials/related_movies.html", gin.H{
		"Movies": detail.SimilarMovies,
	})
}

// TrendingHTMX 热门摘要片段
func (h *Handler) TrendingHTMX(c *gin.Context) {
	summary := h.movies.FetchTrendingSummary(c.Request.Context())
	c.HTML(http.StatusOK, "partials/trending.html", gin.H{
		"Trending": summary,
	})
}

// ==================== JSON API（移动端） ====================

// APIPopular 热门电影
// GET /api/movies/popular
func (h *Handler) APIPopular(c *gin.Context) {
	movies := h.movies.FetchPopular(c.Request.Context())
	utils.Success(c, gin.H{"results": movies})
}

// APISearch 搜索电影
// GET /api/movies/search?q=xxx
// 响应回显 query，客户端据此丢弃过期响应。
func (h *Handler) APISearch(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BadRequest(c, "搜索关键词不能为空")
		return
	}

	keyword := strings.TrimSpace(q.Keyword)
	results := h.movies.Search(c.Request.Context(), keyword)
	h.logSearch(c, keyword, len(results))

	utils.Success(c, gin.H{
		"query":   keyword,
		"results": results,
	})
}

// APIMovie 电影详情
// GET /api/movies/:id
func (h *Handler) APIMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "无效的电影 ID")
		return
	}

	detail := h.movies.FetchDetail(c.Request.Context(), id)
	utils.Success(c, detail)
}

// APICredits 演职员表
// GET /api/movies/:id/credits
func (h *Handler) APICredits(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "无效的电影 ID")
		return
	}

	credits := h.movies.FetchCredits(c.Request.Context(), id)
	utils.Success(c, credits)
}

// APITrending 热门摘要
// GET /api/movies/trending
func (h *Handler) APITrending(c *gin.Context) {
	summary := h.movies.FetchTrendingSummary(c.Request.Context())
	utils.Success(c, summary)
}

// APIHistory 搜索历史
// GET /api/history
func (h *Handler) APIHistory(c *gin.Context) {
	utils.Success(c, gin.H{
		"terms": history.Terms(history.NewSessionStore(c)),
	})
}

// RecordHistoryReq 记录搜索历史请求
type RecordHistoryReq struct {
	Term string `json:"term" binding:"required,searchterm"`
}

// APIRecordHistory 记录一条搜索历史
// POST /api/history
func (h *Handler) APIRecordHistory(c *gin.Context) {
	var req RecordHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "无效的请求数据")
		return
	}

	terms := history.Record(history.NewSessionStore(c), req.Term)
	utils.Success(c, gin.H{"terms": terms})
}
