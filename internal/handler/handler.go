package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/screenbox/internal/config"
	"github.com/user/screenbox/internal/history"
	"github.com/user/screenbox/internal/model"
	"github.com/user/screenbox/internal/moviedata"
	"github.com/user/screenbox/internal/repository"
)

// Handler HTTP 处理器
type Handler struct {
	Repos  *repository.Repositories // 未配置数据库时为 nil，搜索日志功能静默关闭
	Config *config.Config
	movies *moviedata.Client
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	// 创建电影后端客户端
	movies := moviedata.NewClient(cfg.MovieAPIURL, cfg.MovieAPITimeout)

	// 注册搜索关键词校验规则
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("searchterm", func(fl validator.FieldLevel) bool {
			term := strings.TrimSpace(fl.Field().String())
			return term != "" && len(term) <= 100
		})
	}

	return &Handler{
		Repos:  repos,
		Config: cfg,
		movies: movies,
	}
}

// SearchQuery 搜索参数
type SearchQuery struct {
	Keyword string `form:"q" binding:"required,searchterm"`
}

// RenderData 统一封装公共渲染数据
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	// 基础数据
	res := gin.H{
		"SiteName": h.Config.SiteName,
		"SiteUrl":  h.Config.SiteUrl,
		"Path":     c.Request.URL.Path,
	}

	// 菜单高亮逻辑
	res["ActiveMenu"] = h.getActiveMenu(c.Request.URL.Path)

	// 合并传入的数据
	for k, v := range data {
		res[k] = v
	}

	return res
}

// getActiveMenu 根据路径判断当前高亮菜单
func (h *Handler) getActiveMenu(path string) string {
	switch path {
	case "/":
		return "home"
	case "/movies":
		return "movies"
	case "/trends":
		return "trends"
	case "/about":
		return "about"
	default:
		return ""
	}
}

// ==================== 公开页面 ====================

// Home 首页（热门轮播 + 热门摘要 + 最近搜索）
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	summary := h.movies.FetchTrendingSummary(ctx)
	popular := h.movies.FetchPopular(ctx)

	// 轮播取前 8 部有横幅图的热门电影
	hero := make([]model.Movie, 0, 8)
	for _, m := range popular {
		if m.BackdropPath == nil {
			continue
		}
		hero = append(hero, m)
		if len(hero) >= 8 {
			break
		}
	}

	c.HTML(http.StatusOK, "home.html", h.RenderData(c, gin.H{
		"Title":      h.Config.SiteName + " - 电影发现",
		"HeroMovies": hero,
		"Popular":    popular,
		"Trending":   summary,
		"History":    history.Terms(history.NewSessionStore(c)),
	}))
}

// Movies 电影列表页（热门网格）
func (h *Handler) Movies(c *gin.Context) {
	popular := h.movies.FetchPopular(c.Request.Context())

	c.HTML(http.StatusOK, "movies.html", h.RenderData(c, gin.H{
		"Title":  "热门电影 - " + h.Config.SiteName,
		"Movies": popular,
	}))
}

// Search 搜索结果页
func (h *Handler) Search(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))
	if keyword == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	results := h.movies.Search(c.Request.Context(), keyword)

	// 记录搜索历史（Session），空结果也记录，和移动端行为一致
	terms := history.Record(history.NewSessionStore(c), keyword)

	// 有结果时异步记录站点搜索日志
	h.logSearch(c, keyword, len(results))

	c.HTML(http.StatusOK, "search.html", h.RenderData(c, gin.H{
		"Title":   keyword + " - 搜索结果 - " + h.Config.SiteName,
		"Keyword": keyword,
		"Results": results,
		"History": terms,
	}))
}

// Movie 电影详情页
func (h *Handler) Movie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.HTML(http.StatusNotFound, "404.html", h.RenderData(c, gin.H{
			"Title": "电影未找到 - " + h.Config.SiteName,
		}))
		return
	}

	ctx := c.Request.Context()
	detail := h.movies.FetchDetail(ctx, id)

	// 详情里没带演员且不是占位记录时，补拉一次演职员表
	// 注意不要改写 detail（指针可能被缓存共享）
	credits := detail.Credits
	if len(credits.Cast) == 0 && !detail.Fallback {
		credits = h.movies.FetchCredits(ctx, id)
	}

	c.HTML(http.StatusOK, "movie.html", h.RenderData(c, gin.H{
		"Title":    detail.Title + " (" + detail.ReleaseDate + ") - " + h.Config.SiteName,
		"Movie":    detail,
		"Credits":  credits,
		"Related":  detail.SimilarMovies,
		"Fallback": detail.Fallback,
	}))
}

// Trends 热搜趋势页
func (h *Handler) Trends(c *gin.Context) {
	summary := h.movies.FetchTrendingSummary(c.Request.Context())

	// 配置了数据库时叠加站点真实热搜词
	var keywords []*model.TrendingKeyword
	if h.Repos != nil {
		keywords, _ = h.Repos.SearchLog.GetTrending(24, 20)
	}

	c.HTML(http.StatusOK, "trends.html", h.RenderData(c, gin.H{
		"Title":    "热门趋势 - " + h.Config.SiteName,
		"Trending": summary,
		"Keywords": keywords,
	}))
}

// About 关于页面
func (h *Handler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.RenderData(c, gin.H{
		"Title": "关于 - " + h.Config.SiteName,
	}))
}

// NotFound 404 页面
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.RenderData(c, gin.H{
		"Title": "页面未找到 - " + h.Config.SiteName,
	}))
}
