package router

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/user/screenbox/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 公开页面 ====================
	r.GET("/", h.Home)
	r.GET("/movies", h.Movies)
	r.GET("/movie/:id", h.Movie)
	r.GET("/search", h.Search)
	r.GET("/trends", h.Trends)
	r.GET("/about", h.About)

	// ==================== htmx 片段 ====================
	htmx := r.Group("/api/htmx")
	{
		htmx.GET("/search", h.SearchHTMX)
		htmx.GET("/related", h.RelatedHTMX)
		htmx.GET("/trending", h.TrendingHTMX)
	}

	// ==================== JSON API（移动端） ====================
	api := r.Group("/api")
	{
		api.GET("/movies/popular", h.APIPopular)
		api.GET("/movies/search", h.APISearch)
		api.GET("/movies/trending", h.APITrending)
		api.GET("/movies/:id", h.APIMovie)
		api.GET("/movies/:id/credits", h.APICredits)
		api.GET("/history", h.APIHistory)
		api.POST("/history", h.APIRecordHistory)
	}

	r.NoRoute(h.NotFound)
}

// LoadTemplates 使用 multitemplate 加载模板，解决模板继承问题
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	// 获取布局和局部模板
	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	partials, err := filepath.Glob(templatesDir + "/partials/*.html")
	if err != nil {
		panic(err)
	}

	// 组装模板文件列表
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, partials...)
		files = append(files, view)
		return files
	}

	// 模板函数
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"deref": func(v *int) int {
			if v == nil {
				return 0
			}
			return *v
		},
		"default": func(defaultValue, value interface{}) interface{} {
			switch v := value.(type) {
			case string:
				if v == "" {
					return defaultValue
				}
			case nil:
				return defaultValue
			case *string:
				if v == nil || *v == "" {
					return defaultValue
				}
				return *v
			}
			return value
		},
	}

	// 注册所有页面模板
	pages := []string{
		"home", "movies", "movie", "search", "trends",
		"about", "404",
	}

	for _, page := range pages {
		viewPath := templatesDir + "/pages/" + page + ".html"
		r.AddFromFilesFuncs(page+".html", funcMap, assemble(viewPath)...)
	}

	// 局部模板单独注册，供 htmx 片段直接渲染
	fragments := []string{
		"search_results", "related_movies", "trending",
	}
	for _, name := range fragments {
		// 片段文件必须放在第一位，multitemplate 按首个文件名执行
		files := []string{
			templatesDir + "/partials/" + name + ".html",
			templatesDir + "/partials/movie_card.html",
		}
		r.AddFromFilesFuncs("partials/"+name+".html", funcMap, files...)
	}

	return r
}
