package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoggerSkipsStaticAssets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	r := gin.New()
	r.Use(Logger())
	r.GET("/movies", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/static/css/style.css", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/movies?page=2", nil))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/static/css/style.css", nil))

	out := buf.String()
	if !strings.Contains(out, "[HTTP] GET /movies?page=2") {
		t.Fatalf("页面请求应记日志, 实际输出: %q", out)
	}
	if strings.Contains(out, "/static/") {
		t.Fatalf("静态资源请求不应记日志, 实际输出: %q", out)
	}
}
