package moviedata

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/user/screenbox/internal/model"
	"github.com/user/screenbox/internal/utils"
	"golang.org/x/sync/singleflight"
)

// 热门列表缓存键与有效期
const (
	popularCacheKey = "popular_movies"
	popularCacheTTL = 5 * time.Minute
	detailCacheTTL  = 5 * time.Minute
)

// Client 电影后端访问客户端
// 对外只暴露规范化后的数据，传输失败一律吸收为确定性的兜底值，不向调用方抛错。
type Client struct {
	baseURL string
	http    *utils.HTTPClient
	cache   *cache.Cache
	search  *utils.SearchCache[[]model.Movie]
	sf      singleflight.Group
}

// NewClient 创建客户端
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    utils.NewHTTPClient(timeout),
		cache:   cache.New(popularCacheTTL, 10*time.Minute),
		search:  utils.NewSearchCache[[]model.Movie](500, 10*time.Minute),
	}
}

// listResponse 列表接口响应包装
type listResponse struct {
	Success bool             `json:"success"`
	Results []model.RawMovie `json:"results"`
	Error   string           `json:"error"`
}

// detailResponse 详情接口响应包装
type detailResponse struct {
	Success bool           `json:"success"`
	Data    model.RawMovie `json:"data"`
	Error   string         `json:"error"`
}

type recommendationsResponse struct {
	Results []model.RawMovie `json:"results"`
}

type creditsResponse struct {
	Cast []model.RawCastEntry `json:"cast"`
}

// fetchPopularRaw 获取热门电影原始数据
func (c *Client) fetchPopularRaw(ctx context.Context) ([]model.RawMovie, error) {
	var resp listResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/movies/popular", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("后端返回失败: %s", resp.Error)
	}
	return resp.Results, nil
}

// FetchPopular 获取热门电影（规范化）
// 失败时返回空列表，不返回错误。
func (c *Client) FetchPopular(ctx context.Context) []model.Movie {
	if cached, found := c.cache.Get(popularCacheKey); found {
		if movies, ok := cached.([]model.Movie); ok {
			return movies
		}
	}

	raws, err := c.fetchPopularRaw(ctx)
	if err != nil {
		log.Printf("[moviedata] 获取热门电影失败: %v", err)
		return []model.Movie{}
	}

	movies := make([]model.Movie, 0, len(raws))
	for _, raw := range raws {
		movies = append(movies, Normalize(raw))
	}
	c.cache.Set(popularCacheKey, movies, popularCacheTTL)
	return movies
}

// Search 搜索电影（规范化）
// 空白关键词直接返回空列表；失败时返回空列表。
func (c *Client) Search(ctx context.Context, term string) []model.Movie {
	term = strings.TrimSpace(term)
	if term == "" {
		return []model.Movie{}
	}

	if cached, found := c.search.Get(term); found {
		return cached
	}

	// singleflight 避免同一个词并发打后端
	val, err, _ := c.sf.Do("search:"+term, func() (interface{}, error) {
		var resp listResponse
		u := fmt.Sprintf("%s/movies/search?q=%s", c.baseURL, url.QueryEscape(term))
		if err := c.http.GetJSON(ctx, u, &resp); err != nil {
			return nil, err
		}
		if !resp.Success {
			return nil, fmt.Errorf("后端返回失败: %s", resp.Error)
		}
		movies := make([]model.Movie, 0, len(resp.Results))
		for _, raw := range resp.Results {
			movies = append(movies, Normalize(raw))
		}
		c.search.Set(term, movies)
		return movies, nil
	})
	if err != nil {
		log.Printf("[moviedata] 搜索失败 (关键词: %s): %v", term, err)
		return []model.Movie{}
	}
	return val.([]model.Movie)
}

// FetchCredits 获取演职员表
// 失败时返回空的演职员表。
func (c *Client) FetchCredits(ctx context.Context, id int) model.Credits {
	var resp creditsResponse
	u := fmt.Sprintf("%s/movies/%d/credits", c.baseURL, id)
	if err := c.http.GetJSON(ctx, u, &resp); err != nil {
		log.Printf("[moviedata] 获取演职员表失败 (id=%d): %v", id, err)
		return model.Credits{Cast: []model.CastMember{}, Crew: []model.CrewMember{}}
	}
	return model.Credits{Cast: normalizeCast(resp.Cast), Crew: []model.CrewMember{}}
}

// fetchRecommendations 获取推荐电影，结果中不包含 id 自身
// 失败时返回 nil，由回退链继续降级。
func (c *Client) fetchRecommendations(ctx context.Context, id int) []model.Movie {
	var resp recommendationsResponse
	u := fmt.Sprintf("%s/movies/%d/recommendations", c.baseURL, id)
	if err := c.http.GetJSON(ctx, u, &resp); err != nil {
		log.Printf("[moviedata] 推荐接口不可用 (id=%d)，降级到热门列表: %v", id, err)
		return nil
	}

	movies := make([]model.Movie, 0, len(resp.Results))
	for _, raw := range resp.Results {
		if raw.ID == id {
			continue
		}
		movies = append(movies, Normalize(raw))
	}
	return movies
}

// popularExcluding 热门电影去掉当前 id，最多返回 10 条
func (c *Client) popularExcluding(ctx context.Context, id int) []model.Movie {
	popular := c.FetchPopular(ctx)
	movies := make([]model.Movie, 0, len(popular))
	for _, m := range popular {
		if m.ID == id {
			continue
		}
		movies = append(movies, m)
		if len(movies) >= 10 {
			break
		}
	}
	return movies
}
