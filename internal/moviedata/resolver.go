package moviedata

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/user/screenbox/internal/model"
)

// FetchDetail 获取电影详情
// 永不返回错误：详情接口彻底失败时返回占位详情（带 Fallback 标记），
// 让渲染层不需要为"详情拿不到"准备判空分支。同一 id 的并发请求合并。
func (c *Client) FetchDetail(ctx context.Context, id int) *model.MovieDetail {
	val, _, _ := c.sf.Do("detail:"+strconv.Itoa(id), func() (interface{}, error) {
		return c.fetchDetail(ctx, id), nil
	})
	return val.(*model.MovieDetail)
}

func (c *Client) fetchDetail(ctx context.Context, id int) *model.MovieDetail {
	cacheKey := "movie_detail:" + strconv.Itoa(id)
	if cached, found := c.cache.Get(cacheKey); found {
		if detail, ok := cached.(*model.MovieDetail); ok {
			return detail
		}
	}

	// 1. 拉取原始详情，失败直接走占位记录（不重试）
	var resp detailResponse
	u := fmt.Sprintf("%s/movies/%d", c.baseURL, id)
	if err := c.http.GetJSON(ctx, u, &resp); err != nil {
		log.Printf("[moviedata] 获取电影详情失败 (id=%d): %v", id, err)
		return fallbackDetail(id)
	}
	if !resp.Success {
		log.Printf("[moviedata] 详情接口返回失败 (id=%d): %s", id, resp.Error)
		return fallbackDetail(id)
	}

	// 2. 规范化主记录并映射演职员
	raw := resp.Data
	m := Normalize(raw)
	m.Cast = normalizeCast(raw.Cast)
	if m.Status == "" {
		m.Status = "Released"
	}

	detail := &model.MovieDetail{
		Movie: m,
		Credits: model.Credits{
			Cast: m.Cast,
			Crew: []model.CrewMember{},
		},
		Recommendations:     []model.Movie{},
		Videos:              model.VideoList{Results: []model.Video{}},
		ProductionCompanies: []model.ProductionCompany{},
		ProductionCountries: []model.ProductionCountry{},
		SpokenLanguages:     []model.SpokenLanguage{},
	}

	// 3. 相关电影走回退链
	detail.SimilarMovies = c.resolveRelated(ctx, id, reconcileSimilar(raw.SimilarMovies))

	c.cache.Set(cacheKey, detail, detailCacheTTL)
	return detail
}

// relatedStrategy 相关电影的一级数据源，返回空切片表示本级无结果
type relatedStrategy func(ctx context.Context) []model.Movie

// resolveRelated 相关电影回退链：内嵌相似 → 推荐接口 → 热门去自身(≤10) → 空
// 按顺序求值，第一个非空结果胜出；全部落空时返回空列表，这不是错误。
func (c *Client) resolveRelated(ctx context.Context, id int, embedded []model.Movie) []model.Movie {
	strategies := []relatedStrategy{
		func(context.Context) []model.Movie { return embedded },
		func(ctx context.Context) []model.Movie { return c.fetchRecommendations(ctx, id) },
		func(ctx context.Context) []model.Movie { return c.popularExcluding(ctx, id) },
	}

	for _, next := range strategies {
		if movies := next(ctx); len(movies) > 0 {
			return movies
		}
	}
	return []model.Movie{}
}

// fallbackDetail 合成占位详情
// 只携带请求的 id 和占位标题，所有集合字段为空列表（非 nil），
// 发行日期取当前年份。这是本次调用的终态，不会重试。
func fallbackDetail(id int) *model.MovieDetail {
	year := time.Now().Year()
	zeroRuntime := 0
	title := fmt.Sprintf("Movie #%d", id)

	m := model.Movie{
		ID:               id,
		Title:            title,
		Overview:         "Movie details could not be loaded.",
		ReleaseDate:      strconv.Itoa(year),
		Genres:           []model.Genre{},
		VoteAverage:      0,
		VoteCount:        0,
		Popularity:       0,
		OriginalLanguage: "en",
		OriginalTitle:    title,
		ReleaseYear:      &year,
		Runtime:          &zeroRuntime,
		Status:           "Released",
		Cast:             []model.CastMember{},
	}

	return &model.MovieDetail{
		Movie: m,
		Credits: model.Credits{
			Cast: []model.CastMember{},
			Crew: []model.CrewMember{},
		},
		SimilarMovies:       []model.Movie{},
		Recommendations:     []model.Movie{},
		Videos:              model.VideoList{Results: []model.Video{}},
		ProductionCompanies: []model.ProductionCompany{},
		ProductionCountries: []model.ProductionCountry{},
		SpokenLanguages:     []model.SpokenLanguage{},
		Fallback:            true,
	}
}
