package moviedata

import (
	"context"

	"github.com/user/screenbox/internal/model"
)

// 热门类型兜底列表，热门电影拿不到或类型太少时补齐展示
var defaultGenres = []string{"Action", "Comedy", "Drama", "Thriller", "Sci-Fi"}

const trendingCap = 5

// FetchTrendingSummary 从热门电影快照推导热门摘要
// 类型按首次出现顺序去重取前 5，不足时用固定默认类型补齐；
// 片名取快照前 5 个非空标题。彻底失败时返回默认类型 + 空片名，不报错。
func (c *Client) FetchTrendingSummary(ctx context.Context) model.TrendingSummary {
	popular := c.FetchPopular(ctx)

	// 1. 收集去重后的类型名（保留首次出现顺序）
	genres := make([]string, 0, trendingCap)
	seen := make(map[string]bool)
	for _, m := range popular {
		for _, g := range m.Genres {
			if g.Name == "" || seen[g.Name] {
				continue
			}
			seen[g.Name] = true
			genres = append(genres, g.Name)
		}
	}
	if len(genres) > trendingCap {
		genres = genres[:trendingCap]
	}

	// 2. 不足 5 个时用默认类型补齐，保持唯一
	for _, g := range defaultGenres {
		if len(genres) >= trendingCap {
			break
		}
		if seen[g] {
			continue
		}
		seen[g] = true
		genres = append(genres, g)
	}

	// 3. 片名取快照顺序前 5 个非空标题
	titles := make([]string, 0, trendingCap)
	for _, m := range popular {
		if m.Title == "" {
			continue
		}
		titles = append(titles, m.Title)
		if len(titles) >= trendingCap {
			break
		}
	}

	movies := popular
	if len(movies) > trendingCap {
		movies = movies[:trendingCap]
	}

	return model.TrendingSummary{
		Movies:      movies,
		Genres:      genres,
		MovieTitles: titles,
	}
}
