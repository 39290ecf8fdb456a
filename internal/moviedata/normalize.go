package moviedata

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/user/screenbox/internal/model"
)

// Normalize 将后端原始电影数据规范化为统一结构
// 纯函数，永不失败：单个字段坏了只兜底该字段，整条记录不会被丢弃。
func Normalize(raw model.RawMovie) model.Movie {
	m := model.Movie{
		ID:               raw.ID,
		Title:            raw.Title,
		Overview:         raw.Overview,
		ReleaseDate:      releaseDate(raw.ReleaseYear, raw.ReleaseDate),
		Genres:           wrapGenre(raw.Genre),
		VoteCount:        0,
		Popularity:       0,
		OriginalLanguage: raw.Language,
		OriginalTitle:    raw.Title,
		ReleaseYear:      raw.ReleaseYear,
		GenreCode:        raw.Genre,
		Runtime:          raw.Duration,
		Status:           raw.Status,
		Tagline:          raw.Tagline,
		IMDbID:           raw.IMDbID,
		Cast:             []model.CastMember{},
	}

	// overview 优先，其次 description，都没有则为空串
	if m.Overview == "" {
		m.Overview = raw.Description
	}

	// poster_path/backdrop_path 是 poster_url/banner_url 的历史别名，
	// 共享同一指针，保持同一逻辑值
	m.PosterPath = raw.PosterURL
	m.PosterURL = m.PosterPath
	m.BackdropPath = raw.BannerURL
	m.BannerURL = m.BackdropPath
	m.VideoURL = raw.VideoURL

	if raw.Rating != nil {
		m.VoteAverage = *raw.Rating
	}
	if m.OriginalLanguage == "" {
		m.OriginalLanguage = "en"
	}
	return m
}

// releaseDate 发行日期：年份字符串化优先，其次原始日期，最后 "N/A"
func releaseDate(year *int, date string) string {
	if year != nil {
		return strconv.Itoa(*year)
	}
	if date != "" {
		return date
	}
	return "N/A"
}

// wrapGenre 单个类型字符串包装为 {id, name} 列表，缺失时为空列表
func wrapGenre(genre *string) []model.Genre {
	if genre == nil || *genre == "" {
		return []model.Genre{}
	}
	return []model.Genre{{ID: 0, Name: *genre}}
}

// normalizeCast 规范化演员列表
// 后端不提供角色名和排序时补默认值。
func normalizeCast(entries []model.RawCastEntry) []model.CastMember {
	cast := make([]model.CastMember, 0, len(entries))
	for _, e := range entries {
		member := model.CastMember{
			ID:          e.ID,
			Name:        e.Name,
			Character:   e.Character,
			ProfilePath: e.ProfileURL,
		}
		if member.Character == "" {
			member.Character = "Actor"
		}
		if e.Order != nil {
			member.Order = *e.Order
		}
		cast = append(cast, member)
	}
	return cast
}

// reconcileSimilar 校验并规范化详情中内嵌的相似电影列表
// 逐条校验：非对象跳过，缺 id 跳过，其余按统一规则兜底。
// 脏数据只记日志不报错，调用方拿到的列表永远是成功结果。
func reconcileSimilar(entries []json.RawMessage) []model.Movie {
	movies := make([]model.Movie, 0, len(entries))
	dropped := 0
	for i, entry := range entries {
		var stub model.RawSimilarMovie
		if err := json.Unmarshal(entry, &stub); err != nil {
			log.Printf("[moviedata] 相似电影第 %d 条不是合法对象，跳过: %v", i, err)
			dropped++
			continue
		}
		if stub.ID == nil {
			log.Printf("[moviedata] 相似电影第 %d 条缺少 id，跳过", i)
			dropped++
			continue
		}
		movies = append(movies, normalizeStub(stub))
	}
	if dropped > 0 {
		log.Printf("[moviedata] 相似电影共丢弃 %d 条脏数据，保留 %d 条", dropped, len(movies))
	}
	return movies
}

// normalizeStub 规范化相似电影存根
// 存根只有卡片渲染所需字段：cast 为空、时长记 0（非未知）、状态默认已上映。
func normalizeStub(stub model.RawSimilarMovie) model.Movie {
	id := *stub.ID
	title := stub.Title
	if title == "" {
		title = fmt.Sprintf("Movie #%d", id)
	}

	zeroRuntime := 0
	m := model.Movie{
		ID:               id,
		Title:            title,
		Overview:         stub.Overview,
		ReleaseDate:      releaseDate(stub.ReleaseYear, ""),
		Genres:           wrapGenre(stub.Genre),
		VoteCount:        0,
		Popularity:       0,
		OriginalLanguage: "en",
		OriginalTitle:    title,
		ReleaseYear:      stub.ReleaseYear,
		GenreCode:        stub.Genre,
		Runtime:          &zeroRuntime,
		Status:           "Released",
		Cast:             []model.CastMember{},
	}
	m.PosterPath = stub.PosterURL
	m.PosterURL = m.PosterPath
	m.BackdropPath = stub.BannerURL
	m.BannerURL = m.BackdropPath
	m.VideoURL = stub.TrailerURL
	if stub.Rating != nil {
		m.VoteAverage = *stub.Rating
	}
	return m
}
