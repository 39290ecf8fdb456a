package model

import "encoding/json"

// RawMovie 电影后端返回的原始数据（关系型结构）
// 除 id 外任何字段都可能缺失或为 null，规范化时逐字段兜底，绝不整条丢弃。
type RawMovie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"` // 部分接口用 overview 代替 description
	ReleaseDate string   `json:"release_date"`
	ReleaseYear *int     `json:"release_year"`
	Genre       *string  `json:"genre"`
	Rating      *float64 `json:"rating"`
	PosterURL   *string  `json:"poster_url"`
	BannerURL   *string  `json:"banner_url"`
	VideoURL    *string  `json:"video_url"`
	Duration    *int     `json:"duration"`
	Language    string   `json:"language"`
	Status      string   `json:"status"`
	Tagline     string   `json:"tagline"`
	IMDbID      string   `json:"imdb_id"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`

	Cast []RawCastEntry `json:"cast"`
	// 条目可能不是对象、可能缺 id，保留原始 JSON 逐条校验
	SimilarMovies []json.RawMessage `json:"similar_movies"`
}

// RawCastEntry 原始演员条目
type RawCastEntry struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Character  string  `json:"character"`
	ProfileURL *string `json:"profile_url"`
	Order      *int    `json:"order"`
}

// RawSimilarMovie 详情接口内嵌的相似电影条目
// ID 用指针以识别缺失 id 的脏数据
type RawSimilarMovie struct {
	ID          *int     `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseYear *int     `json:"release_year"`
	Genre       *string  `json:"genre"`
	Rating      *float64 `json:"rating"`
	PosterURL   *string  `json:"poster_url"`
	BannerURL   *string  `json:"banner_url"`
	TrailerURL  *string  `json:"trailer_url"`
}

// Genre 类型标签
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie 规范化后的电影
// 所有业务字段保证有值，消费方无需判空；仅海报/横幅/视频引用、
// runtime、原始 genre、release_year 按设计允许为 null。
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	Genres           []Genre `json:"genres"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
	VideoURL         *string `json:"video_url"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`

	// 后端历史字段名，与 poster_path/backdrop_path 共享同一指针（别名而非复制）
	ReleaseYear *int    `json:"release_year"`
	GenreCode   *string `json:"genre"`
	PosterURL   *string `json:"poster_url"`
	BannerURL   *string `json:"banner_url"`

	Runtime *int   `json:"runtime"` // nil 表示未知，区别于 0
	Status  string `json:"status"`
	Tagline string `json:"tagline"`
	IMDbID  string `json:"imdb_id"`

	Cast []CastMember `json:"cast"`
}

// CastMember 演员（规范化）
type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

// CrewMember 职员
type CrewMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	ProfilePath *string `json:"profile_path"`
}

// Credits 演职员表
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Video 预告片/视频条目
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// VideoList 视频列表包装
type VideoList struct {
	Results []Video `json:"results"`
}

// ProductionCompany 制片公司
type ProductionCompany struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path"`
	OriginCountry string  `json:"origin_country"`
}

// ProductionCountry 制片国家
type ProductionCountry struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

// SpokenLanguage 语言
type SpokenLanguage struct {
	EnglishName string `json:"english_name"`
	ISO6391     string `json:"iso_639_1"`
	Name        string `json:"name"`
}

// MovieDetail 电影详情（规范化电影 + 演职员 + 相关电影）
type MovieDetail struct {
	Movie
	Credits Credits `json:"credits"`
	// 相关电影，由回退链填充：内嵌相似 → 推荐接口 → 热门去自身 → 空
	SimilarMovies       []Movie             `json:"similar_movies"`
	Recommendations     []Movie             `json:"recommendations"`
	Videos              VideoList           `json:"videos"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"`
	// 详情获取失败时返回占位记录并置此标记，真实数据不会带该字段
	Fallback bool `json:"fallback,omitempty"`
}

// TrendingSummary 热门摘要（每次请求现算，不落库）
type TrendingSummary struct {
	Movies      []Movie  `json:"popular_movies"`
	Genres      []string `json:"popular_genres"`
	MovieTitles []string `json:"popular_movie_titles"`
}
