package moviedata

import (
	"encoding/json"
	"testing"

	"github.com/user/screenbox/internal/model"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		name   string
		rating *float64
		want   float64
	}{
		{"缺失评分兜底为 0", nil, 0},
		{"正常评分原样保留", floatPtr(8.4), 8.4},
		{"零分也是合法值", floatPtr(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Normalize(model.RawMovie{ID: 1, Title: "Test", Rating: tt.rating})
			if m.VoteAverage != tt.want {
				t.Fatalf("VoteAverage = %v, 期望 %v", m.VoteAverage, tt.want)
			}
		})
	}
}

func TestNormalizeReleaseDate(t *testing.T) {
	tests := []struct {
		name string
		year *int
		date string
		want string
	}{
		{"年份优先于日期字符串", intPtr(2015), "2014-01-01", "2015"},
		{"只有年份", intPtr(2015), "", "2015"},
		{"只有日期字符串", nil, "2020-06-15", "2020-06-15"},
		{"两者都缺失", nil, "", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Normalize(model.RawMovie{ID: 1, ReleaseYear: tt.year, ReleaseDate: tt.date})
			if m.ReleaseDate != tt.want {
				t.Fatalf("ReleaseDate = %q, 期望 %q", m.ReleaseDate, tt.want)
			}
		})
	}
}

func TestNormalizeOverviewFallback(t *testing.T) {
	tests := []struct {
		name        string
		overview    string
		description string
		want        string
	}{
		{"overview 优先", "from overview", "from description", "from overview"},
		{"缺 overview 用 description", "", "from description", "from description"},
		{"都缺为空串", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Normalize(model.RawMovie{ID: 1, Overview: tt.overview, Description: tt.description})
			if m.Overview != tt.want {
				t.Fatalf("Overview = %q, 期望 %q", m.Overview, tt.want)
			}
		})
	}
}

func TestNormalizeGenreWrap(t *testing.T) {
	m := Normalize(model.RawMovie{ID: 1, Genre: strPtr("Action")})
	if len(m.Genres) != 1 || m.Genres[0].Name != "Action" || m.Genres[0].ID != 0 {
		t.Fatalf("Genres = %+v, 期望 [{0 Action}]", m.Genres)
	}

	m = Normalize(model.RawMovie{ID: 1})
	if m.Genres == nil || len(m.Genres) != 0 {
		t.Fatalf("缺失类型应得到空列表而非 nil, 实际 %+v", m.Genres)
	}
}

func TestNormalizeAliasFields(t *testing.T) {
	m := Normalize(model.RawMovie{
		ID:        1,
		PosterURL: strPtr("/p.jpg"),
		BannerURL: strPtr("/b.jpg"),
	})

	// 历史字段与新字段共享同一指针
	if m.PosterPath != m.PosterURL {
		t.Fatalf("PosterPath 与 PosterURL 应为同一指针")
	}
	if m.BackdropPath != m.BannerURL {
		t.Fatalf("BackdropPath 与 BannerURL 应为同一指针")
	}
	if *m.PosterPath != "/p.jpg" || *m.BackdropPath != "/b.jpg" {
		t.Fatalf("别名字段值不对: poster=%v backdrop=%v", *m.PosterPath, *m.BackdropPath)
	}
}

func TestNormalizeLanguageDefault(t *testing.T) {
	m := Normalize(model.RawMovie{ID: 1})
	if m.OriginalLanguage != "en" {
		t.Fatalf("缺失语言应兜底为 en, 实际 %q", m.OriginalLanguage)
	}

	m = Normalize(model.RawMovie{ID: 1, Language: "fr"})
	if m.OriginalLanguage != "fr" {
		t.Fatalf("语言应原样保留, 实际 %q", m.OriginalLanguage)
	}
}

func TestNormalizeCastDefaults(t *testing.T) {
	cast := normalizeCast([]model.RawCastEntry{
		{ID: 1, Name: "Actor A", Character: "Hero", Order: intPtr(2)},
		{ID: 2, Name: "Actor B"},
	})

	if len(cast) != 2 {
		t.Fatalf("演员数量 = %d, 期望 2", len(cast))
	}
	if cast[0].Character != "Hero" || cast[0].Order != 2 {
		t.Fatalf("完整条目不应被改写: %+v", cast[0])
	}
	if cast[1].Character != "Actor" || cast[1].Order != 0 {
		t.Fatalf("缺字段条目应补默认值: %+v", cast[1])
	}
}

func TestReconcileSimilarDropsDirtyEntries(t *testing.T) {
	entries := []json.RawMessage{
		json.RawMessage(`{"id": 10, "title": "A"}`),
		json.RawMessage(`"not an object"`),
		json.RawMessage(`{"id": 11}`),
		json.RawMessage(`{"title": "no id"}`),
		json.RawMessage(`{"id": 12, "title": "C", "rating": 7.5}`),
	}

	movies := reconcileSimilar(entries)
	if len(movies) != 3 {
		t.Fatalf("保留条数 = %d, 期望 3", len(movies))
	}
	wantIDs := []int{10, 11, 12}
	for i, m := range movies {
		if m.ID != wantIDs[i] {
			t.Fatalf("第 %d 条 ID = %d, 期望 %d", i, m.ID, wantIDs[i])
		}
	}

	// 缺标题的条目应有占位标题
	if movies[1].Title != "Movie #11" {
		t.Fatalf("缺标题条目应有占位标题, 实际 %q", movies[1].Title)
	}
	// 存根的时长记 0（非未知）
	if movies[0].Runtime == nil || *movies[0].Runtime != 0 {
		t.Fatalf("存根 Runtime 应为 0, 实际 %v", movies[0].Runtime)
	}
}

func TestReconcileSimilarEmpty(t *testing.T) {
	movies := reconcileSimilar(nil)
	if movies == nil || len(movies) != 0 {
		t.Fatalf("空输入应得到空列表而非 nil, 实际 %+v", movies)
	}
}
