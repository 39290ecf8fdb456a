package moviedata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchPopularAbsorbsFailure(t *testing.T) {
	ts := newTestServer(nil)
	defer ts.Close()

	c := newTestClient(ts.URL)
	movies := c.FetchPopular(context.Background())
	if movies == nil || len(movies) != 0 {
		t.Fatalf("后端失败时应返回空列表非 nil: %+v", movies)
	}
}

func TestFetchPopularCached(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"success": true, "results": [{"id": 1, "title": "A"}]}`)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	c.FetchPopular(context.Background())
	c.FetchPopular(context.Background())

	if hits != 1 {
		t.Fatalf("热门接口命中 %d 次, 缓存后期望 1 次", hits)
	}
}

func TestSearchBlankTerm(t *testing.T) {
	// 空白关键词不触发任何请求
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("空白关键词不应请求后端: %s", r.URL)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	for _, term := range []string{"", "   ", "\t\n"} {
		results := c.Search(context.Background(), term)
		if results == nil || len(results) != 0 {
			t.Fatalf("空白关键词应返回空列表非 nil: %+v", results)
		}
	}
}

func TestSearchTrimsTerm(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, `{"success": true, "results": [{"id": 1, "title": "Matrix"}]}`)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	results := c.Search(context.Background(), "  Matrix  ")

	if gotQuery != "Matrix" {
		t.Fatalf("关键词应去掉首尾空白, 实际发送 %q", gotQuery)
	}
	if len(results) != 1 || results[0].Title != "Matrix" {
		t.Fatalf("搜索结果不对: %+v", results)
	}
}

func TestSearchAbsorbsFailure(t *testing.T) {
	ts := newTestServer(nil)
	defer ts.Close()

	c := newTestClient(ts.URL)
	results := c.Search(context.Background(), "anything")
	if results == nil || len(results) != 0 {
		t.Fatalf("搜索失败时应返回空列表非 nil: %+v", results)
	}
}

func TestSearchCached(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"success": true, "results": [{"id": 1, "title": "Matrix"}]}`)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	c.Search(context.Background(), "Matrix")
	c.Search(context.Background(), "Matrix")

	if hits != 1 {
		t.Fatalf("同一关键词命中后端 %d 次, 缓存后期望 1 次", hits)
	}
}

func TestFetchCreditsAbsorbsFailure(t *testing.T) {
	ts := newTestServer(nil)
	defer ts.Close()

	c := newTestClient(ts.URL)
	credits := c.FetchCredits(context.Background(), 1)
	if credits.Cast == nil || credits.Crew == nil {
		t.Fatalf("失败时演职员集合应为空列表非 nil")
	}
	if len(credits.Cast) != 0 {
		t.Fatalf("失败时演员列表应为空: %+v", credits.Cast)
	}
}
