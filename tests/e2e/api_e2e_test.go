package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/creatorcircle/internal/config"
	"github.com/creatorcircle/internal/content"
	"github.com/creatorcircle/internal/db"
	"github.com/creatorcircle/internal/router"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	server *httptest.Server
	public *http.Client
	member *http.Client
	other  *http.Client
}

func newSuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&db.Profile{}, &db.MemberArticle{}, &db.HighlightTweet{}, &db.BoostRequest{}, &db.BoostSupport{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	// 直接用仓库里的静态数据，顺带校验数据文件可解析
	store, err := content.Load("../../data")
	if err != nil {
		t.Fatalf("failed to load content data: %v", err)
	}

	cfg := config.AppConfig{
		SessionSecret: "e2e-secret",
		GinMode:       gin.TestMode,
		UploadDir:     t.TempDir(),
		UploadURLPath: "/static/uploads",
	}

	server := httptest.NewServer(router.Setup(cfg, store, gdb))
	t.Cleanup(func() {
		server.Close()
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return &e2eSuite{
		server: server,
		public: &http.Client{},
		member: clientWithJar(t),
		other:  clientWithJar(t),
	}
}

func clientWithJar(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func (s *e2eSuite) postJSON(t *testing.T, client *http.Client, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	resp, err := client.Post(s.server.URL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return resp
}

func (s *e2eSuite) getJSON(t *testing.T, client *http.Client, path string, target any) *http.Response {
	t.Helper()
	resp, err := client.Get(s.server.URL + path)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			t.Fatalf("failed to decode %s: %v", path, err)
		}
	}
	return resp
}

func decodeAndClose(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestPublicContentEndpoints(t *testing.T) {
	s := newSuite(t)

	var tweets struct {
		Tweets []content.Tweet `json:"tweets"`
		Total  int             `json:"total"`
	}
	s.getJSON(t, s.public, "/api/tweets?lang=zh&sort=likes", &tweets)
	if tweets.Total == 0 {
		t.Fatalf("expected zh tweets from data files")
	}
	for _, tweet := range tweets.Tweets {
		if tweet.Lang != content.LangChinese {
			t.Fatalf("expected only zh tweets, got %s", tweet.Lang)
		}
	}
	for i := 1; i < len(tweets.Tweets); i++ {
		if tweets.Tweets[i-1].Stats.Likes < tweets.Tweets[i].Stats.Likes {
			t.Fatalf("tweets not sorted by likes")
		}
	}

	var article content.Article
	s.getJSON(t, s.public, "/api/articles/hook-formulas", &article)
	if article.Slug != "hook-formulas" {
		t.Fatalf("unexpected article: %+v", article)
	}

	resp := s.getJSON(t, s.public, "/api/articles/nonexistent-slug", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown slug, got %d", resp.StatusCode)
	}
}

func TestSearchEndpointEndToEnd(t *testing.T) {
	s := newSuite(t)

	resp, err := s.public.Get(s.server.URL + "/api/search?q=" + url.QueryEscape("hook"))
	if err != nil {
		t.Fatalf("search request failed: %v", err)
	}
	if cc := resp.Header.Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Fatalf("expected no-store, got %q", cc)
	}

	var results []content.SearchResult
	decodeAndClose(t, resp, &results)
	if len(results) == 0 || len(results) > 20 {
		t.Fatalf("unexpected result count %d", len(results))
	}

	var zoey bool
	for _, r := range results {
		if r.Type == content.ResultTweet && strings.HasPrefix(r.Title, "Zoey · ") {
			zoey = true
		}
	}
	if !zoey {
		t.Fatalf("expected Zoey's hook tweet in results: %+v", results)
	}

	var empty []content.SearchResult
	s.getJSON(t, s.public, "/api/search?q=%20%20", &empty)
	if len(empty) != 0 {
		t.Fatalf("expected empty array for blank query, got %v", empty)
	}
}

func TestMemberFlowEndToEnd(t *testing.T) {
	s := newSuite(t)

	// 未登录访问面板被拒绝
	resp := s.getJSON(t, s.public, "/api/dashboard", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}

	// 注册两名成员
	resp = s.postJSON(t, s.member, "/api/auth/register", map[string]string{
		"username": "zoey", "password": "zoey1234", "bio": "写作教练",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = s.postJSON(t, s.other, "/api/auth/register", map[string]string{
		"username": "marco", "password": "marco1234",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	// 重复用户名被拒绝
	resp = s.postJSON(t, s.public, "/api/auth/register", map[string]string{
		"username": "zoey", "password": "whatever9",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// zoey 投稿一篇文章
	resp = s.postJSON(t, s.member, "/api/dashboard/articles", map[string]string{
		"title":   "冲突开头的三种写法",
		"summary": "开头决定停留",
		"content": "## 冲突\n先抛出反直觉结论",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create article failed with %d", resp.StatusCode)
	}
	var created struct {
		ID uint `json:"ID"`
	}
	decodeAndClose(t, resp, &created)

	// 渲染后的正文是净化过的 HTML
	var rendered struct {
		HTML string `json:"html"`
	}
	s.getJSON(t, s.member, fmt.Sprintf("/api/dashboard/articles/%d", created.ID), &rendered)
	if !strings.Contains(rendered.HTML, "<h2") {
		t.Fatalf("expected rendered markdown, got %q", rendered.HTML)
	}

	// marco 发起互推求助，zoey 助推并得一分
	resp = s.postJSON(t, s.other, "/api/boost", map[string]string{
		"title": "新产品发布帖求助推",
		"link":  "https://x.com/marcoships/status/2001",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create boost failed with %d", resp.StatusCode)
	}
	var boost struct {
		ID uint `json:"ID"`
	}
	decodeAndClose(t, resp, &boost)

	resp = s.postJSON(t, s.member, fmt.Sprintf("/api/boost/%d/support", boost.ID), map[string]string{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("support failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	// 重复助推仍然成功，但不再加分
	resp = s.postJSON(t, s.member, fmt.Sprintf("/api/boost/%d/support", boost.ID), map[string]string{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("duplicate support failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	var dashboard struct {
		Profile struct {
			Points int `json:"points"`
		} `json:"profile"`
		Summary struct {
			ArticleCount int `json:"articleCount"`
			SupportGiven int `json:"supportGiven"`
		} `json:"summary"`
	}
	s.getJSON(t, s.member, "/api/dashboard", &dashboard)
	if dashboard.Profile.Points != 1 {
		t.Fatalf("expected 1 point, got %d", dashboard.Profile.Points)
	}
	if dashboard.Summary.ArticleCount != 1 || dashboard.Summary.SupportGiven != 1 {
		t.Fatalf("unexpected summary: %+v", dashboard.Summary)
	}

	// 公共互推墙带助推计数
	var wall struct {
		Requests []struct {
			SupportCount int  `json:"supportCount"`
			SupportedBy  bool `json:"supportedBy"`
		} `json:"requests"`
	}
	s.getJSON(t, s.member, "/api/boost", &wall)
	if len(wall.Requests) != 1 || wall.Requests[0].SupportCount != 1 || !wall.Requests[0].SupportedBy {
		t.Fatalf("unexpected boost wall: %+v", wall)
	}

	// 登出后面板不可访问
	resp = s.postJSON(t, s.member, "/api/auth/logout", map[string]string{})
	resp.Body.Close()
	resp = s.getJSON(t, s.member, "/api/dashboard", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}
