package handler

import (
	"testing"

	"github.com/creatorcircle/internal/content"
	"github.com/creatorcircle/internal/db"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestAPI(t *testing.T) (*API, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&db.Profile{}, &db.MemberArticle{}, &db.HighlightTweet{}, &db.BoostRequest{}, &db.BoostSupport{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	api := NewAPI(testStore(), gdb, t.TempDir(), "/static/uploads")
	return api, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func testStore() *content.Store {
	return content.NewStore(
		[]content.Tweet{
			{
				ID:         "t1",
				AuthorName: "Zoey",
				Lang:       content.LangChinese,
				Topic:      content.TopicWriting,
				PostedAt:   "2024-03-01",
				Content:    "Hook 实验室：冲突-证据-行动",
				Stats:      content.TweetStats{Likes: 120, Bookmarks: 40, Views: 9000},
			},
			{
				ID:         "t2",
				AuthorName: "Marco",
				Lang:       content.LangEnglish,
				Topic:      content.TopicGrowth,
				PostedAt:   "2024-03-05",
				Content:    "Daily threads compound faster than you think",
				Stats:      content.TweetStats{Likes: 300, Bookmarks: 80, Views: 21000},
			},
		},
		[]content.Article{
			{Slug: "hook-formulas", Title: "九个开头公式", Lang: content.LangChinese, Category: content.CategoryHook, Summary: "拆解高转化开头", PublishedAt: "2024-02-01", Tags: []string{"hook"}},
			{Slug: "weekly-review", Title: "每周复盘模板", Lang: content.LangChinese, Category: content.CategoryReview, Summary: "固定复盘节奏", PublishedAt: "2024-03-01", Tags: []string{"review"}},
		},
		[]content.Case{
			{Slug: "zero-to-1k", Title: "从 0 到 1000", Stage: content.StageSeed, Timeline: "六周", Strategies: []string{"每日发帖"}, Impact: content.CaseImpact{FollowersDelta: 1000}},
			{Slug: "cold-start", Title: "冷启动打法", Stage: content.StageSeed, Timeline: "四周", Strategies: []string{"蹭热点"}, Impact: content.CaseImpact{FollowersDelta: 800}},
		},
		[]content.Photo{
			{ID: "p1", Src: "/photos/p1.jpg", W: 1200, H: 800, Tags: []string{"meetup"}, Caption: "上海线下聚会"},
		},
		[]content.KPI{
			{ID: "members", Label: "社群成员", Value: "800+"},
		},
		[]content.Testimonial{
			{ID: "m1", Name: "Zoey", Role: "写作教练", Quote: "每周都有新输出", Lang: content.LangChinese},
			{ID: "m2", Name: "Marco", Role: "Indie hacker", Quote: "Grew 10x in 3 months", Lang: content.LangEnglish},
		},
		[]content.FAQ{
			{Question: "如何加入？", Answer: "填写申请表", Lang: content.LangChinese},
			{Question: "How to join?", Answer: "Fill the form", Lang: content.LangEnglish},
		},
	)
}
