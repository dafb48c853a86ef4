package handler

import (
	"net/http"
	"strings"

	"github.com/creatorcircle/internal/content"
	"github.com/creatorcircle/internal/locale"
	"github.com/gin-gonic/gin"
)

// GetTweets 返回按筛选条件过滤排序后的推文列表。
// 支持的查询参数：lang=all|zh|en，topics=growth,writing,...（可重复或逗号分隔），
// range=all|7d|30d|90d，sort=recent|likes|bookmarks|views。
func (a *API) GetTweets(c *gin.Context) {
	query := content.TweetQuery{
		Lang:      locale.ResolveFilter(c.DefaultQuery("lang", locale.FilterAll)),
		Topics:    parseTopics(c.QueryArray("topics")),
		DateRange: parseDateRange(c.Query("range")),
		SortBy:    parseTweetSort(c.Query("sort")),
	}

	tweets := a.queries.QueryTweets(query)
	c.JSON(http.StatusOK, gin.H{
		"tweets": tweets,
		"total":  len(tweets),
	})
}

// GetTweet 按 id 返回单条推文，未命中时响应 404。
func (a *API) GetTweet(c *gin.Context) {
	tweet, ok := a.queries.TweetByID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "tweet not found")
		return
	}
	c.JSON(http.StatusOK, tweet)
}

// GetArticles 返回按发布时间倒序的全部文章。
// 分类、语言、标签的细筛选留给客户端在整表上做，集合足够小。
func (a *API) GetArticles(c *gin.Context) {
	articles := a.queries.Articles()
	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    len(articles),
	})
}

// GetArticle 按 slug 返回单篇文章。
func (a *API) GetArticle(c *gin.Context) {
	article, ok := a.queries.ArticleBySlug(c.Param("slug"))
	if !ok {
		respondError(c, http.StatusNotFound, "article not found")
		return
	}
	c.JSON(http.StatusOK, article)
}

// GetCases 返回全部增长案例。
func (a *API) GetCases(c *gin.Context) {
	cases := a.queries.Cases()
	c.JSON(http.StatusOK, gin.H{
		"cases": cases,
		"total": len(cases),
	})
}

const relatedCaseLimit = 3

// GetCase 按 slug 返回案例详情及同阶段的相关案例。
func (a *API) GetCase(c *gin.Context) {
	item, ok := a.queries.CaseBySlug(c.Param("slug"))
	if !ok {
		respondError(c, http.StatusNotFound, "case not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"case":    item,
		"related": a.queries.RelatedCases(item.Slug, relatedCaseLimit),
	})
}

// GetPhotos 返回照片墙的全部照片。
func (a *API) GetPhotos(c *gin.Context) {
	photos := a.queries.Photos()
	c.JSON(http.StatusOK, gin.H{
		"photos": photos,
		"total":  len(photos),
	})
}

// GetSite 返回首页展示数据：KPI、成员评价与常见问题。
// 评价和 FAQ 按请求语言过滤，语言取 lang 参数，缺省时看 Accept-Language。
func (a *API) GetSite(c *gin.Context) {
	lang := locale.NormalizeLanguage(c.Query("lang"))
	if lang == "" {
		lang = locale.LanguageFromAcceptLanguage(c.GetHeader("Accept-Language"))
	}
	pref := locale.PreferenceForLanguage(lang)

	testimonials := a.queries.Testimonials()
	faqs := a.queries.FAQs()
	if lang != "" {
		testimonials = filterTestimonials(testimonials, content.Lang(lang))
		faqs = filterFAQs(faqs, content.Lang(lang))
	}

	c.JSON(http.StatusOK, gin.H{
		"kpis":         a.queries.KPIs(),
		"testimonials": testimonials,
		"faqs":         faqs,
		"locale": gin.H{
			"language": pref.Language,
			"locale":   pref.Locale,
			"htmlLang": pref.HTMLLang,
		},
	})
}

func filterTestimonials(items []content.Testimonial, lang content.Lang) []content.Testimonial {
	filtered := make([]content.Testimonial, 0, len(items))
	for _, item := range items {
		if item.Lang == lang {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func filterFAQs(items []content.FAQ, lang content.Lang) []content.FAQ {
	filtered := make([]content.FAQ, 0, len(items))
	for _, item := range items {
		if item.Lang == lang {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

var knownTopics = map[string]content.TweetTopic{
	"growth":  content.TopicGrowth,
	"writing": content.TopicWriting,
	"case":    content.TopicCase,
	"tooling": content.TopicTooling,
	"other":   content.TopicOther,
}

// parseTopics 解析主题参数，未知主题直接忽略，空集合表示不限主题。
func parseTopics(values []string) []content.TweetTopic {
	var topics []content.TweetTopic
	for _, raw := range values {
		for _, piece := range strings.Split(raw, ",") {
			if topic, ok := knownTopics[strings.ToLower(strings.TrimSpace(piece))]; ok {
				if !containsTopic(topics, topic) {
					topics = append(topics, topic)
				}
			}
		}
	}
	return topics
}

func containsTopic(topics []content.TweetTopic, topic content.TweetTopic) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}

func parseDateRange(raw string) content.DateRange {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "7d":
		return content.Range7d
	case "30d":
		return content.Range30d
	case "90d":
		return content.Range90d
	default:
		return content.RangeAll
	}
}

func parseTweetSort(raw string) content.TweetSort {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "likes":
		return content.SortLikes
	case "bookmarks":
		return content.SortBookmarks
	case "views":
		return content.SortViews
	default:
		return content.SortRecent
	}
}
