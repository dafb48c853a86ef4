package content

import (
	"cmp"
	"slices"
	"time"
)

// TweetSort 指定推文列表的排序维度
type TweetSort string

const (
	SortRecent    TweetSort = "recent"
	SortLikes     TweetSort = "likes"
	SortBookmarks TweetSort = "bookmarks"
	SortViews     TweetSort = "views"
)

// DateRange 以自然日为单位限制推文的时间窗口
type DateRange string

const (
	RangeAll DateRange = "all"
	Range7d  DateRange = "7d"
	Range30d DateRange = "30d"
	Range90d DateRange = "90d"
)

var dateRangeDays = map[DateRange]int{
	Range7d:  7,
	Range30d: 30,
	Range90d: 90,
}

// TweetQuery 描述一次推文查询的筛选与排序条件。
// 所有字段都可选：零值表示不限语言、不限主题、不限时间、按最新排序。
type TweetQuery struct {
	Lang      string
	Topics    []TweetTopic
	DateRange DateRange
	SortBy    TweetSort
}

// Queries 基于 Store 提供纯函数式的筛选、排序和查找。
// now 可注入，方便测试时间窗口筛选。
type Queries struct {
	store *Store
	now   func() time.Time
}

// NewQueries 构造查询服务，now 为 nil 时使用系统时钟。
func NewQueries(store *Store, now func() time.Time) *Queries {
	if now == nil {
		now = time.Now
	}
	return &Queries{store: store, now: now}
}

// QueryTweets 依次应用语言、主题、时间窗口三个独立筛选，再按指定维度排序。
// 排序是稳定的：排序键相同的推文保持加载顺序。
func (q *Queries) QueryTweets(query TweetQuery) []Tweet {
	tweets := q.store.Tweets()

	if query.Lang != "" && query.Lang != "all" {
		tweets = slices.DeleteFunc(tweets, func(t Tweet) bool {
			return string(t.Lang) != query.Lang
		})
	}

	if len(query.Topics) > 0 {
		tweets = slices.DeleteFunc(tweets, func(t Tweet) bool {
			return !slices.Contains(query.Topics, t.Topic)
		})
	}

	if days, ok := dateRangeDays[query.DateRange]; ok {
		now := q.now()
		tweets = slices.DeleteFunc(tweets, func(t Tweet) bool {
			return calendarDaysBetween(now, parsePostedAt(t.PostedAt)) > days
		})
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = SortRecent
	}

	slices.SortStableFunc(tweets, func(a, b Tweet) int {
		switch sortBy {
		case SortLikes:
			return cmp.Compare(b.Stats.Likes, a.Stats.Likes)
		case SortBookmarks:
			return cmp.Compare(b.Stats.Bookmarks, a.Stats.Bookmarks)
		case SortViews:
			return cmp.Compare(b.Stats.Views, a.Stats.Views)
		default:
			return parsePostedAt(b.PostedAt).Compare(parsePostedAt(a.PostedAt))
		}
	})

	return tweets
}

// Articles 返回按发布时间倒序排列的全部文章。
func (q *Queries) Articles() []Article {
	articles := q.store.Articles()
	slices.SortStableFunc(articles, func(a, b Article) int {
		return parsePostedAt(b.PublishedAt).Compare(parsePostedAt(a.PublishedAt))
	})
	return articles
}

// Cases 返回加载顺序的全部案例。
func (q *Queries) Cases() []Case {
	return q.store.Cases()
}

// Photos 返回加载顺序的全部照片。
func (q *Queries) Photos() []Photo {
	return q.store.Photos()
}

// KPIs 返回全部指标。
func (q *Queries) KPIs() []KPI {
	return q.store.KPIs()
}

// Testimonials 返回全部成员评价。
func (q *Queries) Testimonials() []Testimonial {
	return q.store.Testimonials()
}

// FAQs 返回全部常见问题。
func (q *Queries) FAQs() []FAQ {
	return q.store.FAQs()
}

// TweetByID 按 id 查找推文，未命中时 ok 为 false，不返回错误。
func (q *Queries) TweetByID(id string) (Tweet, bool) {
	for _, t := range q.store.tweets {
		if t.ID == id {
			return t, true
		}
	}
	return Tweet{}, false
}

// ArticleBySlug 按 slug 查找文章。
func (q *Queries) ArticleBySlug(slug string) (Article, bool) {
	for _, a := range q.store.articles {
		if a.Slug == slug {
			return cloneArticles([]Article{a})[0], true
		}
	}
	return Article{}, false
}

// CaseBySlug 按 slug 查找案例。
func (q *Queries) CaseBySlug(slug string) (Case, bool) {
	for _, c := range q.store.cases {
		if c.Slug == slug {
			return cloneCases([]Case{c})[0], true
		}
	}
	return Case{}, false
}

// RelatedCases 返回与指定案例同阶段的其他案例，保持加载顺序。
func (q *Queries) RelatedCases(slug string, limit int) []Case {
	current, ok := q.CaseBySlug(slug)
	if !ok {
		return nil
	}

	var related []Case
	for _, c := range q.store.cases {
		if c.Slug == slug || c.Stage != current.Stage {
			continue
		}
		related = append(related, cloneCases([]Case{c})[0])
		if limit > 0 && len(related) >= limit {
			break
		}
	}
	return related
}

// parsePostedAt 解析内容数据里的时间戳。
// 数据在构建期已经过校验，这里对日期精度和完整 RFC3339 两种写法都兼容，
// 无法解析时返回零值时间而不是报错。
func parsePostedAt(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}

// calendarDaysBetween 计算两个时刻之间的自然日差，忽略一天内的具体时间。
func calendarDaysBetween(now, t time.Time) int {
	ny, nm, nd := now.Date()
	ty, tm, td := t.Date()
	a := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}
