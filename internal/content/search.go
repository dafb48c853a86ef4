package content

import (
	"fmt"
	"strings"
)

// searchResultLimit 是一次搜索返回结果的上限
const searchResultLimit = 20

// tweetTitleRunes 是推文标题里保留的正文字符数
const tweetTitleRunes = 36

// Search 在推文、文章、案例、照片四个集合上做大小写不敏感的子串匹配。
// 结果按集合优先级拼接（推文、文章、案例、照片），集合内部保持加载顺序，
// 总量截断到 20 条。排序是内容优先级而非相关度。
func (q *Queries) Search(query string) []SearchResult {
	keyword := strings.ToLower(strings.TrimSpace(query))
	if keyword == "" {
		return []SearchResult{}
	}

	results := make([]SearchResult, 0, searchResultLimit)

	for _, t := range q.store.tweets {
		if !matchesTweet(t, keyword) {
			continue
		}
		description := t.Recap
		if description == "" {
			description = t.Content
		}
		results = append(results, SearchResult{
			Type:        ResultTweet,
			Title:       fmt.Sprintf("%s · %s…", t.AuthorName, truncateRunes(t.Content, tweetTitleRunes)),
			Description: description,
			Href:        "/tweets/" + t.ID,
			Tags:        []string{string(t.Topic), string(t.Lang)},
		})
	}

	for _, a := range q.store.articles {
		if !matchesArticle(a, keyword) {
			continue
		}
		results = append(results, SearchResult{
			Type:        ResultArticle,
			Title:       a.Title,
			Description: a.Summary,
			Href:        "/writing/" + a.Slug,
			Tags:        append([]string{string(a.Category)}, a.Tags...),
		})
	}

	for _, c := range q.store.cases {
		if !matchesCase(c, keyword) {
			continue
		}
		results = append(results, SearchResult{
			Type:        ResultCase,
			Title:       c.Title,
			Description: fmt.Sprintf("%s · +%d 粉丝", c.Timeline, c.Impact.FollowersDelta),
			Href:        "/growth/" + c.Slug,
			Tags:        append([]string{string(c.Stage)}, c.Strategies...),
		})
	}

	for _, p := range q.store.photos {
		if !matchesPhoto(p, keyword) {
			continue
		}
		title := p.Caption
		if title == "" {
			title = "社群照片"
		}
		results = append(results, SearchResult{
			Type:        ResultPhoto,
			Title:       title,
			Description: strings.Join(p.Tags, " / "),
			Href:        "/photos#" + p.ID,
			Tags:        append([]string(nil), p.Tags...),
		})
	}

	if len(results) > searchResultLimit {
		results = results[:searchResultLimit]
	}
	return results
}

func matchesTweet(t Tweet, keyword string) bool {
	return containsFold(t.AuthorName, keyword) ||
		containsFold(t.Content, keyword) ||
		containsFold(string(t.Topic), keyword)
}

func matchesArticle(a Article, keyword string) bool {
	return containsFold(a.Title, keyword) ||
		containsFold(a.Summary, keyword) ||
		anyContainsFold(a.Tags, keyword)
}

func matchesCase(c Case, keyword string) bool {
	return containsFold(c.Title, keyword) ||
		anyContainsFold(c.Strategies, keyword) ||
		anyContainsFold(c.Tags, keyword)
}

func matchesPhoto(p Photo, keyword string) bool {
	return containsFold(p.Caption, keyword) ||
		anyContainsFold(p.Tags, keyword)
}

// containsFold 判断 keyword 是否为 value 小写形式的子串，keyword 已经是小写。
func containsFold(value, keyword string) bool {
	return strings.Contains(strings.ToLower(value), keyword)
}

func anyContainsFold(values []string, keyword string) bool {
	for _, v := range values {
		if containsFold(v, keyword) {
			return true
		}
	}
	return false
}

// truncateRunes 按字符而非字节截取，避免把多字节字符截成乱码。
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
