package handler

import (
	"errors"
	"net/http"

	"github.com/creatorcircle/internal/db"
	"github.com/creatorcircle/internal/service"
	"github.com/gin-gonic/gin"
)

func profileView(profile *db.Profile) gin.H {
	return gin.H{
		"id":        profile.ID,
		"username":  profile.Username,
		"avatarUrl": profile.AvatarURL,
		"bio":       profile.Bio,
		"points":    profile.Points,
	}
}

// ShowDashboard 返回成员面板数据：档案、积分、各类投稿计数与最近投稿。
func (a *API) ShowDashboard(c *gin.Context) {
	profileID := currentProfileID(c)
	profile, err := a.members.Get(profileID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			respondError(c, http.StatusUnauthorized, "会话已失效，请重新登录")
			return
		}
		respondError(c, http.StatusInternalServerError, "加载面板失败")
		return
	}

	summary, err := a.submissions.Summary(profileID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "加载面板失败")
		return
	}
	articles, err := a.submissions.ListArticles(profileID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "加载面板失败")
		return
	}
	tweets, err := a.submissions.ListHighlightTweets(profileID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "加载面板失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profileView(profile),
		"summary": gin.H{
			"articleCount":      summary.ArticleCount,
			"tweetCount":        summary.TweetCount,
			"boostRequestCount": summary.BoostRequestCount,
			"supportGiven":      summary.SupportGiven,
		},
		"articles": articles,
		"tweets":   tweets,
	})
}

type memberArticleRequest struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// CreateMemberArticle 保存成员投稿的文章。
func (a *API) CreateMemberArticle(c *gin.Context) {
	var req memberArticleRequest
	if !bindJSON(c, &req, "无效的文章数据") {
		return
	}

	article, err := a.submissions.CreateArticle(currentProfileID(c), service.ArticleInput{
		Title:   req.Title,
		Summary: req.Summary,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, service.ErrArticleInvalidInput) {
			respondError(c, http.StatusBadRequest, "文章标题与内容不能为空")
			return
		}
		respondError(c, http.StatusInternalServerError, "保存文章失败")
		return
	}
	c.JSON(http.StatusCreated, article)
}

// GetMemberArticle 返回一篇投稿及渲染后的正文 HTML。
func (a *API) GetMemberArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的文章 ID")
		return
	}

	var article db.MemberArticle
	if err := a.db.First(&article, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "文章不存在")
		return
	}
	if article.ProfileID != currentProfileID(c) {
		respondError(c, http.StatusForbidden, "无权查看该文章")
		return
	}

	html, err := a.renders.Render(article.Content)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "渲染文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"article": article,
		"html":    html,
	})
}

type highlightTweetRequest struct {
	TweetURL string `json:"tweetUrl"`
	Note     string `json:"note"`
}

// CreateHighlightTweet 保存成员提交的高光推文链接。
func (a *API) CreateHighlightTweet(c *gin.Context) {
	var req highlightTweetRequest
	if !bindJSON(c, &req, "无效的推文数据") {
		return
	}

	tweet, err := a.submissions.CreateHighlightTweet(currentProfileID(c), req.TweetURL, req.Note)
	if err != nil {
		if errors.Is(err, service.ErrTweetURLRequired) {
			respondError(c, http.StatusBadRequest, "请填写推文链接")
			return
		}
		respondError(c, http.StatusInternalServerError, "保存推文失败")
		return
	}
	c.JSON(http.StatusCreated, tweet)
}
