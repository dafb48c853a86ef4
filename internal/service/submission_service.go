package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creatorcircle/internal/db"
	"gorm.io/gorm"
)

var (
	ErrArticleInvalidInput = errors.New("article title and content are required")
	ErrTweetURLRequired    = errors.New("tweet url is required")
)

// SubmissionService 负责后台投稿：成员文章与高光推文。
type SubmissionService struct {
	db *gorm.DB
}

// NewSubmissionService 构造 SubmissionService 实例。
func NewSubmissionService(gdb *gorm.DB) *SubmissionService {
	return &SubmissionService{db: gdb}
}

// ArticleInput 描述投稿文章时可提交的字段。
type ArticleInput struct {
	Title   string
	Summary string
	Content string
}

// CreateArticle 保存一篇成员投稿，标题与正文必填。
func (s *SubmissionService) CreateArticle(profileID string, input ArticleInput) (*db.MemberArticle, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrArticleInvalidInput
	}

	article := db.MemberArticle{
		ProfileID: profileID,
		Title:     title,
		Summary:   strings.TrimSpace(input.Summary),
		Content:   content,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, fmt.Errorf("create member article: %w", err)
	}
	return &article, nil
}

// CreateHighlightTweet 保存一条高光推文链接。
func (s *SubmissionService) CreateHighlightTweet(profileID, tweetURL, note string) (*db.HighlightTweet, error) {
	url := strings.TrimSpace(tweetURL)
	if url == "" {
		return nil, ErrTweetURLRequired
	}

	tweet := db.HighlightTweet{
		ProfileID: profileID,
		TweetURL:  url,
		Note:      strings.TrimSpace(note),
	}
	if err := s.db.Create(&tweet).Error; err != nil {
		return nil, fmt.Errorf("create highlight tweet: %w", err)
	}
	return &tweet, nil
}

// ListArticles 返回指定成员的投稿，按创建时间倒序。
func (s *SubmissionService) ListArticles(profileID string) ([]db.MemberArticle, error) {
	var articles []db.MemberArticle
	if err := s.db.Where("profile_id = ?", profileID).Order("created_at desc").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("list member articles: %w", err)
	}
	return articles, nil
}

// ListHighlightTweets 返回指定成员提交的高光推文，按创建时间倒序。
func (s *SubmissionService) ListHighlightTweets(profileID string) ([]db.HighlightTweet, error) {
	var tweets []db.HighlightTweet
	if err := s.db.Where("profile_id = ?", profileID).Order("created_at desc").Find(&tweets).Error; err != nil {
		return nil, fmt.Errorf("list highlight tweets: %w", err)
	}
	return tweets, nil
}

// DashboardSummary 汇总成员面板需要的计数。
type DashboardSummary struct {
	ArticleCount      int64
	TweetCount        int64
	BoostRequestCount int64
	SupportGiven      int64
}

// Summary 统计指定成员的投稿与助推数量。
func (s *SubmissionService) Summary(profileID string) (DashboardSummary, error) {
	var summary DashboardSummary
	if err := s.db.Model(&db.MemberArticle{}).Where("profile_id = ?", profileID).Count(&summary.ArticleCount).Error; err != nil {
		return summary, fmt.Errorf("count articles: %w", err)
	}
	if err := s.db.Model(&db.HighlightTweet{}).Where("profile_id = ?", profileID).Count(&summary.TweetCount).Error; err != nil {
		return summary, fmt.Errorf("count tweets: %w", err)
	}
	if err := s.db.Model(&db.BoostRequest{}).Where("profile_id = ?", profileID).Count(&summary.BoostRequestCount).Error; err != nil {
		return summary, fmt.Errorf("count boost requests: %w", err)
	}
	if err := s.db.Model(&db.BoostSupport{}).Where("supporter_id = ?", profileID).Count(&summary.SupportGiven).Error; err != nil {
		return summary, fmt.Errorf("count supports: %w", err)
	}
	return summary, nil
}
