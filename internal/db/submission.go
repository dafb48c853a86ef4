package db

import "gorm.io/gorm"

// MemberArticle 是成员在后台投稿的文章
type MemberArticle struct {
	gorm.Model
	ProfileID string `gorm:"size:36;index;not null"`
	Profile   Profile
	Title     string `gorm:"size:160;not null"`
	Summary   string `gorm:"size:300"`
	Content   string `gorm:"not null"`
}

// HighlightTweet 是成员提交的高光推文链接
type HighlightTweet struct {
	gorm.Model
	ProfileID string `gorm:"size:36;index;not null"`
	Profile   Profile
	TweetURL  string `gorm:"not null"`
	Note      string `gorm:"size:240"`
}
