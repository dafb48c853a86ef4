package db

import "gorm.io/gorm"

// 助推请求的生命周期状态
const (
	BoostStatusOpen       = "open"
	BoostStatusInProgress = "in_progress"
	BoostStatusClosed     = "closed"
)

// BoostRequest 是成员发起的互推求助
type BoostRequest struct {
	gorm.Model
	ProfileID   string `gorm:"size:36;index;not null"`
	Profile     Profile
	Title       string `gorm:"size:160;not null"`
	Description string
	Link        string `gorm:"not null"`
	Status      string `gorm:"size:20;not null;default:open"`
}

// BoostSupport 记录一次助推，同一成员对同一请求只记一次
type BoostSupport struct {
	gorm.Model
	RequestID   uint   `gorm:"not null;uniqueIndex:idx_boost_supports_request_supporter"`
	SupporterID string `gorm:"size:36;not null;uniqueIndex:idx_boost_supports_request_supporter"`
}
