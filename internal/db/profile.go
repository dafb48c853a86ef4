package db

import "time"

// Profile 定义了社区成员档案，主键为 UUID 字符串。
// Points 随助推互助行为累积，只增不减。
type Profile struct {
	ID        string `gorm:"primaryKey;size:36"`
	Username  string `gorm:"uniqueIndex;size:120;not null"`
	Password  string `gorm:"not null"`
	AvatarURL string
	Bio       string `gorm:"size:280"`
	Points    int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
