package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creatorcircle/internal/db"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMemberInvalidInput = errors.New("invalid member input")
)

const (
	minUsernameLength = 2
	maxUsernameLength = 120
	minPasswordLength = 6
	maxBioLength      = 280
)

// MemberService 负责成员注册、登录与档案维护。
type MemberService struct {
	db *gorm.DB
}

// NewMemberService 构造 MemberService 实例。
func NewMemberService(gdb *gorm.DB) *MemberService {
	return &MemberService{db: gdb}
}

// RegisterInput 描述注册时可提交的字段。
type RegisterInput struct {
	Username  string
	Password  string
	AvatarURL string
	Bio       string
}

// Register 创建新成员档案，用户名唯一，密码以 bcrypt 哈希存储。
func (s *MemberService) Register(input RegisterInput) (*db.Profile, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return nil, fmt.Errorf("%w: username length", ErrMemberInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password too short", ErrMemberInvalidInput)
	}
	bio := strings.TrimSpace(input.Bio)
	if len(bio) > maxBioLength {
		return nil, fmt.Errorf("%w: bio too long", ErrMemberInvalidInput)
	}

	var count int64
	if err := s.db.Model(&db.Profile{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := db.Profile{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  string(hashed),
		AvatarURL: strings.TrimSpace(input.AvatarURL),
		Bio:       bio,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return &profile, nil
}

// Authenticate 校验用户名与密码。
// 用户不存在和密码错误返回同一个错误，避免泄露账号是否存在。
func (s *MemberService) Authenticate(username, password string) (*db.Profile, error) {
	var profile db.Profile
	err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &profile, nil
}

// Get 按 ID 读取成员档案。
func (s *MemberService) Get(id string) (*db.Profile, error) {
	var profile db.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &profile, nil
}
