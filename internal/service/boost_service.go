package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creatorcircle/internal/db"
	"gorm.io/gorm"
)

var (
	ErrBoostNotFound      = errors.New("boost request not found")
	ErrBoostInvalidInput  = errors.New("boost title and link are required")
	ErrBoostInvalidStatus = errors.New("boost status is invalid")
	ErrBoostNotOwner      = errors.New("boost request belongs to another member")
	ErrSelfSupport        = errors.New("cannot support your own boost request")
)

// BoostService 负责互推求助与助推记分。
type BoostService struct {
	db *gorm.DB
}

// NewBoostService 构造 BoostService 实例。
func NewBoostService(gdb *gorm.DB) *BoostService {
	return &BoostService{db: gdb}
}

// BoostInput 描述发起互推求助时可提交的字段。
type BoostInput struct {
	Title       string
	Description string
	Link        string
}

// BoostView 是列表展示用的聚合视图。
type BoostView struct {
	Request      db.BoostRequest
	AuthorName   string
	SupportCount int64
	SupportedBy  bool
}

// CreateRequest 发起一条互推求助，初始状态为 open。
func (s *BoostService) CreateRequest(profileID string, input BoostInput) (*db.BoostRequest, error) {
	title := strings.TrimSpace(input.Title)
	link := strings.TrimSpace(input.Link)
	if title == "" || link == "" {
		return nil, ErrBoostInvalidInput
	}

	request := db.BoostRequest{
		ProfileID:   profileID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Link:        link,
		Status:      db.BoostStatusOpen,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("create boost request: %w", err)
	}
	return &request, nil
}

// List 返回互推求助列表，按创建时间倒序，并带上助推计数。
// viewerID 非空时会标记当前成员已助推过的条目；onlyOpen 为真时过滤掉已关闭的请求。
func (s *BoostService) List(viewerID string, onlyOpen bool) ([]BoostView, error) {
	query := s.db.Preload("Profile").Order("created_at desc")
	if onlyOpen {
		query = query.Where("status <> ?", db.BoostStatusClosed)
	}

	var requests []db.BoostRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list boost requests: %w", err)
	}

	views := make([]BoostView, 0, len(requests))
	for _, request := range requests {
		view := BoostView{Request: request, AuthorName: request.Profile.Username}

		if err := s.db.Model(&db.BoostSupport{}).
			Where("request_id = ?", request.ID).
			Count(&view.SupportCount).Error; err != nil {
			return nil, fmt.Errorf("count supports: %w", err)
		}

		if viewerID != "" {
			var mine int64
			if err := s.db.Model(&db.BoostSupport{}).
				Where("request_id = ? AND supporter_id = ?", request.ID, viewerID).
				Count(&mine).Error; err != nil {
				return nil, fmt.Errorf("check viewer support: %w", err)
			}
			view.SupportedBy = mine > 0
		}

		views = append(views, view)
	}
	return views, nil
}

// Get 按 ID 读取互推求助。
func (s *BoostService) Get(id uint) (*db.BoostRequest, error) {
	var request db.BoostRequest
	if err := s.db.Preload("Profile").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoostNotFound
		}
		return nil, fmt.Errorf("load boost request: %w", err)
	}
	return &request, nil
}

// Support 给指定求助记一次助推并给助推者加一分。
// 重复助推是无操作；写支持记录和加分在同一个事务里完成，
// 积分更新用 points = points + 1 原子表达式，不做读改写。
func (s *BoostService) Support(requestID uint, supporterID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var request db.BoostRequest
		if err := tx.First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoostNotFound
			}
			return fmt.Errorf("load boost request: %w", err)
		}
		if request.ProfileID == supporterID {
			return ErrSelfSupport
		}

		var existing int64
		if err := tx.Model(&db.BoostSupport{}).
			Where("request_id = ? AND supporter_id = ?", requestID, supporterID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("check existing support: %w", err)
		}
		if existing > 0 {
			return nil
		}

		support := db.BoostSupport{RequestID: requestID, SupporterID: supporterID}
		if err := tx.Create(&support).Error; err != nil {
			return fmt.Errorf("create support: %w", err)
		}

		if err := tx.Model(&db.Profile{}).
			Where("id = ?", supporterID).
			Update("points", gorm.Expr("points + ?", 1)).Error; err != nil {
			return fmt.Errorf("award point: %w", err)
		}
		return nil
	})
}

// UpdateStatus 由发起者调整求助状态。
func (s *BoostService) UpdateStatus(requestID uint, profileID, status string) (*db.BoostRequest, error) {
	switch status {
	case db.BoostStatusOpen, db.BoostStatusInProgress, db.BoostStatusClosed:
	default:
		return nil, ErrBoostInvalidStatus
	}

	var request db.BoostRequest
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoostNotFound
		}
		return nil, fmt.Errorf("load boost request: %w", err)
	}
	if request.ProfileID != profileID {
		return nil, ErrBoostNotOwner
	}

	if err := s.db.Model(&request).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update boost status: %w", err)
	}
	return &request, nil
}
