package handler

import (
	"errors"
	"net/http"

	"github.com/creatorcircle/internal/service"
	"github.com/gin-gonic/gin"
)

// ListBoosts 返回互推求助墙，公开可见。
// 已登录成员会拿到自己是否已助推的标记；open=1 时只看未关闭的请求。
func (a *API) ListBoosts(c *gin.Context) {
	onlyOpen := c.Query("open") == "1"
	views, err := a.boosts.List(currentProfileID(c), onlyOpen)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "加载互推列表失败")
		return
	}

	items := make([]gin.H, 0, len(views))
	for _, view := range views {
		items = append(items, gin.H{
			"id":           view.Request.ID,
			"title":        view.Request.Title,
			"description":  view.Request.Description,
			"link":         view.Request.Link,
			"status":       view.Request.Status,
			"createdAt":    view.Request.CreatedAt,
			"author":       view.AuthorName,
			"supportCount": view.SupportCount,
			"supportedBy":  view.SupportedBy,
		})
	}
	c.JSON(http.StatusOK, gin.H{"requests": items, "total": len(items)})
}

type boostRequestInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// CreateBoostRequest 发起一条互推求助。
func (a *API) CreateBoostRequest(c *gin.Context) {
	var req boostRequestInput
	if !bindJSON(c, &req, "无效的求助数据") {
		return
	}

	request, err := a.boosts.CreateRequest(currentProfileID(c), service.BoostInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		if errors.Is(err, service.ErrBoostInvalidInput) {
			respondError(c, http.StatusBadRequest, "标题和链接为必填项")
			return
		}
		respondError(c, http.StatusInternalServerError, "创建求助失败")
		return
	}
	c.JSON(http.StatusCreated, request)
}

// SupportBoost 给指定求助记一次助推，重复助推静默成功。
func (a *API) SupportBoost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的求助 ID")
		return
	}

	if err := a.boosts.Support(id, currentProfileID(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrBoostNotFound):
			respondError(c, http.StatusNotFound, "求助不存在")
		case errors.Is(err, service.ErrSelfSupport):
			respondError(c, http.StatusBadRequest, "不能助推自己的请求")
		default:
			respondError(c, http.StatusInternalServerError, "助推失败")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type boostStatusInput struct {
	Status string `json:"status"`
}

// UpdateBoostStatus 由发起者调整求助状态。
func (a *API) UpdateBoostStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的求助 ID")
		return
	}

	var req boostStatusInput
	if !bindJSON(c, &req, "无效的状态数据") {
		return
	}

	request, err := a.boosts.UpdateStatus(id, currentProfileID(c), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBoostNotFound):
			respondError(c, http.StatusNotFound, "求助不存在")
		case errors.Is(err, service.ErrBoostNotOwner):
			respondError(c, http.StatusForbidden, "只有发起者可以修改状态")
		case errors.Is(err, service.ErrBoostInvalidStatus):
			respondError(c, http.StatusBadRequest, "无效的状态值")
		default:
			respondError(c, http.StatusInternalServerError, "更新状态失败")
		}
		return
	}
	c.JSON(http.StatusOK, request)
}
