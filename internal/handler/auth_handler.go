package handler

import (
	"errors"
	"net/http"

	"github.com/creatorcircle/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionProfileKey = "profile_id"

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register 处理成员注册，注册成功后直接建立会话。
func (a *API) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req, "无效的注册数据") {
		return
	}

	profile, err := a.members.Register(service.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			respondError(c, http.StatusConflict, "用户名已被占用")
		case errors.Is(err, service.ErrMemberInvalidInput):
			respondError(c, http.StatusBadRequest, "用户名或密码不符合要求")
		default:
			respondError(c, http.StatusInternalServerError, "注册失败")
		}
		return
	}

	if !saveProfileSession(c, profile.ID) {
		return
	}
	c.JSON(http.StatusCreated, profileView(profile))
}

// Login 校验用户名密码并建立会话。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "无效的登录数据") {
		return
	}

	profile, err := a.members.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "用户名或密码错误")
			return
		}
		respondError(c, http.StatusInternalServerError, "登录失败")
		return
	}

	if !saveProfileSession(c, profile.ID) {
		return
	}
	c.JSON(http.StatusOK, profileView(profile))
}

// Logout 清除会话。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "会话保存失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AuthRequired 要求请求携带有效的成员会话。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentProfileID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			return
		}
		c.Next()
	}
}

func saveProfileSession(c *gin.Context, profileID string) bool {
	session := sessions.Default(c)
	session.Set(sessionProfileKey, profileID)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "会话保存失败")
		return false
	}
	return true
}

// currentProfileID 返回当前会话对应的成员 ID，未登录时为空串。
func currentProfileID(c *gin.Context) string {
	session := sessions.Default(c)
	if id, ok := session.Get(sessionProfileKey).(string); ok {
		return id
	}
	return ""
}
