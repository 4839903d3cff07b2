package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/yamadaken1/jikoboard/internal/auth"
	"github.com/yamadaken1/jikoboard/internal/models"
)

func (e *Env) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		badRequest(c, "ユーザー名とパスワードを入力してください")
		return
	}
	user, err := e.Auth.Register(username, password)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "そのユーザー名は既に使われています"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "登録に失敗しました"})
		return
	}
	setSessionUser(c, user.Username)
	c.Redirect(http.StatusSeeOther, "/")
}

func (e *Env) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		badRequest(c, "ユーザー名とパスワードを入力してください")
		return
	}
	user, err := e.Auth.Login(username, password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "ユーザー名またはパスワードが違います"})
		return
	}
	setSessionUser(c, user.Username)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session. Logging out twice is harmless.
func (e *Env) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

// Me reports the identity bound to the current session, or the
// anonymous marker when there is none.
func (e *Env) Me(c *gin.Context) {
	username := currentUsername(c)
	if username == "" {
		c.JSON(http.StatusOK, gin.H{"username": models.AnonymousName, "logged_in": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": username, "logged_in": true})
}

func setSessionUser(c *gin.Context, username string) {
	sess := sessions.Default(c)
	sess.Set(sessionKeyUsername, username)
	_ = sess.Save()
}
