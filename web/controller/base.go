// Package controller provides the HTTP request handlers of the bookkeeper
// backend: account registration and login, captcha issuing, bill and bill
// type management, and the admin-only permission/role endpoints.
package controller

import (
	"fmt"
	"strings"

	"bookkeeper/web/service"
	"bookkeeper/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the guard middleware shared by all controllers.
type BaseController struct {
	userService service.UserService
}

// checkLogin verifies the bearer token and attaches the resolved user to the
// request context.
func (a *BaseController) checkLogin(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		abortWithAuthError(c, "当前用户未登录！")
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	user := a.userService.VerifyToken(token)
	if user == nil {
		abortWithAuthError(c, "当前用户未登录！")
		return
	}

	session.SetLoginUser(c, user)
	c.Next()
}

// checkAdmin requires the attached user to carry the admin sentinel. It runs
// after checkLogin.
func (a *BaseController) checkAdmin(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user == nil {
		abortWithAuthError(c, "当前用户暂无管理员权限")
		return
	}
	if user.IsAdmin != "1" {
		abortWithAuthError(c, fmt.Sprintf("当前用户 %d 暂无管理员权限", user.Uid))
		return
	}
	c.Next()
}
