// Package session attaches the authenticated user to the request context.
// The value lives in the gin context only, scoped to a single request.
package session

import (
	"bookkeeper/database/model"

	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

func SetLoginUser(c *gin.Context, user *model.User) {
	c.Set(loginUser, user)
}

func GetLoginUser(c *gin.Context) *model.User {
	if obj, exists := c.Get(loginUser); exists {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}

func GetLoginUserId(c *gin.Context) int {
	if user := GetLoginUser(c); user != nil {
		return user.Uid
	}
	return 0
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}
