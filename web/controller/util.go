package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"bookkeeper/web/entity"

	"github.com/gin-gonic/gin"
)

// jsonResult writes the envelope. The transport status is always 200; the
// real status lives in the envelope's code field.
func jsonResult(c *gin.Context, result *entity.ResultData) {
	c.JSON(http.StatusOK, result)
}

// bindFail reports a malformed request body.
func bindFail(c *gin.Context) {
	jsonResult(c, entity.Fail(http.StatusBadRequest, "参数格式错误"))
}

// validationFail joins the field-level messages with commas.
func validationFail(c *gin.Context, msgs []string) {
	jsonResult(c, entity.Fail(http.StatusBadRequest, strings.Join(msgs, ",")))
}

// abortWithAuthError rejects the request from a guard.
func abortWithAuthError(c *gin.Context, msg string) {
	jsonResult(c, entity.Fail(http.StatusUnauthorized, msg))
	c.Abort()
}

// getIntParam parses a numeric path parameter.
func getIntParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		jsonResult(c, entity.Fail(http.StatusBadRequest, fmt.Sprintf("【%s】 应当传数字", name)))
		return 0, false
	}
	return v, true
}

// getPageQuery parses a numeric query parameter with a default.
func getPageQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		jsonResult(c, entity.Fail(http.StatusBadRequest, fmt.Sprintf("【%s】 应当传数字", name)))
		return 0, false
	}
	return v, true
}
