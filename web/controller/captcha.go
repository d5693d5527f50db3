package controller

import (
	"bookkeeper/web/service"

	"github.com/gin-gonic/gin"
)

type CaptchaController struct {
	BaseController

	captchaService service.CaptchaService
}

func NewCaptchaController(g *gin.RouterGroup) *CaptchaController {
	a := &CaptchaController{}
	a.initRouter(g)
	return a
}

func (a *CaptchaController) initRouter(g *gin.RouterGroup) {
	g.GET("/captcha", a.captcha)
}

func (a *CaptchaController) captcha(c *gin.Context) {
	jsonResult(c, a.captchaService.Generate())
}
