package controller

import (
	"net/http"

	"bookkeeper/web/entity"
	"bookkeeper/web/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	BaseController

	userService service.UserService
}

func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/user")

	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.GET("/wechat/login", a.wechatLogin)
}

func (a *UserController) register(c *gin.Context) {
	var form entity.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		bindFail(c)
		return
	}
	if msgs := form.Validate(); len(msgs) > 0 {
		validationFail(c, msgs)
		return
	}
	jsonResult(c, a.userService.Register(&form))
}

func (a *UserController) login(c *gin.Context) {
	var form entity.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		bindFail(c)
		return
	}
	if msgs := form.Validate(); len(msgs) > 0 {
		validationFail(c, msgs)
		return
	}
	jsonResult(c, a.userService.Login(&form))
}

func (a *UserController) wechatLogin(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		jsonResult(c, entity.Fail(http.StatusBadRequest, "code参数错误"))
		return
	}
	jsonResult(c, a.userService.LoginWechat(code))
}
