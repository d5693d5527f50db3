package controller

import (
	"bookkeeper/web/entity"
	"bookkeeper/web/service"
	"bookkeeper/web/session"

	"github.com/gin-gonic/gin"
)

type RoleController struct {
	BaseController

	roleService service.RoleService
}

func NewRoleController(g *gin.RouterGroup) *RoleController {
	a := &RoleController{}
	a.initRouter(g)
	return a
}

func (a *RoleController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/role")
	g.Use(a.checkLogin, a.checkAdmin)

	g.POST("", a.create)
	g.GET("", a.findAll)
	g.GET("/:id", a.findOne)
	g.PATCH("/:id", a.update)
	g.DELETE("/:id", a.remove)
}

func (a *RoleController) create(c *gin.Context) {
	var form entity.RoleForm
	if err := c.ShouldBind(&form); err != nil {
		bindFail(c)
		return
	}
	if msgs := form.Validate(); len(msgs) > 0 {
		validationFail(c, msgs)
		return
	}
	jsonResult(c, a.roleService.Create(&form, session.GetLoginUserId(c)))
}

func (a *RoleController) findAll(c *gin.Context) {
	pageNo, ok := getPageQuery(c, "pageNo", 1)
	if !ok {
		return
	}
	pageSize, ok := getPageQuery(c, "pageSize", 20)
	if !ok {
		return
	}
	jsonResult(c, a.roleService.FindAll(pageNo, pageSize, session.GetLoginUserId(c)))
}

func (a *RoleController) findOne(c *gin.Context) {
	id, ok := getIntParam(c, "id")
	if !ok {
		return
	}
	jsonResult(c, a.roleService.FindOne(id, session.GetLoginUserId(c)))
}

func (a *RoleController) update(c *gin.Context) {
	id, ok := getIntParam(c, "id")
	if !ok {
		return
	}
	var form entity.RoleForm
	if err := c.ShouldBind(&form); err != nil {
		bindFail(c)
		return
	}
	if msgs := form.Validate(); len(msgs) > 0 {
		validationFail(c, msgs)
		return
	}
	jsonResult(c, a.roleService.Update(id, &form, session.GetLoginUserId(c)))
}

func (a *RoleController) remove(c *gin.Context) {
	id, ok := getIntParam(c, "id")
	if !ok {
		return
	}
	jsonResult(c, a.roleService.Remove(id, session.GetLoginUserId(c)))
}
