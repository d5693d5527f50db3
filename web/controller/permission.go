package controller

import (
	"bookkeeper/web/entity"
	"bookkeeper/web/service"
	"bookkeeper/web/session"

	"github.com/gin-gonic/gin"
)

type PermissionController struct {
	BaseController

	permissionService service.PermissionService
}

func NewPermissionController(g *gin.RouterGroup) *PermissionController {
	a := &PermissionController{}
	a.initRouter(g)
	return a
}

func (a *PermissionController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/permission")
	g.Use(a.checkLogin, a.checkAdmin)

	g.POST("", a.create)
	g.GET("", a.findAll)
	g.GET("/:id", a.findOne)
	g.PATCH("/:id", a.update)
	g.DELETE("/:id", a.remove)
}

func (a *PermissionController) create(c *gin.Context) {
	var form entity.PermissionForm
	if err := c.ShouldBind(&form); err != nil {
		bindFail(c)
		return
	}
	if msgs := form.Validate(); len(msgs) > 0 {
		validationFail(c, msgs)
		return
	}
	jsonResult(c, a.permissionService.Create(&form, session.GetLoginUserId(c)))
}

func (a *PermissionController) findAll(c *gin.Context) {
	pageNo, ok := getPageQuery(c, "pageNo", 1)
	if !ok {
		return
	}
	pageSize, ok := getPageQuery(c, "pageSize", 20)
	if !ok {
		return
	}
	jsonResult(c, a.permissionService.FindAll(pageNo, pageSize, session.GetLoginUserId(c)))
}

func (a *PermissionController) findOne(c *gin.Context) {
	id, ok := getIntParam(c, "id")
	if !ok {
		return
	}
	jsonResult(c, a.permissionService.FindOne(id, session.GetLoginUserId(c)))
}

func (a *PermissionController) update(c *gin.Context) {
	id, ok := getIntParam(c, "id")
	if !ok {
		return
	}
	var form entity.PermissionForm
	if err := c.ShouldBind(&form); err != nil {
		bindFail(c)
		return
	}
	if msgs := form.Validate(); len(msgs) > 0 {
		validationFail(c, msgs)
		return
	}
	jsonResult(c, a.permissionService.Update(id, &form, session.GetLoginUserId(c)))
}

func (a *PermissionController) remove(c *gin.Context) {
	id, ok := getIntParam(c, "id")
	if !ok {
		return
	}
	jsonResult(c, a.permissionService.Remove(id, session.GetLoginUserId(c)))
}
