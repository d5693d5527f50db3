package controller

import (
	"bookkeeper/web/entity"
	"bookkeeper/web/service"
	"bookkeeper/web/session"

	"github.com/gin-gonic/gin"
)

type BillTypeController struct {
	BaseController

	billTypeService service.BillTypeService
}

func NewBillTypeController(g *gin.RouterGroup) *BillTypeController {
	a := &BillTypeController{}
	a.initRouter(g)
	return a
}

func (a *BillTypeController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/bill-type")
	g.Use(a.checkLogin)

	g.GET("/list", a.list)
	g.POST("/create", a.create)
	g.POST("/update", a.update)
	g.DELETE("/delete/:id", a.delete)
	g.POST("/recover/:id", a.recover)
}

func (a *BillTypeController) list(c *gin.Context) {
	pageNo, ok := getPageQuery(c, "pageNo", 1)
	if !ok {
		return
	}
	pageSize, ok := getPageQuery(c, "pageSize", 20)
	if !ok {
		return
	}
	jsonResult(c, a.billTypeService.List(pageNo, pageSize, session.GetLoginUserId(c)))
}

func (a *BillTypeController) create(c *gin.Context) {
	var form entity.CreateBillTypeForm
	if err := c.ShouldBind(&form); err != nil {
		bindFail(c)
		return
	}
	if msgs := form.Validate(); len(msgs) > 0 {
		validationFail(c, msgs)
		return
	}
	jsonResult(c, a.billTypeService.Create(&form, session.GetLoginUserId(c)))
}

func (a *BillTypeController) update(c *gin.Context) {
	var form entity.UpdateBillTypeForm
	if err := c.ShouldBind(&form); err != nil {
		bindFail(c)
		return
	}
	if msgs := form.Validate(); len(msgs) > 0 {
		validationFail(c, msgs)
		return
	}
	jsonResult(c, a.billTypeService.Update(&form, session.GetLoginUserId(c)))
}

func (a *BillTypeController) delete(c *gin.Context) {
	id, ok := getIntParam(c, "id")
	if !ok {
		return
	}
	jsonResult(c, a.billTypeService.Delete(id, session.GetLoginUserId(c)))
}

func (a *BillTypeController) recover(c *gin.Context) {
	id, ok := getIntParam(c, "id")
	if !ok {
		return
	}
	jsonResult(c, a.billTypeService.Recover(id, session.GetLoginUserId(c)))
}
