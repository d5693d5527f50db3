package controller

import (
	"net/http"
	"time"

	"bookkeeper/web/entity"
	"bookkeeper/web/service"
	"bookkeeper/web/session"

	"github.com/gin-gonic/gin"
)

type BillController struct {
	BaseController

	billService service.BillService
}

func NewBillController(g *gin.RouterGroup) *BillController {
	a := &BillController{}
	a.initRouter(g)
	return a
}

func (a *BillController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/bill")
	g.Use(a.checkLogin)

	g.GET("/list", a.list)
	g.POST("/create", a.create)
	g.POST("/update", a.update)
	g.DELETE("/delete/:id", a.delete)
}

func (a *BillController) list(c *gin.Context) {
	pageNo, ok := getPageQuery(c, "pageNo", 1)
	if !ok {
		return
	}
	pageSize, ok := getPageQuery(c, "pageSize", 20)
	if !ok {
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			jsonResult(c, entity.Fail(http.StatusBadRequest, "【date】 应当传日期，格式为 yyyy-MM-dd"))
			return
		}
		date = parsed
	}

	jsonResult(c, a.billService.List(pageNo, pageSize, date, session.GetLoginUserId(c)))
}

func (a *BillController) create(c *gin.Context) {
	var form entity.CreateBillForm
	if err := c.ShouldBind(&form); err != nil {
		bindFail(c)
		return
	}
	if msgs := form.Validate(); len(msgs) > 0 {
		validationFail(c, msgs)
		return
	}
	jsonResult(c, a.billService.Create(&form, session.GetLoginUserId(c)))
}

func (a *BillController) update(c *gin.Context) {
	var form entity.UpdateBillForm
	if err := c.ShouldBind(&form); err != nil {
		bindFail(c)
		return
	}
	if msgs := form.Validate(); len(msgs) > 0 {
		validationFail(c, msgs)
		return
	}
	jsonResult(c, a.billService.Update(&form, session.GetLoginUserId(c)))
}

func (a *BillController) delete(c *gin.Context) {
	id, ok := getIntParam(c, "id")
	if !ok {
		return
	}
	jsonResult(c, a.billService.Delete(id, session.GetLoginUserId(c)))
}
