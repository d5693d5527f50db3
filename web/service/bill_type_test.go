package service

import (
	"testing"

	"bookkeeper/database"
	"bookkeeper/database/model"
	"bookkeeper/web/entity"

	"github.com/stretchr/testify/assert"
)

func payTypePtr(p model.PayType) *model.PayType {
	return &p
}

func TestBillTypeLifecycle(t *testing.T) {
	setupTest(t)

	owner := createTestUser(t, "alice", false)
	other := createTestUser(t, "mallory", false)
	admin := createTestUser(t, "root", true)
	service := BillTypeService{}

	// Create
	result := service.Create(&entity.CreateBillTypeForm{
		Name:    "餐饮",
		PayType: payTypePtr(model.PayTypePaid),
	}, owner.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	assert.Equal(t, "账单分类创建成功", result.Message)

	billType := &model.BillType{}
	err := database.GetDB().Where("name = ?", "餐饮").First(billType).Error
	assert.NoError(t, err)
	assert.Equal(t, owner.Uid, billType.UserId)

	// Duplicate names are rejected globally.
	result = service.Create(&entity.CreateBillTypeForm{
		Name:    "餐饮",
		PayType: payTypePtr(model.PayTypePaid),
	}, other.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "当前账单分类已存在", result.Message)

	// Update by a non-owner is refused and leaves the row untouched.
	result = service.Update(&entity.UpdateBillTypeForm{
		CreateBillTypeForm: entity.CreateBillTypeForm{
			Name:    "被篡改",
			PayType: payTypePtr(model.PayTypeReceived),
		},
		Id: billType.Id,
	}, other.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "暂无修改权限", result.Message)

	unchanged := &model.BillType{}
	err = database.GetDB().Where("id = ?", billType.Id).First(unchanged).Error
	assert.NoError(t, err)
	assert.Equal(t, "餐饮", unchanged.Name)

	// Update by the owner.
	result = service.Update(&entity.UpdateBillTypeForm{
		CreateBillTypeForm: entity.CreateBillTypeForm{
			Name:    "日常餐饮",
			PayType: payTypePtr(model.PayTypePaid),
		},
		Id: billType.Id,
	}, owner.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	assert.Equal(t, "账单分类修改成功", result.Message)

	// Delete by a non-owner is refused.
	result = service.Delete(billType.Id, other.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "暂无删除权限", result.Message)

	// Delete by the owner soft-deletes the row.
	result = service.Delete(billType.Id, owner.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	assert.Equal(t, "账单分类删除成功", result.Message)

	// The deleted category is gone from the listing.
	result = service.List(1, 20, owner.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	page, ok := result.Data.(entity.PageResult)
	assert.True(t, ok)
	assert.Equal(t, int64(0), page.PageInfo.Total)

	// Deleting it again reports it as missing.
	result = service.Delete(billType.Id, owner.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "当前账单分类不存在", result.Message)

	// Recovery requires an administrator.
	result = service.Recover(billType.Id, owner.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "当前用户暂无恢复权限", result.Message)

	result = service.Recover(billType.Id, admin.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	assert.Equal(t, "账单分类恢复成功", result.Message)

	result = service.List(1, 20, owner.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	page, ok = result.Data.(entity.PageResult)
	assert.True(t, ok)
	assert.Equal(t, int64(1), page.PageInfo.Total)

	// Recovering an already live category is a successful no-op.
	result = service.Recover(billType.Id, admin.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	assert.Equal(t, "账单分类恢复成功", result.Message)

	// Recovering a category that never existed.
	result = service.Recover(99999, admin.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "当前账单分类不存在", result.Message)
}

func TestBillTypeListOnlyOwn(t *testing.T) {
	setupTest(t)

	alice := createTestUser(t, "alice", false)
	bob := createTestUser(t, "bob", false)
	service := BillTypeService{}

	result := service.Create(&entity.CreateBillTypeForm{Name: "交通", PayType: payTypePtr(model.PayTypePaid)}, alice.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	result = service.Create(&entity.CreateBillTypeForm{Name: "工资", PayType: payTypePtr(model.PayTypeReceived)}, bob.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)

	result = service.List(1, 20, alice.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	assert.Equal(t, "列表数据获取成功", result.Message)
	page, ok := result.Data.(entity.PageResult)
	assert.True(t, ok)
	assert.Equal(t, int64(1), page.PageInfo.Total)

	list, ok := page.List.([]model.BillType)
	assert.True(t, ok)
	assert.Len(t, list, 1)
	assert.Equal(t, "交通", list[0].Name)
}
