package service

import (
	"testing"
	"time"

	"bookkeeper/database"
	"bookkeeper/database/model"
	"bookkeeper/web/entity"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func createTestBillType(t *testing.T, name string, uid int) *model.BillType {
	billType := &model.BillType{Name: name, PayType: model.PayTypePaid, UserId: uid}
	err := database.GetDB().Create(billType).Error
	assert.NoError(t, err)
	return billType
}

func TestBillLifecycle(t *testing.T) {
	setupTest(t)

	alice := createTestUser(t, "alice", false)
	bob := createTestUser(t, "bob", false)
	aliceType := createTestBillType(t, "餐饮", alice.Uid)
	bobType := createTestBillType(t, "交通", bob.Uid)
	service := BillService{}

	date := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)

	// Creating against a missing category fails.
	result := service.Create(&entity.CreateBillForm{
		PayType: payTypePtr(model.PayTypePaid),
		Amount:  intPtr(1200),
		Date:    timePtr(date),
		TypeId:  99999,
	}, alice.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "当前账单分类不存在", result.Message)

	// Create
	result = service.Create(&entity.CreateBillForm{
		PayType: payTypePtr(model.PayTypePaid),
		Amount:  intPtr(1200),
		Date:    timePtr(date),
		TypeId:  aliceType.Id,
	}, alice.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	assert.Equal(t, "账单创建成功", result.Message)

	bill := &model.Bill{}
	err := database.GetDB().Where("user_id = ?", alice.Uid).First(bill).Error
	assert.NoError(t, err)
	assert.Equal(t, 1200, bill.Amount)

	// Another account cannot modify the bill, even through its own category.
	result = service.Update(&entity.UpdateBillForm{
		CreateBillForm: entity.CreateBillForm{
			PayType: payTypePtr(model.PayTypeReceived),
			Amount:  intPtr(1),
			Date:    timePtr(date),
			TypeId:  bobType.Id,
		},
		Id: bill.Id,
	}, bob.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "暂无修改权限", result.Message)

	unchanged := &model.Bill{}
	err = database.GetDB().Where("id = ?", bill.Id).First(unchanged).Error
	assert.NoError(t, err)
	assert.Equal(t, 1200, unchanged.Amount)

	// Update by the owner.
	result = service.Update(&entity.UpdateBillForm{
		CreateBillForm: entity.CreateBillForm{
			PayType: payTypePtr(model.PayTypePaid),
			Amount:  intPtr(1500),
			Date:    timePtr(date),
			TypeId:  aliceType.Id,
		},
		Id: bill.Id,
	}, alice.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	assert.Equal(t, "账单修改成功", result.Message)

	// Delete by another account does not find the bill.
	result = service.Delete(bill.Id, bob.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "当前账单不存在", result.Message)

	// Delete by the owner.
	result = service.Delete(bill.Id, alice.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	assert.Equal(t, "账单删除成功", result.Message)

	// The deleted bill is no longer listed.
	result = service.List(1, 20, date, alice.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	page, ok := result.Data.(entity.PageResult)
	assert.True(t, ok)
	assert.Equal(t, int64(0), page.PageInfo.Total)

	// Deleting it again.
	result = service.Delete(bill.Id, alice.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "当前账单不存在", result.Message)

	// Updating it again.
	result = service.Update(&entity.UpdateBillForm{
		CreateBillForm: entity.CreateBillForm{
			PayType: payTypePtr(model.PayTypePaid),
			Amount:  intPtr(1),
			Date:    timePtr(date),
			TypeId:  aliceType.Id,
		},
		Id: bill.Id,
	}, alice.Uid)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "当前账单不存在或已被删除", result.Message)
}

func TestBillListByDayWithPaging(t *testing.T) {
	setupTest(t)

	alice := createTestUser(t, "alice", false)
	bob := createTestUser(t, "bob", false)
	aliceType := createTestBillType(t, "餐饮", alice.Uid)
	service := BillService{}

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	db := database.GetDB()

	for i := 0; i < 3; i++ {
		err := db.Create(&model.Bill{
			PayType: model.PayTypePaid,
			Amount:  100 * (i + 1),
			Date:    day.Add(time.Duration(i) * time.Hour),
			UserId:  alice.Uid,
			TypeId:  aliceType.Id,
		}).Error
		assert.NoError(t, err)
	}
	// A bill on the next day and a bill of another account stay out of scope.
	err := db.Create(&model.Bill{PayType: model.PayTypePaid, Amount: 999, Date: day.Add(25 * time.Hour), UserId: alice.Uid, TypeId: aliceType.Id}).Error
	assert.NoError(t, err)
	err = db.Create(&model.Bill{PayType: model.PayTypePaid, Amount: 999, Date: day, UserId: bob.Uid, TypeId: aliceType.Id}).Error
	assert.NoError(t, err)

	result := service.List(1, 2, day, alice.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	assert.Equal(t, "账单查询成功", result.Message)
	page, ok := result.Data.(entity.PageResult)
	assert.True(t, ok)
	assert.Equal(t, int64(3), page.PageInfo.Total)
	list, ok := page.List.([]model.Bill)
	assert.True(t, ok)
	assert.Len(t, list, 2)

	result = service.List(2, 2, day, alice.Uid)
	assert.Equal(t, entity.CodeSuccess, result.Code)
	page, ok = result.Data.(entity.PageResult)
	assert.True(t, ok)
	list, ok = page.List.([]model.Bill)
	assert.True(t, ok)
	assert.Len(t, list, 1)
}

func TestBillOperationsRequireExistingUser(t *testing.T) {
	setupTest(t)

	service := BillService{}

	result := service.Create(&entity.CreateBillForm{
		PayType: payTypePtr(model.PayTypePaid),
		Amount:  intPtr(100),
		Date:    timePtr(time.Now()),
		TypeId:  1,
	}, 99999)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "当前用户不存在", result.Message)

	result = service.List(1, 20, time.Now(), 99999)
	assert.Equal(t, entity.CodeException, result.Code)
	assert.Equal(t, "当前用户不存在", result.Message)
}
