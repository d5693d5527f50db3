package service

import (
	"time"

	"bookkeeper/database"
	"bookkeeper/database/model"
	"bookkeeper/logger"
	"bookkeeper/web/entity"
)

// BillService manages the bill records of a single account. Updates are plain
// read-then-write without row locking, so concurrent updates to the same bill
// are last-write-wins.
type BillService struct {
	userService UserService
}

func (s *BillService) Create(form *entity.CreateBillForm, uid int) *entity.ResultData {
	user, err := s.userService.FindByUserId(uid)
	if err != nil {
		return entity.ExceptionFail("当前用户不存在")
	}

	db := database.GetDB()
	billType := &model.BillType{}
	err = db.Model(model.BillType{}).
		Where("id = ?", form.TypeId).
		First(billType).
		Error
	if err != nil {
		return entity.ExceptionFail("当前账单分类不存在")
	}

	bill := &model.Bill{
		PayType: *form.PayType,
		Amount:  *form.Amount,
		Date:    *form.Date,
		UserId:  user.Uid,
		TypeId:  billType.Id,
	}
	if err := db.Create(bill).Error; err != nil {
		logger.Error("create bill err:", err)
		return entity.Fail(entity.CodeError, "账单创建失败")
	}
	return entity.Ok(nil, "账单创建成功")
}

func (s *BillService) Update(form *entity.UpdateBillForm, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()

	// The target bill type must belong to the caller.
	billType := &model.BillType{}
	err := db.Model(model.BillType{}).
		Where("id = ? AND user_id = ?", form.TypeId, uid).
		First(billType).
		Error
	if err != nil {
		return entity.ExceptionFail("当前账单分类不存在")
	}

	bill := &model.Bill{}
	err = db.Model(model.Bill{}).
		Where("id = ?", form.Id).
		First(bill).
		Error
	if err != nil || bill.DeletedAt != nil {
		return entity.ExceptionFail("当前账单不存在或已被删除")
	}

	if bill.UserId != uid {
		return entity.ExceptionFail("暂无修改权限")
	}

	bill.PayType = *form.PayType
	bill.Amount = *form.Amount
	bill.Date = *form.Date
	bill.TypeId = billType.Id
	if err := db.Save(bill).Error; err != nil {
		logger.Error("update bill err:", err)
		return entity.Fail(entity.CodeError, "账单修改失败")
	}
	return entity.Ok(nil, "账单修改成功")
}

func (s *BillService) Delete(billId int, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	bill := &model.Bill{}
	err := db.Model(model.Bill{}).
		Where("id = ? AND user_id = ? AND delete_at IS NULL", billId, uid).
		First(bill).
		Error
	if err != nil {
		return entity.ExceptionFail("当前账单不存在")
	}

	now := time.Now()
	bill.DeletedAt = &now
	if err := db.Save(bill).Error; err != nil {
		logger.Error("delete bill err:", err)
		return entity.Fail(entity.CodeError, "账单删除失败")
	}
	return entity.Ok(nil, "账单删除成功")
}

// List pages the caller's non-deleted bills of a single day.
func (s *BillService) List(pageNo, pageSize int, date time.Time, uid int) *entity.ResultData {
	if _, err := s.userService.FindByUserId(uid); err != nil {
		return entity.ExceptionFail("当前用户不存在")
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	db := database.GetDB()

	var total int64
	err := db.Model(model.Bill{}).
		Where("user_id = ? AND delete_at IS NULL", uid).
		Where("date BETWEEN ? AND ?", start, end).
		Count(&total).
		Error
	if err != nil {
		logger.Error("list bills err:", err)
		return entity.Fail(entity.CodeError, "账单查询失败")
	}

	var list []model.Bill
	err = db.Model(model.Bill{}).
		Where("user_id = ? AND delete_at IS NULL", uid).
		Where("date BETWEEN ? AND ?", start, end).
		Offset((pageNo - 1) * pageSize).
		Limit(pageSize).
		Find(&list).
		Error
	if err != nil {
		logger.Error("list bills err:", err)
		return entity.Fail(entity.CodeError, "账单查询失败")
	}

	return entity.Ok(entity.PageResult{
		List:     list,
		PageInfo: entity.PageInfo{PageNo: pageNo, PageSize: pageSize, Total: total},
	}, "账单查询成功")
}
