package service

import (
	"time"

	"bookkeeper/database"
	"bookkeeper/database/model"
	"bookkeeper/logger"
	"bookkeeper/web/entity"
)

// BillTypeService manages bill categories. Deleted categories keep their rows
// and can be recovered by an administrator.
type BillTypeService struct {
	userService UserService
}

func (s *BillTypeService) Create(form *entity.CreateBillTypeForm, uid int) *entity.ResultData {
	user, err := s.userService.FindByUserId(uid)
	if err != nil {
		return entity.ExceptionFail("当前用户不存在")
	}

	db := database.GetDB()
	var count int64
	err = db.Model(model.BillType{}).
		Where("name = ?", form.Name).
		Count(&count).
		Error
	if err != nil {
		logger.Error("bill type lookup err:", err)
		return entity.Fail(entity.CodeError, "账单分类创建失败")
	}
	if count > 0 {
		return entity.ExceptionFail("当前账单分类已存在")
	}

	billType := &model.BillType{
		Name:    form.Name,
		PayType: *form.PayType,
		UserId:  user.Uid,
	}
	if err := db.Create(billType).Error; err != nil {
		logger.Error("create bill type err:", err)
		return entity.Fail(entity.CodeError, "账单分类创建失败")
	}
	return entity.Ok(nil, "账单分类创建成功")
}

func (s *BillTypeService) Update(form *entity.UpdateBillTypeForm, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	billType := &model.BillType{}
	err := db.Model(model.BillType{}).
		Where("id = ?", form.Id).
		First(billType).
		Error
	if err != nil || billType.DeletedAt != nil {
		return entity.ExceptionFail("当前账单分类不存在")
	}

	if billType.UserId != uid {
		return entity.ExceptionFail("暂无修改权限")
	}

	billType.Name = form.Name
	billType.PayType = *form.PayType
	if err := db.Save(billType).Error; err != nil {
		logger.Error("update bill type err:", err)
		return entity.Fail(entity.CodeError, "账单分类修改失败")
	}
	return entity.Ok(nil, "账单分类修改成功")
}

func (s *BillTypeService) Delete(id int, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	billType := &model.BillType{}
	err := db.Model(model.BillType{}).
		Where("id = ?", id).
		First(billType).
		Error
	if err != nil || billType.DeletedAt != nil {
		return entity.ExceptionFail("当前账单分类不存在")
	}

	if billType.UserId != uid {
		return entity.ExceptionFail("暂无删除权限")
	}

	now := time.Now()
	billType.DeletedAt = &now
	if err := db.Save(billType).Error; err != nil {
		logger.Error("delete bill type err:", err)
		return entity.Fail(entity.CodeError, "账单分类删除失败")
	}
	return entity.Ok(nil, "账单分类删除成功")
}

// Recover clears the deletion stamp. Only administrators may recover, and
// recovering a category that was never deleted is a successful no-op.
func (s *BillTypeService) Recover(id int, uid int) *entity.ResultData {
	user, err := s.userService.FindByUserId(uid)
	if err != nil {
		return entity.ExceptionFail("当前用户不存在")
	}
	if user.IsAdmin != "1" {
		return entity.ExceptionFail("当前用户暂无恢复权限")
	}

	db := database.GetDB()
	billType := &model.BillType{}
	err = db.Model(model.BillType{}).
		Where("id = ?", id).
		First(billType).
		Error
	if err != nil {
		return entity.ExceptionFail("当前账单分类不存在")
	}

	if billType.DeletedAt == nil {
		return entity.Ok(nil, "账单分类恢复成功")
	}

	billType.DeletedAt = nil
	if err := db.Save(billType).Error; err != nil {
		logger.Error("recover bill type err:", err)
		return entity.Fail(entity.CodeError, "账单分类恢复失败")
	}
	return entity.Ok(nil, "账单分类恢复成功")
}

// List pages the caller's non-deleted categories, returning id and name only.
func (s *BillTypeService) List(pageNo, pageSize int, uid int) *entity.ResultData {
	if _, err := s.userService.FindByUserId(uid); err != nil {
		return entity.ExceptionFail("当前用户不存在")
	}

	db := database.GetDB()

	var total int64
	err := db.Model(model.BillType{}).
		Where("user_id = ? AND delete_at IS NULL", uid).
		Count(&total).
		Error
	if err != nil {
		logger.Error("list bill types err:", err)
		return entity.Fail(entity.CodeError, "列表数据获取失败")
	}

	var list []model.BillType
	err = db.Model(model.BillType{}).
		Select("id", "name").
		Where("user_id = ? AND delete_at IS NULL", uid).
		Offset((pageNo - 1) * pageSize).
		Limit(pageSize).
		Find(&list).
		Error
	if err != nil {
		logger.Error("list bill types err:", err)
		return entity.Fail(entity.CodeError, "列表数据获取失败")
	}

	return entity.Ok(entity.PageResult{
		List:     list,
		PageInfo: entity.PageInfo{PageNo: pageNo, PageSize: pageSize, Total: total},
	}, "列表数据获取成功")
}
