package service

import (
	"fmt"
	"time"

	"bookkeeper/database"
	"bookkeeper/database/model"
	"bookkeeper/logger"
	"bookkeeper/web/entity"
)

// PermissionService manages permission markers. The controller is admin-gated,
// so no per-row ownership applies here.
type PermissionService struct {
	userService UserService
}

func (s *PermissionService) Create(form *entity.PermissionForm, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	var count int64
	err := db.Model(model.Permission{}).
		Where("name = ?", form.Name).
		Count(&count).
		Error
	if err != nil {
		logger.Error("permission lookup err:", err)
		return entity.Fail(entity.CodeError, "创建权限失败")
	}
	if count > 0 {
		return entity.ExceptionFail("当前权限已存在")
	}

	perm := &model.Permission{
		Name:        form.Name,
		Description: form.Description,
	}
	if err := db.Create(perm).Error; err != nil {
		logger.Error("create permission err:", err)
		return entity.Fail(entity.CodeError, "创建权限失败")
	}
	return entity.Ok(nil, "创建权限成功")
}

func (s *PermissionService) FindAll(pageNo, pageSize int, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()

	var total int64
	err := db.Model(model.Permission{}).
		Where("delete_at IS NULL").
		Count(&total).
		Error
	if err != nil {
		logger.Error("list permissions err:", err)
		return entity.Fail(entity.CodeError, "查询权限失败")
	}

	var list []model.Permission
	err = db.Model(model.Permission{}).
		Select("id", "name", "description", "created_at", "updated_at").
		Where("delete_at IS NULL").
		Offset((pageNo - 1) * pageSize).
		Limit(pageSize).
		Find(&list).
		Error
	if err != nil {
		logger.Error("list permissions err:", err)
		return entity.Fail(entity.CodeError, "查询权限失败")
	}

	return entity.Ok(entity.PageResult{
		List:     list,
		PageInfo: entity.PageInfo{PageNo: pageNo, PageSize: pageSize, Total: total},
	}, "查询权限成功")
}

func (s *PermissionService) FindOne(id int, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	perm := &model.Permission{}
	err := db.Model(model.Permission{}).
		Where("id = ? AND delete_at IS NULL", id).
		First(perm).
		Error
	if database.IsNotFound(err) {
		return entity.ExceptionFail("指定权限不存在")
	}
	if err != nil {
		logger.Error("find permission err:", err)
		return entity.Fail(entity.CodeError, fmt.Sprintf("查询 %d 权限失败", id))
	}
	return entity.Ok(perm, fmt.Sprintf("查询 %d 权限成功", id))
}

func (s *PermissionService) Update(id int, form *entity.PermissionForm, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	perm := &model.Permission{}
	err := db.Model(model.Permission{}).
		Where("id = ?", id).
		First(perm).
		Error
	if err != nil {
		return entity.ExceptionFail("指定权限不存在")
	}

	perm.Name = form.Name
	perm.Description = form.Description
	if err := db.Save(perm).Error; err != nil {
		logger.Error("update permission err:", err)
		return entity.Fail(entity.CodeError, "更新权限失败")
	}
	return entity.Ok(nil, "更新权限成功")
}

func (s *PermissionService) Remove(id int, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	perm := &model.Permission{}
	err := db.Model(model.Permission{}).
		Where("id = ?", id).
		First(perm).
		Error
	if err != nil {
		return entity.ExceptionFail("指定权限不存在")
	}

	now := time.Now()
	perm.DeletedAt = &now
	if err := db.Save(perm).Error; err != nil {
		logger.Error("remove permission err:", err)
		return entity.Fail(entity.CodeError, "删除权限失败")
	}
	return entity.Ok(nil, "删除权限成功")
}
