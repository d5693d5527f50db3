package service

import (
	"time"

	"bookkeeper/database"
	"bookkeeper/database/model"
	"bookkeeper/logger"
	"bookkeeper/web/entity"
)

// RoleService manages roles and their permission bindings. Like permissions,
// the controller is admin-gated and rows carry no owner.
type RoleService struct {
	userService UserService
}

func (s *RoleService) findAllPermissions(names []string) []model.Permission {
	var perms []model.Permission
	err := database.GetDB().
		Where("name IN ?", names).
		Find(&perms).
		Error
	if err != nil {
		logger.Error("find permissions err:", err)
		return nil
	}
	return perms
}

func (s *RoleService) Create(form *entity.RoleForm, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	var count int64
	err := db.Model(model.Role{}).
		Where("name = ?", form.Name).
		Count(&count).
		Error
	if err != nil {
		logger.Error("role lookup err:", err)
		return entity.Fail(entity.CodeError, "创建角色失败")
	}
	if count > 0 {
		return entity.ExceptionFail("当前角色已存在")
	}

	role := &model.Role{
		Name:        form.Name,
		Description: form.Description,
	}
	if len(form.Permissions) > 0 {
		role.Permissions = s.findAllPermissions(form.Permissions)
	}

	if err := db.Create(role).Error; err != nil {
		logger.Error("create role err:", err)
		return entity.Fail(entity.CodeError, "创建角色失败")
	}
	return entity.Ok(nil, "创建角色成功")
}

func (s *RoleService) FindAll(pageNo, pageSize int, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()

	var total int64
	err := db.Model(model.Role{}).
		Where("delete_at IS NULL").
		Count(&total).
		Error
	if err != nil {
		logger.Error("list roles err:", err)
		return entity.Fail(entity.CodeError, "查询角色失败")
	}

	var list []model.Role
	err = db.Model(model.Role{}).
		Select("id", "name", "description", "created_at", "updated_at").
		Where("delete_at IS NULL").
		Offset((pageNo - 1) * pageSize).
		Limit(pageSize).
		Find(&list).
		Error
	if err != nil {
		logger.Error("list roles err:", err)
		return entity.Fail(entity.CodeError, "查询角色失败")
	}

	return entity.Ok(entity.PageResult{
		List:     list,
		PageInfo: entity.PageInfo{PageNo: pageNo, PageSize: pageSize, Total: total},
	}, "查询角色成功")
}

func (s *RoleService) FindOne(id int, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	role := &model.Role{}
	err := db.Model(model.Role{}).
		Preload("Permissions").
		Where("id = ? AND delete_at IS NULL", id).
		First(role).
		Error
	if database.IsNotFound(err) {
		return entity.ExceptionFail("当前角色不存在")
	}
	if err != nil {
		logger.Error("find role err:", err)
		return entity.Fail(entity.CodeError, "查询角色失败")
	}
	return entity.Ok(role, "查询角色成功")
}

func (s *RoleService) Update(id int, form *entity.RoleForm, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	role := &model.Role{}
	err := db.Model(model.Role{}).
		Where("id = ?", id).
		First(role).
		Error
	if err != nil {
		return entity.ExceptionFail("当前角色不存在")
	}

	role.Name = form.Name
	role.Description = form.Description

	if len(form.Permissions) > 0 {
		perms := s.findAllPermissions(form.Permissions)
		if err := db.Model(role).Association("Permissions").Replace(perms); err != nil {
			logger.Error("replace role permissions err:", err)
			return entity.Fail(entity.CodeError, "更新角色失败")
		}
	}

	if err := db.Save(role).Error; err != nil {
		logger.Error("update role err:", err)
		return entity.Fail(entity.CodeError, "更新角色失败")
	}
	return entity.Ok(nil, "更新角色成功")
}

func (s *RoleService) Remove(id int, uid int) *entity.ResultData {
	if res := s.userService.ValidateUser(uid); res != nil {
		return res
	}

	db := database.GetDB()
	role := &model.Role{}
	err := db.Model(model.Role{}).
		Where("id = ?", id).
		First(role).
		Error
	if err != nil {
		return entity.ExceptionFail("当前角色不存在")
	}

	now := time.Now()
	role.DeletedAt = &now
	if err := db.Save(role).Error; err != nil {
		logger.Error("remove role err:", err)
		return entity.Fail(entity.CodeError, "删除角色失败")
	}
	return entity.Ok(nil, "删除角色成功")
}
