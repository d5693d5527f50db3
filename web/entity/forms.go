package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"bookkeeper/database/model"
)

// Request forms validate themselves after binding; Validate returns the
// field-level messages, which the controller joins with commas.

type RegisterForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Code     string `json:"code" form:"code"`
	Uuid     string `json:"uuid" form:"uuid"`
}

func (f *RegisterForm) Validate() []string {
	var msgs []string
	if f.Username == "" {
		msgs = append(msgs, "用户名不能为空")
	}
	if f.Password == "" {
		msgs = append(msgs, "密码不能为空")
	}
	if f.Code == "" {
		msgs = append(msgs, "验证码不能为空")
	}
	if f.Uuid == "" {
		msgs = append(msgs, "验证码唯一标识不能为空")
	}
	return msgs
}

type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (f *LoginForm) Validate() []string {
	var msgs []string
	if strings.TrimSpace(f.Username) == "" {
		msgs = append(msgs, "用户名 必须是非空字符串")
	}
	if f.Password == "" {
		msgs = append(msgs, "密码不能为空")
	}
	return msgs
}

type CreateBillForm struct {
	PayType *model.PayType `json:"payType" form:"payType"`
	Amount  *int           `json:"amount" form:"amount"`
	Date    *time.Time     `json:"date" form:"date"`
	TypeId  int            `json:"typeId" form:"typeId"`
}

func (f *CreateBillForm) Validate() []string {
	var msgs []string
	switch {
	case f.PayType == nil:
		msgs = append(msgs, "账单类型不能为空")
	case !f.PayType.Valid():
		msgs = append(msgs, "请输入有效的账单类型：0支出，1收入")
	}
	if f.Amount == nil {
		msgs = append(msgs, "账单金额不能为空")
	}
	if f.Date == nil {
		msgs = append(msgs, "账单产生时间不能为空")
	}
	if f.TypeId == 0 {
		msgs = append(msgs, "账单分类不能为空")
	}
	return msgs
}

type UpdateBillForm struct {
	CreateBillForm
	Id int `json:"id" form:"id"`
}

func (f *UpdateBillForm) Validate() []string {
	msgs := f.CreateBillForm.Validate()
	if f.Id == 0 {
		msgs = append(msgs, "账单ID不能为空")
	}
	return msgs
}

type CreateBillTypeForm struct {
	Name    string         `json:"name" form:"name"`
	PayType *model.PayType `json:"payType" form:"payType"`
}

func (f *CreateBillTypeForm) Validate() []string {
	var msgs []string
	switch n := utf8.RuneCountInString(f.Name); {
	case n == 0:
		msgs = append(msgs, "账单分类名称不能为空")
	case n < 2 || n > 10:
		msgs = append(msgs, "账单分类名称限制在2～10个字符之间")
	}
	switch {
	case f.PayType == nil:
		msgs = append(msgs, "账单类型不能为空")
	case !f.PayType.Valid():
		msgs = append(msgs, "请输入有效的账单类型：0支出，1收入")
	}
	return msgs
}

type UpdateBillTypeForm struct {
	CreateBillTypeForm
	Id int `json:"id" form:"id"`
}

func (f *UpdateBillTypeForm) Validate() []string {
	msgs := f.CreateBillTypeForm.Validate()
	if f.Id == 0 {
		msgs = append(msgs, "分类ID不能为空")
	}
	return msgs
}

type PermissionForm struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func (f *PermissionForm) Validate() []string {
	var msgs []string
	if f.Name == "" {
		msgs = append(msgs, "权限名称不能为空")
	}
	if f.Description == "" {
		msgs = append(msgs, "权限描述不能为空")
	}
	return msgs
}

type RoleForm struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Permissions []string `json:"permissions" form:"permissions"`
}

func (f *RoleForm) Validate() []string {
	var msgs []string
	if f.Name == "" {
		msgs = append(msgs, "角色名称不能为空")
	}
	if f.Description == "" {
		msgs = append(msgs, "角色描述不能为空")
	}
	return msgs
}
