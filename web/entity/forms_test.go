package entity

import (
	"testing"

	"bookkeeper/database/model"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFormValidate(t *testing.T) {
	form := &RegisterForm{}
	assert.Equal(t, []string{
		"用户名不能为空",
		"密码不能为空",
		"验证码不能为空",
		"验证码唯一标识不能为空",
	}, form.Validate())

	form = &RegisterForm{Username: "alice", Password: "pw", Code: "42", Uuid: "id"}
	assert.Empty(t, form.Validate())
}

func TestLoginFormValidate(t *testing.T) {
	form := &LoginForm{Username: "   ", Password: "pw"}
	assert.Equal(t, []string{"用户名 必须是非空字符串"}, form.Validate())
}

func TestCreateBillFormValidate(t *testing.T) {
	form := &CreateBillForm{}
	assert.Contains(t, form.Validate(), "账单类型不能为空")
	assert.Contains(t, form.Validate(), "账单金额不能为空")
	assert.Contains(t, form.Validate(), "账单产生时间不能为空")
	assert.Contains(t, form.Validate(), "账单分类不能为空")

	bad := model.PayType(7)
	form = &CreateBillForm{PayType: &bad}
	assert.Contains(t, form.Validate(), "请输入有效的账单类型：0支出，1收入")
}

func TestCreateBillTypeFormValidate(t *testing.T) {
	payType := model.PayTypePaid

	form := &CreateBillTypeForm{Name: "一", PayType: &payType}
	assert.Equal(t, []string{"账单分类名称限制在2～10个字符之间"}, form.Validate())

	form = &CreateBillTypeForm{Name: "一二三四五六七八九十一", PayType: &payType}
	assert.Equal(t, []string{"账单分类名称限制在2～10个字符之间"}, form.Validate())

	// Limits count characters, not bytes.
	form = &CreateBillTypeForm{Name: "餐饮", PayType: &payType}
	assert.Empty(t, form.Validate())
}
