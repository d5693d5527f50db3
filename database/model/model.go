// Package model defines the persistent entities of the bookkeeper backend.
// Rows are soft-deleted by stamping delete_at; normal queries exclude stamped
// rows, and bill types can be recovered by clearing the stamp.
package model

import "time"

// PayType distinguishes expense and income records.
type PayType int

const (
	PayTypePaid     PayType = 0 // 支出
	PayTypeReceived PayType = 1 // 收入
)

func (p PayType) Valid() bool {
	return p == PayTypePaid || p == PayTypeReceived
}

// User is an account. IsAdmin uses the char sentinel '1' for administrators.
// The password digest is excluded from JSON output.
type User struct {
	Uid       int        `json:"uid" gorm:"primaryKey;autoIncrement"`
	Username  string     `json:"username" gorm:"size:50"`
	Password  string     `json:"-" gorm:"size:100"`
	NickName  string     `json:"nickName" gorm:"column:nick_name;size:100"`
	AvatarUrl string     `json:"avatarUrl" gorm:"column:avatar_url;size:100"`
	IsAdmin   string     `json:"isAdmin" gorm:"column:is_admin;type:char(1);default:'0'"`
	Openid    string     `json:"openid" gorm:"default:''"`
	Roles     []Role     `json:"-" gorm:"many2many:user_roles"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"column:updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"column:delete_at"`
}

func (User) TableName() string {
	return "sys_users"
}

// Bill is a single expense or income record, amount in cents.
type Bill struct {
	Id        int        `json:"id" gorm:"primaryKey;autoIncrement"`
	PayType   PayType    `json:"payType" gorm:"column:pay_type;default:0"`
	Amount    int        `json:"amount" gorm:"default:0"`
	Date      time.Time  `json:"date"`
	UserId    int        `json:"userId" gorm:"column:user_id;index"`
	TypeId    int        `json:"typeId" gorm:"column:type_id;index"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"column:updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"column:delete_at"`
}

func (Bill) TableName() string {
	return "bills"
}

// BillType groups bills, owned by the account that created it.
type BillType struct {
	Id        int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"size:50"`
	PayType   PayType    `json:"payType" gorm:"column:pay_type;default:0"`
	UserId    int        `json:"userId" gorm:"column:user_id;index"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"column:updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"column:delete_at"`
}

func (BillType) TableName() string {
	return "bill_types"
}

// Permission is an admin-managed permission marker.
type Permission struct {
	Id          int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"size:50;uniqueIndex"`
	Description string     `json:"description" gorm:"size:100"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"column:updated_at"`
	DeletedAt   *time.Time `json:"-" gorm:"column:delete_at"`
}

func (Permission) TableName() string {
	return "sys_permissions"
}

// Role bundles permissions, linked through the role_permissions join table.
type Role struct {
	Id          int          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string       `json:"name" gorm:"size:50"`
	Description string       `json:"description" gorm:"size:100"`
	Permissions []Permission `json:"permissions" gorm:"many2many:role_permissions"`
	CreatedAt   time.Time    `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" gorm:"column:updated_at"`
	DeletedAt   *time.Time   `json:"-" gorm:"column:delete_at"`
}

func (Role) TableName() string {
	return "sys_roles"
}
