package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"bookkeeper/config"
	"bookkeeper/database/model"
	"bookkeeper/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const defaultAdminUsername = "admin"

func initModels() error {
	models := []any{
		&model.User{},
		&model.Bill{},
		&model.BillType{},
		&model.Permission{},
		&model.Role{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initAdminUser seeds an administrator account when the users table is empty,
// so a fresh install can log in and manage roles/permissions.
func initAdminUser() error {
	empty, err := isTableEmpty("sys_users")
	if err != nil {
		log.Printf("Error checking if sys_users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}
	hashed, err := crypto.HashPassword(config.GetInitPassword())
	if err != nil {
		return err
	}
	admin := &model.User{
		Username: defaultAdminUsername,
		Password: hashed,
		NickName: defaultAdminUsername,
		IsAdmin:  "1",
	}
	return db.Create(admin).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	return initAdminUser()
}

func CloseDB() error {
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
