package service

import (
	"path"
	"testing"

	"bookkeeper/cache"
	"bookkeeper/database"
	"bookkeeper/database/model"
	"bookkeeper/util/crypto"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

// setupTest brings up a throwaway sqlite database and an in-process redis, so
// the services under test run against the real storage code paths.
func setupTest(t *testing.T) {
	t.Setenv("BK_JWT_SECRET", "test-secret")
	t.Setenv("BK_JWT_EXPIRES_IN", "1h")

	dbPath := path.Join(t.TempDir(), "test.db")
	err := database.InitDB(dbPath)
	assert.NoError(t, err)
	t.Cleanup(func() {
		database.CloseDB()
	})

	srv := miniredis.RunT(t)
	err = cache.Init(srv.Addr(), "", 0)
	assert.NoError(t, err)
	t.Cleanup(func() {
		cache.Close()
	})
}

func createTestUser(t *testing.T, username string, isAdmin bool) *model.User {
	hashed, err := crypto.HashPassword("secret123")
	assert.NoError(t, err)

	user := &model.User{
		Username: username,
		Password: hashed,
		NickName: username,
	}
	if isAdmin {
		user.IsAdmin = "1"
	}
	err = database.GetDB().Create(user).Error
	assert.NoError(t, err)
	return user
}
