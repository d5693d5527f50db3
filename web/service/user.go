package service

import (
	"fmt"
	"time"

	"bookkeeper/cache"
	"bookkeeper/config"
	"bookkeeper/database"
	"bookkeeper/database/model"
	"bookkeeper/logger"
	"bookkeeper/util/crypto"
	"bookkeeper/web/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	loginTokenKeyPrefix = "login_tokens:"
	defaultAvatarUrl    = "/images/def-avatar.png"
)

// TokenClaims embeds the registered claims plus the account id and the
// session marker the token was issued with.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID int    `json:"userId"`
	UUID   string `json:"uuid"`
}

// UserService handles accounts and their sessions. A session is a signed
// token bound to a marker in the cache; a new login overwrites the marker and
// thereby revokes every earlier token of the same account.
type UserService struct {
	captchaService CaptchaService
	wechatService  WechatService
}

// NewUserServiceWithWechat builds a UserService talking to a custom WeChat
// endpoint, used by tests.
func NewUserServiceWithWechat(wechat WechatService) *UserService {
	return &UserService{wechatService: wechat}
}

func loginTokenKey(uid int) string {
	return fmt.Sprintf("%s%d", loginTokenKeyPrefix, uid)
}

// CreateToken stores the session marker, then signs a token carrying it. An
// empty return means the marker could not be stored and no token was issued.
func (s *UserService) CreateToken(uid int, sessionID string) string {
	expiry := config.GetTokenExpiry()

	if !cache.Set(loginTokenKey(uid), sessionID, expiry) {
		return ""
	}

	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
		UserID: uid,
		UUID:   sessionID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.GetTokenSecret()))
	if err != nil {
		logger.Error("sign token err:", err)
		return ""
	}
	return token
}

// VerifyToken resolves a token to its account, or nil. The cached marker must
// equal the one inside the token, so tokens superseded by a newer login fail
// here even before their cryptographic expiry.
func (s *UserService) VerifyToken(tokenStr string) *model.User {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(config.GetTokenSecret()), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("verify token err:", err)
		return nil
	}
	if claims.UserID == 0 || claims.UUID == "" {
		return nil
	}

	stored := cache.Get(loginTokenKey(claims.UserID))
	if stored == "" || stored != claims.UUID {
		return nil
	}

	user, err := s.FindByUserId(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

// FindByUserId loads a non-deleted account, excluding the password column.
func (s *UserService) FindByUserId(uid int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Omit("password").
		Where("uid = ? AND delete_at IS NULL", uid).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ValidateUser returns nil when the account exists, else the exception result
// shared by every service operating on behalf of a user.
func (s *UserService) ValidateUser(uid int) *entity.ResultData {
	if _, err := s.FindByUserId(uid); err != nil {
		return entity.ExceptionFail("当前用户不存在")
	}
	return nil
}

func (s *UserService) Register(form *entity.RegisterForm) *entity.ResultData {
	if !s.captchaService.Verify(form.Code, form.Uuid) {
		return entity.ExceptionFail("验证码校验失败")
	}

	db := database.GetDB()
	var count int64
	err := db.Model(model.User{}).
		Where("username = ? AND delete_at IS NULL", form.Username).
		Count(&count).
		Error
	if err != nil {
		logger.Error("register lookup err:", err)
		return entity.Fail(entity.CodeError, "用户注册失败")
	}
	if count > 0 {
		return entity.ExceptionFail("当前用户已存在")
	}

	hashed, err := crypto.HashPassword(form.Password)
	if err != nil {
		logger.Error("hash password err:", err)
		return entity.Fail(entity.CodeError, "用户注册失败")
	}

	user := &model.User{
		Username:  form.Username,
		Password:  hashed,
		NickName:  form.Username,
		AvatarUrl: defaultAvatarUrl,
	}
	if err := db.Create(user).Error; err != nil {
		logger.Error("register err:", err)
		return entity.Fail(entity.CodeError, "用户注册失败")
	}
	return entity.Ok(nil, "用户注册成功")
}

func (s *UserService) Login(form *entity.LoginForm) *entity.ResultData {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ? AND delete_at IS NULL", form.Username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return entity.ExceptionFail("当前用户不存在")
	}
	if err != nil {
		logger.Error("login lookup err:", err)
		return entity.Fail(entity.CodeError, "用户登录失败")
	}

	if !crypto.CheckPassword(user.Password, form.Password) {
		return entity.ExceptionFail("密码错误")
	}

	token := s.CreateToken(user.Uid, uuid.NewString())
	if token == "" {
		return entity.Fail(entity.CodeError, "用户登录失败")
	}
	return entity.Ok(entity.TokenData{Token: token}, "用户登录成功")
}

// LoginWechat exchanges the authorization code for an openid, finds or
// auto-creates the matching account and issues a token.
func (s *UserService) LoginWechat(code string) *entity.ResultData {
	openid := s.wechatService.GetOpenID(code)
	if openid == "" {
		return entity.ExceptionFail("微信登录失败")
	}

	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("openid = ? AND delete_at IS NULL", openid).
		First(user).
		Error
	if err == nil {
		token := s.CreateToken(user.Uid, uuid.NewString())
		if token == "" {
			return entity.Fail(entity.CodeError, "微信用户登录失败")
		}
		return entity.Ok(entity.TokenData{Token: token}, "微信用户登录成功")
	}
	if !database.IsNotFound(err) {
		logger.Error("wechat login lookup err:", err)
		return entity.Fail(entity.CodeError, "微信用户登录失败")
	}

	newUser, err := s.registerByWechat(openid)
	if err != nil {
		logger.Error("wechat register err:", err)
		return entity.ExceptionFail("登录异常，请稍后再试！")
	}

	token := s.CreateToken(newUser.Uid, uuid.NewString())
	if token == "" {
		return entity.Fail(entity.CodeError, "微信用户登录失败")
	}
	return entity.Ok(entity.TokenData{Token: token}, "微信用户登录成功")
}

func (s *UserService) registerByWechat(openid string) (*model.User, error) {
	hashed, err := crypto.HashPassword(config.GetInitPassword())
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("wechat_%d", time.Now().UnixMilli())
	user := &model.User{
		Openid:   openid,
		Username: name,
		NickName: name,
		Password: hashed,
	}
	if err := database.GetDB().Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
