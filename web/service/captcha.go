package service

import (
	"strings"
	"time"

	"bookkeeper/cache"
	"bookkeeper/logger"
	"bookkeeper/web/entity"

	"github.com/google/uuid"
	"github.com/mojocn/base64Captcha"
)

const (
	captchaKeyPrefix = "captcha_codes:"
	captchaTTL       = 5 * time.Minute
)

var mathDriver = base64Captcha.NewDriverMath(40, 120, 0, base64Captcha.OptionShowHollowLine, nil, nil, nil)

// CaptchaService issues and verifies single-use math challenges. The expected
// answer lives in the cache under captcha_codes:{uuid} for five minutes.
type CaptchaService struct{}

func captchaKey(id string) string {
	return captchaKeyPrefix + id
}

func (s *CaptchaService) Generate() *entity.ResultData {
	_, question, answer := mathDriver.GenerateIdQuestionAnswer()

	item, err := mathDriver.DrawCaptcha(question)
	if err != nil {
		logger.Error("draw captcha err:", err)
		return entity.Fail(500, "生成验证码错误，请重试")
	}

	id := uuid.NewString()
	if !cache.Set(captchaKey(id), strings.ToLower(answer), captchaTTL) {
		return entity.Fail(500, "生成验证码错误，请重试")
	}

	return entity.Ok(entity.CaptchaData{Uuid: id, Img: item.EncodeB64string()}, "验证码生成成功")
}

// Verify compares case-insensitively and consumes the challenge on success.
// A failed delete still counts as verified; single use is best effort.
func (s *CaptchaService) Verify(code string, id string) bool {
	key := captchaKey(id)

	stored := cache.Get(key)
	if stored == "" {
		return false
	}
	if !strings.EqualFold(stored, code) {
		return false
	}

	if !cache.Del(key) {
		logger.Warning("captcha code not removed after verify:", id)
	}
	return true
}
