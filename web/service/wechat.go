package service

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"bookkeeper/config"
	"bookkeeper/logger"
)

const wechatBaseURL = "https://api.weixin.qq.com/sns/jscode2session"

type wechatSessionResponse struct {
	Openid  string `json:"openid"`
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// WechatService exchanges a mini-program authorization code for an openid.
// The zero value talks to the real endpoint with a 5 second timeout; tests
// override BaseURL and Client.
type WechatService struct {
	BaseURL string
	Client  *http.Client
}

// GetOpenID returns the openid for code, or "" on any failure.
func (s *WechatService) GetOpenID(code string) string {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = wechatBaseURL
	}

	params := url.Values{}
	params.Set("appid", config.GetWechatAppID())
	params.Set("secret", config.GetWechatSecret())
	params.Set("js_code", code)
	params.Set("grant_type", "authorization_code")

	resp, err := client.Get(baseURL + "?" + params.Encode())
	if err != nil {
		logger.Error("wechat code exchange err:", err)
		return ""
	}
	defer resp.Body.Close()

	var result wechatSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Error("wechat code exchange decode err:", err)
		return ""
	}
	if result.ErrCode != 0 {
		logger.Errorf("微信登录失败：%d => %s", result.ErrCode, result.ErrMsg)
		return ""
	}
	return result.Openid
}
