// Package entity defines the uniform response envelope and the request forms
// of the bookkeeper HTTP surface. Every handler answers with HTTP status 200
// and carries the real status in the envelope's code field; clients depend on
// this convention.
package entity

const (
	// CodeSuccess marks a successful operation.
	CodeSuccess = 200
	// CodeError marks operational failures (storage, cache, rendering).
	CodeError = 400
	// CodeException marks business-rule failures (not found, no permission,
	// duplicates), distinct from true server faults.
	CodeException = -1
)

// ResultData is the uniform response envelope.
type ResultData struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func Ok(data any, message string) *ResultData {
	if message == "" {
		message = "请求成功"
	}
	return &ResultData{Code: CodeSuccess, Message: message, Data: data}
}

func Fail(code int, message string) *ResultData {
	if code == 0 {
		code = CodeError
	}
	if message == "" {
		message = "服务器异常"
	}
	return &ResultData{Code: code, Message: message}
}

func ExceptionFail(message string) *ResultData {
	if message == "" {
		message = "业务异常"
	}
	return &ResultData{Code: CodeException, Message: message}
}

// PageInfo echoes the requested page and the total row count.
type PageInfo struct {
	PageNo   int   `json:"pageNo"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

// PageResult is the data payload of every list operation.
type PageResult struct {
	List     any      `json:"list"`
	PageInfo PageInfo `json:"pageInfo"`
}

// TokenData carries an issued session token.
type TokenData struct {
	Token string `json:"token"`
}

// CaptchaData carries a captcha challenge: the single-use identifier and the
// rendered image as a base64 data URI.
type CaptchaData struct {
	Uuid string `json:"uuid"`
	Img  string `json:"img"`
}
