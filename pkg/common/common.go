package common

import (
	"context"
	"strings"
)

// CommonResponse is a lightweight response wrapper used by HTTP handlers.
type CommonResponse struct {
	Code  int         `json:"code"`
	Msg   string      `json:"msg,omitempty"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

// ReturnOK creates a HTTP 200 response.
func (CommonResponse) ReturnOK() CommonResponse {
	return CommonResponse{Code: 200}
}

type contextKey string

const userEmailKey contextKey = "user_email"

// ContextWithUserEmail stores the verified session email into context.
func ContextWithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// GetUserEmail retrieves the verified session email from context.
// The second return value is false when no authenticated session is present.
func GetUserEmail(ctx context.Context) (string, bool) {
	v := ctx.Value(userEmailKey)
	if v == nil {
		return "", false
	}
	email, ok := v.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// NormalizeEmail lowercases and trims an email for comparison purposes.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
