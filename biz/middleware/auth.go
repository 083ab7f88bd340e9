package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Nacni/portfolio-media/pkg/common"
	"github.com/Nacni/portfolio-media/pkg/config"
)

// Auth returns a middleware that verifies an optional bearer session token
// and adds the caller's email to the context. This middleware does NOT
// enforce authentication, it only enriches the context when a valid
// session is present.
func Auth(secret string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		token := bearerToken(string(c.GetHeader("Authorization")))
		if token != "" {
			email, err := VerifySession(secret, token)
			if err != nil {
				hlog.CtxWarnf(ctx, "session token rejected: %v", err)
			} else {
				ctx = common.ContextWithUserEmail(ctx, email)
			}
		}
		c.Next(ctx)
	}
}

// RequireAdmin returns the admin gate: it denies callers without a valid
// session (401) and callers whose email is not on the allow-list (403).
// The allow-list is the trusted server-side config, never anything derived
// from the caller's own session. Denials carry the login path so clients
// can redirect; the caller is told the status, not an error.
func RequireAdmin(cfg *config.AuthConfig) app.HandlerFunc {
	allowed := buildAllowList(cfg.AdminEmails)
	loginPath := cfg.LoginPath

	return func(ctx context.Context, c *app.RequestContext) {
		email, ok := common.GetUserEmail(ctx)
		if !ok {
			hlog.CtxWarnf(ctx, "admin gate: no authenticated session for %s", c.Request.URI().Path())
			denyWithRedirect(c, consts.StatusUnauthorized, "authentication required", loginPath)
			return
		}
		if !allowed[common.NormalizeEmail(email)] {
			hlog.CtxWarnf(ctx, "admin gate: %s is not on the admin allow-list", email)
			denyWithRedirect(c, consts.StatusForbidden, "not authorized", loginPath)
			return
		}
		c.Next(ctx)
	}
}

var (
	errEmptySecret  = errors.New("session secret is not configured")
	errInvalidToken = errors.New("invalid session token")
	errNoEmailClaim = errors.New("session token has no email claim")
)

// VerifySession validates an HS256 session token issued by the auth
// provider and returns the verified email identity.
func VerifySession(secret, token string) (string, error) {
	if secret == "" {
		return "", errEmptySecret
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", errInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errInvalidToken
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email, nil
	}
	return "", errNoEmailClaim
}

func buildAllowList(emails []string) map[string]bool {
	allowed := make(map[string]bool, len(emails))
	for _, email := range emails {
		normalized := common.NormalizeEmail(email)
		if normalized != "" {
			allowed[normalized] = true
		}
	}
	return allowed
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func denyWithRedirect(c *app.RequestContext, status int, msg, loginPath string) {
	c.JSON(status, map[string]any{
		"code":     status,
		"error":    msg,
		"redirect": loginPath,
	})
	c.Abort()
}
