package middleware

import (
	"encoding/json"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/api/transport"
	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/auth"
)

const userIDKey = "auth_user_id"

// JWTAuth guards a route behind a bearer token. A valid token attaches the
// resolved user id to the request; anything else short-circuits with 401.
func JWTAuth(secret []byte, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			tokenString := extractToken(ctx)
			if tokenString == "" {
				reject(ctx)
				return
			}

			userID, err := auth.ParseToken(tokenString, secret)
			if err != nil {
				logger.Warn("rejected bearer token", zap.Error(err))
				reject(ctx)
				return
			}

			ctx.SetUserValue(userIDKey, userID)
			next(ctx)
		}
	}
}

// UserID returns the identity attached by JWTAuth, or "" on an unguarded request.
func UserID(ctx *fasthttp.RequestCtx) string {
	userID, _ := ctx.UserValue(userIDKey).(string)
	return userID
}

func reject(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	body, _ := json.Marshal(transport.Message{Message: domain.ErrInvalidToken.Message})
	ctx.SetBody(body)
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
