package middlewares

import (
	"strings"

	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/interfaces"
	"stockroom.io/infrastructure/auth"
	"github.com/gin-gonic/gin"
)

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// AccessTokenAuthMiddleware guards resource routes. Requests must carry a
// valid access token as bearer credential.
func AccessTokenAuthMiddleware() gin.HandlerFunc {
	return tokenAuthMiddleware(auth.AccessToken)
}

// IDTokenAuthMiddleware guards the identity endpoint, which is authorised by
// the identity token rather than the access token.
func IDTokenAuthMiddleware() gin.HandlerFunc {
	return tokenAuthMiddleware(auth.IDToken)
}

func tokenAuthMiddleware(tokenType auth.TokenType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			apperrors.AuthenticationError(ctx, "missing auth token")
			return
		}
		claims, err := auth.DecodeAuthToken(token, tokenType)
		if err != nil {
			apperrors.AuthenticationError(ctx, "this session has expired")
			return
		}

		appContext := &interfaces.ApplicationContext[any]{
			Ctx:    ctx,
			Keys:   map[string]any{},
			Header: ctx.Request.Header,
		}
		appContext.SetContextData("UserID", claims["userID"])
		appContext.SetContextData("Email", claims["email"])
		ctx.Set("AppContext", appContext)
		ctx.Next()
	}
}
