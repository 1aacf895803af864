package controller

import (
	"fmt"
	"net/http"
	"time"

	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/constants"
	"stockroom.io/application/controller/dto"
	"stockroom.io/application/interfaces"
	"stockroom.io/application/repository"
	"stockroom.io/infrastructure/auth"
	"stockroom.io/infrastructure/cryptography"
	"stockroom.io/infrastructure/database/repository/cache"
	"stockroom.io/infrastructure/logger"
	server_response "stockroom.io/infrastructure/serverResponse"
	"stockroom.io/infrastructure/validator"
)

func refreshTokenCacheKey(userID string) string {
	return fmt.Sprintf("%s-refresh", userID)
}

func Login(ctx *interfaces.ApplicationContext[dto.LoginDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	userRepo := repository.UserRepo()
	account, err := userRepo.FindOneByFilter(map[string]any{
		"email": ctx.Body.Email,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if account == nil {
		apperrors.AuthenticationError(ctx.Ctx, "invalid email or password")
		return
	}
	if account.Deactivated {
		apperrors.AuthenticationError(ctx.Ctx, "this account has been deactivated")
		return
	}
	if !cryptography.CryptoHasher.VerifyHashData(account.PasswordHash, ctx.Body.Password) {
		apperrors.AuthenticationError(ctx.Ctx, "invalid email or password")
		return
	}

	tokenSet, err := auth.GenerateTokenSet(account)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	hashedRefreshToken, err := cryptography.CryptoHasher.HashString(tokenSet.RefreshToken, nil)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	saved := cache.Cache.CreateEntry(refreshTokenCacheKey(account.ID), string(hashedRefreshToken),
		time.Duration(constants.REFRESH_TOKEN_TTL)*time.Second)
	if !saved {
		apperrors.FatalServerError(ctx.Ctx, fmt.Errorf("could not persist refresh token for %s", account.ID))
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "login successful", tokenSet, nil)
}

func CurrentUser(ctx *interfaces.ApplicationContext[any]) {
	userRepo := repository.UserRepo()
	account, err := userRepo.FindByID(ctx.GetStringContextData("UserID"))
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if account == nil {
		apperrors.NotFoundError(ctx.Ctx, "this account does not exist")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "identity resolved", map[string]any{
		"user_id":   account.ID,
		"name":      account.Name,
		"email":     account.Email,
		"groups":    account.Groups,
		"user_type": account.UserType,
	}, nil)
}

func RefreshToken(ctx *interfaces.ApplicationContext[dto.RefreshTokenDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	claims, err := auth.DecodeAuthToken(ctx.Body.RefreshToken, auth.RefreshToken)
	if err != nil {
		apperrors.AuthenticationError(ctx.Ctx, "this session has expired")
		return
	}
	userID, _ := claims["userID"].(string)

	cachedHash := cache.Cache.FindOne(refreshTokenCacheKey(userID))
	if cachedHash == nil {
		apperrors.AuthenticationError(ctx.Ctx, "this session has expired")
		return
	}
	if !cryptography.CryptoHasher.VerifyHashData(*cachedHash, ctx.Body.RefreshToken) {
		logger.Warning("refresh attempted with a rotated-out token", logger.LoggerOptions{
			Key:  "userID",
			Data: userID,
		})
		apperrors.AuthenticationError(ctx.Ctx, "this session has expired")
		return
	}

	userRepo := repository.UserRepo()
	account, err := userRepo.FindByID(userID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if account == nil || account.Deactivated {
		apperrors.AuthenticationError(ctx.Ctx, "this session has expired")
		return
	}

	tokenSet, err := auth.GenerateTokenSet(account)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	hashedRefreshToken, err := cryptography.CryptoHasher.HashString(tokenSet.RefreshToken, nil)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	cache.Cache.CreateEntry(refreshTokenCacheKey(account.ID), string(hashedRefreshToken),
		time.Duration(constants.REFRESH_TOKEN_TTL)*time.Second)
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "token refreshed", tokenSet, nil)
}

func Logout(ctx *interfaces.ApplicationContext[any]) {
	// deleting an absent entry is fine, logout stays idempotent
	cache.Cache.DeleteOne(refreshTokenCacheKey(ctx.GetStringContextData("UserID")))
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "logged out", nil, nil)
}
