package controller

import (
	"net/http"

	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/controller/dto"
	"stockroom.io/application/interfaces"
	"stockroom.io/application/repository"
	"stockroom.io/application/utils"
	"stockroom.io/entities"
	"stockroom.io/infrastructure/cryptography"
	server_response "stockroom.io/infrastructure/serverResponse"
	"stockroom.io/infrastructure/validator"
)

func CreateUser(ctx *interfaces.ApplicationContext[dto.CreateUserDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	userRepo := repository.UserRepo()
	actor, err := userRepo.FindByID(ctx.GetStringContextData("UserID"))
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if actor == nil || !utils.HasItemString(&actor.Groups, "admin") {
		apperrors.AuthenticationError(ctx.Ctx, "only admins can create accounts")
		return
	}
	existing, err := userRepo.CountDocs(map[string]any{
		"email": ctx.Body.Email,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if existing != 0 {
		apperrors.EntityAlreadyExistsError(ctx.Ctx, "an account with this email already exists")
		return
	}
	passwordHash, err := cryptography.CryptoHasher.HashString(ctx.Body.Password, nil)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	userType := ctx.Body.UserType
	if userType == "" {
		userType = "viewer"
	}
	account, err := userRepo.CreateOne(entities.User{
		Email:        ctx.Body.Email,
		Name:         ctx.Body.Name,
		PasswordHash: string(passwordHash),
		Groups:       ctx.Body.Groups,
		UserType:     userType,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "account created", account, nil)
}
