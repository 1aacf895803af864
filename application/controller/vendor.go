package controller

import (
	"net/http"

	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/constants"
	"stockroom.io/application/controller/dto"
	"stockroom.io/application/interfaces"
	"stockroom.io/application/repository"
	"stockroom.io/entities"
	server_response "stockroom.io/infrastructure/serverResponse"
	"stockroom.io/infrastructure/validator"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateVendor(ctx *interfaces.ApplicationContext[dto.CreateVendorDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	vendorRepo := repository.VendorRepo()
	existing, err := vendorRepo.CountDocs(map[string]any{
		"name": ctx.Body.Name,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if existing != 0 {
		apperrors.EntityAlreadyExistsError(ctx.Ctx, "a vendor with this name already exists")
		return
	}
	vendor, err := vendorRepo.CreateOne(entities.Vendor{
		Name:         ctx.Body.Name,
		ContactEmail: ctx.Body.ContactEmail,
		Phone:        ctx.Body.Phone,
		Address:      ctx.Body.Address,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "vendor created", vendor, nil)
}

func FetchVendors(ctx *interfaces.ApplicationContext[any]) {
	filter := map[string]any{}
	if status, ok := ctx.Query["status"].(string); ok && status != "" {
		filter["status"] = status
	}
	vendorRepo := repository.VendorRepo()
	vendors, err := vendorRepo.FindMany(filter, options.Find().SetLimit(constants.MAX_VENDORS_PER_PAGE))
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "vendors fetched", vendors, nil)
}

func FetchVendor(ctx *interfaces.ApplicationContext[any]) {
	vendorRepo := repository.VendorRepo()
	vendor, err := vendorRepo.FindByID(ctx.GetStringParameter("id"))
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if vendor == nil {
		apperrors.NotFoundError(ctx.Ctx, "this vendor does not exist")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "vendor fetched", vendor, nil)
}

func UpdateVendor(ctx *interfaces.ApplicationContext[dto.UpdateVendorDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	payload := map[string]any{}
	if ctx.Body.Name != nil {
		payload["name"] = *ctx.Body.Name
	}
	if ctx.Body.ContactEmail != nil {
		payload["contactEmail"] = *ctx.Body.ContactEmail
	}
	if ctx.Body.Phone != nil {
		payload["phone"] = *ctx.Body.Phone
	}
	if ctx.Body.Address != nil {
		payload["address"] = *ctx.Body.Address
	}
	if ctx.Body.Status != nil {
		payload["status"] = *ctx.Body.Status
	}
	if len(payload) == 0 {
		apperrors.ClientError(ctx.Ctx, "no fields to update", nil)
		return
	}
	vendorRepo := repository.VendorRepo()
	updated, err := vendorRepo.UpdatePartialByID(ctx.GetStringParameter("id"), payload)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if !updated {
		apperrors.NotFoundError(ctx.Ctx, "this vendor does not exist")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "vendor updated", nil, nil)
}

func DeleteVendor(ctx *interfaces.ApplicationContext[any]) {
	vendorID := ctx.GetStringParameter("id")
	productRepo := repository.ProductRepo()
	attached, err := productRepo.CountDocs(map[string]any{
		"vendorID": vendorID,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if attached != 0 {
		apperrors.ClientError(ctx.Ctx, "this vendor still has products attached to it", nil)
		return
	}
	vendorRepo := repository.VendorRepo()
	deleted, err := vendorRepo.DeleteByID(vendorID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if !deleted {
		apperrors.NotFoundError(ctx.Ctx, "this vendor does not exist")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "vendor deleted", nil, nil)
}
