package controller

import (
	"fmt"
	"net/http"

	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/constants"
	"stockroom.io/application/controller/dto"
	"stockroom.io/application/interfaces"
	"stockroom.io/application/repository"
	"stockroom.io/entities"
	fileupload "stockroom.io/infrastructure/file_upload"
	"stockroom.io/infrastructure/file_upload/types"
	server_response "stockroom.io/infrastructure/serverResponse"
	"stockroom.io/infrastructure/validator"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func productImagePath(productID string) string {
	return fmt.Sprintf("products/%s", productID)
}

func CreateProduct(ctx *interfaces.ApplicationContext[dto.CreateProductDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	vendorRepo := repository.VendorRepo()
	vendor, err := vendorRepo.FindByID(ctx.Body.VendorID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if vendor == nil {
		apperrors.NotFoundError(ctx.Ctx, "this vendor does not exist")
		return
	}
	productRepo := repository.ProductRepo()
	existing, err := productRepo.CountDocs(map[string]any{
		"sku": ctx.Body.SKU,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if existing != 0 {
		apperrors.EntityAlreadyExistsError(ctx.Ctx, "a product with this sku already exists")
		return
	}
	product, err := productRepo.CreateOne(entities.Product{
		SKU:       ctx.Body.SKU,
		Name:      ctx.Body.Name,
		VendorID:  ctx.Body.VendorID,
		Category:  ctx.Body.Category,
		UnitPrice: ctx.Body.UnitPrice,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "product created", product, nil)
}

func FetchProducts(ctx *interfaces.ApplicationContext[any]) {
	filter := map[string]any{}
	if vendorID, ok := ctx.Query["vendorID"].(string); ok && vendorID != "" {
		filter["vendorID"] = vendorID
	}
	if category, ok := ctx.Query["category"].(string); ok && category != "" {
		filter["category"] = category
	}
	productRepo := repository.ProductRepo()
	products, err := productRepo.FindMany(filter, options.Find().SetLimit(constants.MAX_PRODUCTS_PER_PAGE))
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "products fetched", products, nil)
}

func FetchProduct(ctx *interfaces.ApplicationContext[any]) {
	productRepo := repository.ProductRepo()
	product, err := productRepo.FindByID(ctx.GetStringParameter("id"))
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if product == nil {
		apperrors.NotFoundError(ctx.Ctx, "this product does not exist")
		return
	}
	var imageURL *string
	if product.Image != "" {
		imageURL, _ = fileupload.FileUploader.GeneratedSignedURL(product.Image, types.SignedURLPermission{
			Read: true,
		})
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "product fetched", map[string]any{
		"product":  product,
		"imageURL": imageURL,
	}, nil)
}

func UpdateProduct(ctx *interfaces.ApplicationContext[dto.UpdateProductDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	payload := map[string]any{}
	if ctx.Body.Name != nil {
		payload["name"] = *ctx.Body.Name
	}
	if ctx.Body.VendorID != nil {
		vendorRepo := repository.VendorRepo()
		vendor, err := vendorRepo.FindByID(*ctx.Body.VendorID)
		if err != nil {
			apperrors.UnknownError(ctx.Ctx, err)
			return
		}
		if vendor == nil {
			apperrors.NotFoundError(ctx.Ctx, "this vendor does not exist")
			return
		}
		payload["vendorID"] = *ctx.Body.VendorID
	}
	if ctx.Body.Category != nil {
		payload["category"] = *ctx.Body.Category
	}
	if ctx.Body.UnitPrice != nil {
		payload["unitPrice"] = *ctx.Body.UnitPrice
	}
	if len(payload) == 0 {
		apperrors.ClientError(ctx.Ctx, "no fields to update", nil)
		return
	}
	productRepo := repository.ProductRepo()
	updated, err := productRepo.UpdatePartialByID(ctx.GetStringParameter("id"), payload)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if !updated {
		apperrors.NotFoundError(ctx.Ctx, "this product does not exist")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "product updated", nil, nil)
}

func DeleteProduct(ctx *interfaces.ApplicationContext[any]) {
	productID := ctx.GetStringParameter("id")
	inventoryRepo := repository.InventoryRepo()
	attached, err := inventoryRepo.CountDocs(map[string]any{
		"productID": productID,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if attached != 0 {
		apperrors.ClientError(ctx.Ctx, "this product still has inventory records", nil)
		return
	}
	productRepo := repository.ProductRepo()
	product, err := productRepo.FindByID(productID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if product == nil {
		apperrors.NotFoundError(ctx.Ctx, "this product does not exist")
		return
	}
	if product.Image != "" {
		fileupload.FileUploader.DeleteFile(product.Image)
	}
	deleted, err := productRepo.DeleteByID(productID)
	if err != nil || !deleted {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "product deleted", nil, nil)
}

// GenerateProductImageUploadURL hands the dashboard a short lived signed url
// it can PUT the image to directly, then records the blob path on the product.
func GenerateProductImageUploadURL(ctx *interfaces.ApplicationContext[any]) {
	productRepo := repository.ProductRepo()
	productID := ctx.GetStringParameter("id")
	product, err := productRepo.FindByID(productID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if product == nil {
		apperrors.NotFoundError(ctx.Ctx, "this product does not exist")
		return
	}
	url, err := fileupload.FileUploader.GeneratedSignedURL(productImagePath(productID), types.SignedURLPermission{
		Write: true,
	})
	if err != nil {
		apperrors.ExternalDependencyError(ctx.Ctx, "azure", "500", err)
		return
	}
	_, err = productRepo.UpdatePartialByID(productID, map[string]any{
		"image": productImagePath(productID),
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "upload url generated", url, nil)
}
