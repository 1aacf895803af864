package controller

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/controller/dto"
	"stockroom.io/application/interfaces"
	"stockroom.io/application/repository"
	"stockroom.io/entities"
	"stockroom.io/infrastructure/logger"
	messagequeue "stockroom.io/infrastructure/message_queue"
	queue_tasks "stockroom.io/infrastructure/message_queue/tasks"
	mq_types "stockroom.io/infrastructure/message_queue/types"
	server_response "stockroom.io/infrastructure/serverResponse"
	"stockroom.io/infrastructure/validator"
	"go.mongodb.org/mongo-driver/bson"
)

func CreateInventoryItem(ctx *interfaces.ApplicationContext[dto.CreateInventoryItemDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	productRepo := repository.ProductRepo()
	product, err := productRepo.FindByID(ctx.Body.ProductID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if product == nil {
		apperrors.NotFoundError(ctx.Ctx, "this product does not exist")
		return
	}
	inventoryRepo := repository.InventoryRepo()
	existing, err := inventoryRepo.CountDocs(map[string]any{
		"productID": ctx.Body.ProductID,
		"location":  ctx.Body.Location,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if existing != 0 {
		apperrors.EntityAlreadyExistsError(ctx.Ctx, "this product is already tracked at this location")
		return
	}
	item, err := inventoryRepo.CreateOne(entities.InventoryItem{
		ProductID:    ctx.Body.ProductID,
		Location:     ctx.Body.Location,
		Quantity:     ctx.Body.Quantity,
		ReorderLevel: ctx.Body.ReorderLevel,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "inventory item created", item, nil)
}

func FetchInventory(ctx *interfaces.ApplicationContext[any]) {
	filter := map[string]any{}
	if productID, ok := ctx.Query["productID"].(string); ok && productID != "" {
		filter["productID"] = productID
	}
	if location, ok := ctx.Query["location"].(string); ok && location != "" {
		filter["location"] = location
	}
	inventoryRepo := repository.InventoryRepo()
	items, err := inventoryRepo.FindMany(filter)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "inventory fetched", items, nil)
}

func UpdateInventoryItem(ctx *interfaces.ApplicationContext[dto.UpdateInventoryItemDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	payload := map[string]any{}
	if ctx.Body.Location != nil {
		payload["location"] = *ctx.Body.Location
	}
	if ctx.Body.ReorderLevel != nil {
		payload["reorderLevel"] = *ctx.Body.ReorderLevel
	}
	if len(payload) == 0 {
		apperrors.ClientError(ctx.Ctx, "no fields to update", nil)
		return
	}
	inventoryRepo := repository.InventoryRepo()
	updated, err := inventoryRepo.UpdatePartialByID(ctx.GetStringParameter("id"), payload)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if !updated {
		apperrors.NotFoundError(ctx.Ctx, "this inventory item does not exist")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "inventory item updated", nil, nil)
}

// adjustQuantityFilter matches the item only when the delta cannot take the
// quantity below zero, so the floor holds under concurrent adjustments.
func adjustQuantityFilter(id string, delta int64) map[string]any {
	filter := map[string]any{"_id": id}
	if delta < 0 {
		filter["quantity"] = map[string]any{"$gte": -delta}
	}
	return filter
}

// adjustQuantityUpdate expresses the adjustment as an increment rather than
// an absolute write. Concurrent deltas accumulate instead of overwriting.
func adjustQuantityUpdate(delta int64) bson.M {
	return bson.M{
		"$inc": bson.M{"quantity": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	}
}

// AdjustQuantity applies a signed delta to an item and fires a low stock
// alert when the result sits at or below the reorder level.
func AdjustQuantity(ctx *interfaces.ApplicationContext[dto.AdjustQuantityDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	inventoryRepo := repository.InventoryRepo()
	id := ctx.GetStringParameter("id")
	item, err := inventoryRepo.FindOneAndUpdate(adjustQuantityFilter(id, ctx.Body.Delta),
		adjustQuantityUpdate(ctx.Body.Delta))
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if item == nil {
		existing, err := inventoryRepo.FindByID(id)
		if err != nil {
			apperrors.UnknownError(ctx.Ctx, err)
			return
		}
		if existing == nil {
			apperrors.NotFoundError(ctx.Ctx, "this inventory item does not exist")
			return
		}
		apperrors.ClientError(ctx.Ctx, "adjustment would take the quantity below zero", nil)
		return
	}

	if item.Quantity <= item.ReorderLevel {
		productRepo := repository.ProductRepo()
		product, err := productRepo.FindByID(item.ProductID)
		if err == nil && product != nil {
			payload, err := json.Marshal(queue_tasks.LowStockAlertPayload{
				ProductName:  product.Name,
				SKU:          product.SKU,
				Location:     item.Location,
				Quantity:     item.Quantity,
				ReorderLevel: item.ReorderLevel,
			})
			if err != nil {
				logger.Error("error marshalling payload for low stock alert queue", logger.LoggerOptions{
					Key:  "error",
					Data: err,
				})
			} else {
				messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
					Payload:   payload,
					Name:      queue_tasks.HandleLowStockAlertTaskName,
					Priority:  mq_types.High,
					ProcessIn: 1,
				})
			}
		}
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "quantity adjusted", item, nil)
}

func DeleteInventoryItem(ctx *interfaces.ApplicationContext[any]) {
	inventoryRepo := repository.InventoryRepo()
	deleted, err := inventoryRepo.DeleteByID(ctx.GetStringParameter("id"))
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}
	if !deleted {
		apperrors.NotFoundError(ctx.Ctx, "this inventory item does not exist")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "inventory item deleted", nil, nil)
}
