package routev1

import (
	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/controller"
	"stockroom.io/application/controller/dto"
	"stockroom.io/application/interfaces"
	middlewares "stockroom.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func InventoryRouter(router *gin.RouterGroup) {
	inventoryRouter := router.Group("/inventory")
	inventoryRouter.Use(middlewares.AccessTokenAuthMiddleware())
	{
		inventoryRouter.POST("/", func(ctx *gin.Context) {
			var body dto.CreateInventoryItemDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.CreateInventoryItem(&interfaces.ApplicationContext[dto.CreateInventoryItemDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		inventoryRouter.GET("/", func(ctx *gin.Context) {
			controller.FetchInventory(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Query: map[string]any{
					"productID": ctx.Query("productID"),
					"location":  ctx.Query("location"),
				},
			})
		})

		inventoryRouter.PATCH("/:id", func(ctx *gin.Context) {
			var body dto.UpdateInventoryItemDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.UpdateInventoryItem(&interfaces.ApplicationContext[dto.UpdateInventoryItemDTO]{
				Ctx:  ctx,
				Body: &body,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})

		inventoryRouter.PATCH("/:id/quantity", func(ctx *gin.Context) {
			var body dto.AdjustQuantityDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.AdjustQuantity(&interfaces.ApplicationContext[dto.AdjustQuantityDTO]{
				Ctx:  ctx,
				Body: &body,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})

		inventoryRouter.DELETE("/:id", func(ctx *gin.Context) {
			controller.DeleteInventoryItem(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})
	}
}
