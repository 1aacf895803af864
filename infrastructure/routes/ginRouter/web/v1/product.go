package routev1

import (
	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/controller"
	"stockroom.io/application/controller/dto"
	"stockroom.io/application/interfaces"
	middlewares "stockroom.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func ProductRouter(router *gin.RouterGroup) {
	productRouter := router.Group("/products")
	productRouter.Use(middlewares.AccessTokenAuthMiddleware())
	{
		productRouter.POST("/", func(ctx *gin.Context) {
			var body dto.CreateProductDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.CreateProduct(&interfaces.ApplicationContext[dto.CreateProductDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		productRouter.GET("/", func(ctx *gin.Context) {
			controller.FetchProducts(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Query: map[string]any{
					"vendorID": ctx.Query("vendorID"),
					"category": ctx.Query("category"),
				},
			})
		})

		productRouter.GET("/:id", func(ctx *gin.Context) {
			controller.FetchProduct(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})

		productRouter.GET("/:id/image-upload-url", func(ctx *gin.Context) {
			controller.GenerateProductImageUploadURL(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})

		productRouter.PATCH("/:id", func(ctx *gin.Context) {
			var body dto.UpdateProductDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.UpdateProduct(&interfaces.ApplicationContext[dto.UpdateProductDTO]{
				Ctx:  ctx,
				Body: &body,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})

		productRouter.DELETE("/:id", func(ctx *gin.Context) {
			controller.DeleteProduct(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})
	}
}
