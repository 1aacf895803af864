package routev1

import (
	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/controller"
	"stockroom.io/application/controller/dto"
	"stockroom.io/application/interfaces"
	middlewares "stockroom.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func VendorRouter(router *gin.RouterGroup) {
	vendorRouter := router.Group("/vendors")
	vendorRouter.Use(middlewares.AccessTokenAuthMiddleware())
	{
		vendorRouter.POST("/", func(ctx *gin.Context) {
			var body dto.CreateVendorDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.CreateVendor(&interfaces.ApplicationContext[dto.CreateVendorDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		vendorRouter.GET("/", func(ctx *gin.Context) {
			controller.FetchVendors(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Query: map[string]any{
					"status": ctx.Query("status"),
				},
			})
		})

		vendorRouter.GET("/:id", func(ctx *gin.Context) {
			controller.FetchVendor(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})

		vendorRouter.PATCH("/:id", func(ctx *gin.Context) {
			var body dto.UpdateVendorDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.UpdateVendor(&interfaces.ApplicationContext[dto.UpdateVendorDTO]{
				Ctx:  ctx,
				Body: &body,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})

		vendorRouter.DELETE("/:id", func(ctx *gin.Context) {
			controller.DeleteVendor(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})
	}
}
