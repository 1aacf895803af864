package routev1

import (
	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/controller"
	"stockroom.io/application/controller/dto"
	"stockroom.io/application/interfaces"
	middlewares "stockroom.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func UserRouter(router *gin.RouterGroup) {
	userRouter := router.Group("/users")
	userRouter.Use(middlewares.AccessTokenAuthMiddleware())
	{
		userRouter.POST("/", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.CreateUserDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.CreateUser(&interfaces.ApplicationContext[dto.CreateUserDTO]{
				Ctx:  ctx,
				Body: &body,
				Keys: appContext.Keys,
			})
		})
	}
}
