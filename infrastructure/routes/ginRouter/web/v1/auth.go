package routev1

import (
	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/controller"
	"stockroom.io/application/controller/dto"
	"stockroom.io/application/interfaces"
	middlewares "stockroom.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func AuthRouter(router *gin.RouterGroup) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/login", func(ctx *gin.Context) {
			var body dto.LoginDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.Login(&interfaces.ApplicationContext[dto.LoginDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		authRouter.GET("/me", middlewares.IDTokenAuthMiddleware(), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.CurrentUser(appContext)
		})

		authRouter.POST("/refresh", func(ctx *gin.Context) {
			var body dto.RefreshTokenDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.RefreshToken(&interfaces.ApplicationContext[dto.RefreshTokenDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		authRouter.POST("/logout", middlewares.AccessTokenAuthMiddleware(), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.Logout(appContext)
		})
	}
}
