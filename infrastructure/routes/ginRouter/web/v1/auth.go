package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "vaultline.io/application/appErrors"
	"vaultline.io/application/controller"
	"vaultline.io/application/controller/dto"
	"vaultline.io/application/interfaces"
	"vaultline.io/infrastructure/validator"
)

func AuthRouter(router *gin.RouterGroup) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/login", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.LoginDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			if errs := validator.ValidatorInstance.ValidateStruct(body); errs != nil {
				apperrors.ValidationFailedError(ctx, errs)
				return
			}
			loginContext := &interfaces.ApplicationContext[dto.LoginDTO]{
				Ctx:       ctx,
				Body:      &body,
				UserAgent: appContext.UserAgent,
			}
			loginContext.SetContextData("ip", ctx.ClientIP())
			controller.Login(loginContext)
		})

		authRouter.POST("/register", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.RegisterDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			if errs := validator.ValidatorInstance.ValidateStruct(body); errs != nil {
				apperrors.ValidationFailedError(ctx, errs)
				return
			}
			registerContext := &interfaces.ApplicationContext[dto.RegisterDTO]{
				Ctx:       ctx,
				Body:      &body,
				UserAgent: appContext.UserAgent,
			}
			registerContext.SetContextData("ip", ctx.ClientIP())
			controller.Register(registerContext)
		})

		authRouter.POST("/logout", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.Logout(&interfaces.ApplicationContext[any]{
				Ctx:       ctx,
				SessionID: appContext.SessionID,
			})
		})

		authRouter.GET("/session", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.Session(&interfaces.ApplicationContext[any]{
				Ctx:       ctx,
				SessionID: appContext.SessionID,
			})
		})
	}
}
