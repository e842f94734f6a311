package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "vaultline.io/application/appErrors"
	"vaultline.io/application/controller"
	"vaultline.io/application/controller/dto"
	"vaultline.io/application/interfaces"
	"vaultline.io/application/utils"
	"vaultline.io/infrastructure/validator"
)

func AdminRouter(router *gin.RouterGroup) {
	adminRouter := router.Group("/admin")
	{
		adminRouter.GET("/users", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.ListUsers(appContext)
		})

		adminRouter.POST("/users", func(ctx *gin.Context) {
			userRoute(ctx, func(userContext *interfaces.ApplicationContext[dto.UserDTO]) {
				controller.CreateUser(userContext)
			})
		})

		adminRouter.PUT("/users/:id", func(ctx *gin.Context) {
			userRoute(ctx, func(userContext *interfaces.ApplicationContext[dto.UserDTO]) {
				controller.UpdateUser(userContext, ctx.Param("id"))
			})
		})

		adminRouter.PUT("/users/:id/activate", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.ActivateUser(appContext, ctx.Param("id"))
		})

		adminRouter.PUT("/users/:id/suspend", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.SuspendUser(appContext, ctx.Param("id"))
		})

		adminRouter.DELETE("/users/:id", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.DeleteUser(appContext, ctx.Param("id"))
		})

		adminRouter.GET("/operations", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var status *string
			if value, exists := ctx.GetQuery("status"); exists {
				status = utils.GetStringPointer(value)
			}
			controller.ListAllOperations(appContext, status)
		})

		// the force endpoints take the comment as a bare JSON string,
		// the shape the dashboards have always sent
		adminRouter.PUT("/operations/:id/force-approve", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var comment *string
			if ctx.Request.ContentLength > 0 {
				var raw string
				if err := ctx.ShouldBindJSON(&raw); err != nil {
					apperrors.ErrorProcessingPayload(ctx)
					return
				}
				if raw != "" {
					comment = utils.GetStringPointer(raw)
				}
			}
			controller.ForceApproveOperation(&interfaces.ApplicationContext[dto.ValidateOperationDTO]{
				Ctx:       ctx,
				Body:      &dto.ValidateOperationDTO{Comment: comment},
				SessionID: appContext.SessionID,
				Roles:     appContext.Roles,
			}, ctx.Param("id"))
		})

		adminRouter.PUT("/operations/:id/force-reject", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var comment string
			if err := ctx.ShouldBindJSON(&comment); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			if err := validator.ValidatorInstance.ValidateValue(comment, "required,max=500"); err != nil {
				apperrors.ValidationFailedError(ctx, &[]error{err})
				return
			}
			controller.ForceRejectOperation(&interfaces.ApplicationContext[dto.ForceRejectDTO]{
				Ctx:       ctx,
				Body:      &dto.ForceRejectDTO{Comment: comment},
				SessionID: appContext.SessionID,
				Roles:     appContext.Roles,
			}, ctx.Param("id"))
		})

		adminRouter.GET("/stats", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.GetAdminStats(appContext)
		})

		adminRouter.GET("/activity", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.GetActivityLog(appContext)
		})
	}
}

func userRoute(ctx *gin.Context, handler func(*interfaces.ApplicationContext[dto.UserDTO])) {
	appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
	var body dto.UserDTO
	if err := ctx.ShouldBindJSON(&body); err != nil {
		apperrors.ErrorProcessingPayload(ctx)
		return
	}
	if errs := validator.ValidatorInstance.ValidateStruct(body); errs != nil {
		apperrors.ValidationFailedError(ctx, errs)
		return
	}
	handler(&interfaces.ApplicationContext[dto.UserDTO]{
		Ctx:       ctx,
		Body:      &body,
		SessionID: appContext.SessionID,
		Roles:     appContext.Roles,
	})
}
