package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "vaultline.io/application/appErrors"
	"vaultline.io/application/controller"
	"vaultline.io/application/controller/dto"
	"vaultline.io/application/interfaces"
	"vaultline.io/infrastructure/validator"
)

func AgentRouter(router *gin.RouterGroup) {
	agentRouter := router.Group("/agent")
	{
		agentRouter.GET("/operations/pending", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.GetPendingOperations(appContext)
		})

		agentRouter.PUT("/operations/:id/approve", func(ctx *gin.Context) {
			validateOperationRoute(ctx, controller.ApproveOperation)
		})

		agentRouter.PUT("/operations/:id/reject", func(ctx *gin.Context) {
			validateOperationRoute(ctx, controller.RejectOperation)
		})
	}
}

// validateOperationRoute binds the optional comment body shared by
// the approve and reject endpoints. An empty body is a valid verdict
// with no comment.
func validateOperationRoute(ctx *gin.Context, handler func(*interfaces.ApplicationContext[dto.ValidateOperationDTO], string)) {
	appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
	var body dto.ValidateOperationDTO
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&body); err != nil {
			apperrors.ErrorProcessingPayload(ctx)
			return
		}
		if errs := validator.ValidatorInstance.ValidateStruct(body); errs != nil {
			apperrors.ValidationFailedError(ctx, errs)
			return
		}
	}
	handler(&interfaces.ApplicationContext[dto.ValidateOperationDTO]{
		Ctx:       ctx,
		Body:      &body,
		SessionID: appContext.SessionID,
		Roles:     appContext.Roles,
	}, ctx.Param("id"))
}
