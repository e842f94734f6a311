package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "vaultline.io/application/appErrors"
	"vaultline.io/application/controller"
	"vaultline.io/application/controller/dto"
	"vaultline.io/application/interfaces"
	"vaultline.io/infrastructure/validator"
)

func ClientRouter(router *gin.RouterGroup) {
	clientRouter := router.Group("/client")
	{
		clientRouter.GET("/operations/account", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.GetAccountInfo(appContext)
		})

		clientRouter.GET("/operations", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.GetOperations(appContext)
		})

		clientRouter.POST("/operations", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.CreateOperationDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			if errs := validator.ValidatorInstance.ValidateStruct(body); errs != nil {
				apperrors.ValidationFailedError(ctx, errs)
				return
			}
			controller.CreateOperation(&interfaces.ApplicationContext[dto.CreateOperationDTO]{
				Ctx:       ctx,
				Body:      &body,
				SessionID: appContext.SessionID,
				Roles:     appContext.Roles,
			})
		})

		clientRouter.GET("/operations/:id/document", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.DownloadOperationDocument(appContext, ctx.Param("id"))
		})

		clientRouter.POST("/operations/:id/document", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			file, header, err := ctx.Request.FormFile("file")
			if err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			defer file.Close()
			controller.UploadOperationDocument(&interfaces.ApplicationContext[dto.UploadDocumentDTO]{
				Ctx: ctx,
				Body: &dto.UploadDocumentDTO{
					OperationID: ctx.Param("id"),
					FileName:    header.Filename,
					File:        file,
				},
				SessionID: appContext.SessionID,
				Roles:     appContext.Roles,
			})
		})
	}
}
