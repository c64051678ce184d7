package handlers

import (
	"github.com/AshishSharma-0610/form-builder/internal/services"
	"github.com/AshishSharma-0610/form-builder/internal/utils"
	"github.com/AshishSharma-0610/form-builder/internal/validator"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	formHandler *FormHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	v *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		formHandler: NewFormHandler(
			serviceManager.Form(),
			serviceManager.Response(),
			serviceManager.Export(),
			v,
			logger,
		),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "form-builder",
		})
	})

	api := router.Group("/api")
	{
		forms := api.Group("/forms")
		{
			forms.POST("", hm.formHandler.CreateForm)
			forms.GET("", hm.formHandler.ListForms)
			forms.GET("/:id", hm.formHandler.GetForm)
			forms.POST("/:id/submit", hm.formHandler.SubmitResponse)
			forms.GET("/:id/responses", hm.formHandler.ListResponses)
			forms.GET("/:id/export", hm.formHandler.ExportResponses)
		}
	}
}
