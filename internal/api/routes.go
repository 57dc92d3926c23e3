package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/recipients", h.listRecipients)
		api.POST("/recipients", h.addRecipient)
		api.DELETE("/recipients/:id", h.removeRecipient)
		api.GET("/recipients/:id/preview", h.previewCard)
		api.PUT("/template", h.setTemplate)
		api.POST("/generate", h.generate)
		api.GET("/qr", h.qr)
	}
}
