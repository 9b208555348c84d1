package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Reads are
// public; writes run behind guard.
func (h *Handler) Register(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)

	admin := rg.Group("", guard)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}
