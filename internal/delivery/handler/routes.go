package handler

import "github.com/labstack/echo/v4"

// RegisterRoutes wires every endpoint onto the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/status", h.GetStatus)
	e.GET("/stats", h.GetStats)

	e.POST("/users", h.PostUsers)
	e.GET("/connect", h.GetConnect)
	e.GET("/disconnect", h.GetDisconnect)
	e.GET("/users/me", h.GetMe)
	e.POST("/files", h.PostFiles)
}
