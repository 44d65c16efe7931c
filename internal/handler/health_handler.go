package handler

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	db *sql.DB
}

type healthResponse struct {
	Status string `json:"status"`
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Check)
}

// Check reports whether the store answers queries.
func (h *HealthHandler) Check(c echo.Context) error {
	if err := h.db.PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "store unavailable"})
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
