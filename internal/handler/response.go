package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"feedwatch/internal/logger"
	"feedwatch/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type duplicateSubscriptionResponse struct {
	Error    string               `json:"error"`
	Existing subscriptionResponse `json:"existing"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrDuplicateSubscription):
		var dup *service.DuplicateSubscriptionError
		if errors.As(err, &dup) {
			return c.JSON(http.StatusConflict, duplicateSubscriptionResponse{
				Error:    "channel already subscribed",
				Existing: toSubscriptionResponse(dup.Existing),
			})
		}
		return c.JSON(http.StatusConflict, errorResponse{Error: "channel already subscribed"})
	case errors.Is(err, service.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "store unavailable"})
	case errors.Is(err, service.ErrConstraintViolation):
		// A constraint reached the database past the per-channel locks.
		// That is a locking bug, not a client error.
		logger.Error("constraint violation",
			"module", "http",
			"action", "request",
			"resource", "store",
			"result", "failed",
			"error", err.Error(),
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
