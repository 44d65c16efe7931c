package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"feedwatch/internal/handler"
)

func NewRouter(
	subscriptionHandler *handler.SubscriptionHandler,
	deliveryHandler *handler.DeliveryHandler,
	healthHandler *handler.HealthHandler,
	rateLimit float64,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	if rateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(rateLimit))))
	}

	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	subscriptionHandler.RegisterRoutes(api)
	deliveryHandler.RegisterRoutes(api)

	return e
}
