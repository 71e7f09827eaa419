package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework handles routing

	"github.com/iliyamo/railway-segment-reservation/internal/handler"
	"github.com/iliyamo/railway-segment-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check,
// used by load balancers and monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterBrowse registers the public route-browse endpoints. Stop
// sequences are provisioned by schedule management and change rarely, so
// these routes run behind the Redis response cache when one is supplied.
// Availability is registered here too but outside the cache: quotes must
// reflect the occupancy table at call time.
func RegisterBrowse(e *echo.Echo, r *handler.RouteHandler, a *handler.AvailabilityHandler, cacheMW, rateMW echo.MiddlewareFunc) {
	browse := e.Group("/v1")
	if rateMW != nil {
		browse.Use(rateMW)
	}
	if cacheMW != nil {
		browse.GET("/runs/:id/stops", r.GetRunStops, cacheMW)
	} else {
		browse.GET("/runs/:id/stops", r.GetRunStops)
	}
	browse.GET("/runs/:id/availability", a.GetAvailability)
}

// RegisterBooking registers the segment booking and cancellation routes.
// Both verify the caller's bearer token (issued by the external auth
// service) before any occupancy write, and share the rate limiter with
// the browse endpoints.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string, rateMW echo.MiddlewareFunc) {
	g := e.Group("/v1/bookings")
	g.Use(middleware.VerifyIdentity(jwtSecret))
	if rateMW != nil {
		g.Use(rateMW)
	}
	g.POST("/:id/segments", b.BookSegment)
	g.DELETE("/:id/segments", b.CancelSegment)
}
