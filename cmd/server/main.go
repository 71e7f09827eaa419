package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-segment-reservation/internal/config"
	"github.com/iliyamo/railway-segment-reservation/internal/database"
	"github.com/iliyamo/railway-segment-reservation/internal/handler"
	"github.com/iliyamo/railway-segment-reservation/internal/middleware"
	"github.com/iliyamo/railway-segment-reservation/internal/queue"
	"github.com/iliyamo/railway-segment-reservation/internal/repository"
	"github.com/iliyamo/railway-segment-reservation/internal/router"
	"github.com/iliyamo/railway-segment-reservation/internal/service"
)

func main() {
	// Load .env when present; real deployments set the variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories over the schedule-management tables (read-only) and the
	// occupancy interval store (the one table this service writes).
	runRepo := repository.NewRunRepo(db)
	routeRepo := repository.NewRouteRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	occupancyRepo := repository.NewOccupancyRepo(db)

	// Engine wiring: every component takes its storage accessors
	// explicitly so tests can swap in the in-memory store.
	checker := service.NewAvailabilityChecker(routeRepo, seatRepo, occupancyRepo)
	reconciler := service.NewSeatStatusReconciler(routeRepo, seatRepo, seatRepo, occupancyRepo)
	booking := service.NewSegmentBookingService(checker, seatRepo, occupancyRepo, reconciler, queue.Publisher{})

	// Background consumer mirrors confirmed bookings into logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	// Redis backs the rate limiter and the browse cache; nil degrades both
	// to pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and response cache disabled")
	}
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterBrowse(e, handler.NewRouteHandler(runRepo, routeRepo), handler.NewAvailabilityHandler(runRepo, booking), cacheMW, rateMW)
	router.RegisterBooking(e, handler.NewBookingHandler(booking), cfg.JWTSecret, rateMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
