package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akkor/hotel-booking-api/internal/api/handler"
	"github.com/akkor/hotel-booking-api/internal/api/middleware"
	"github.com/akkor/hotel-booking-api/internal/core/domain"
	"github.com/akkor/hotel-booking-api/internal/core/service"
	mongodb "github.com/akkor/hotel-booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/akkor/hotel-booking-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// All dependencies are constructed here and passed down explicitly; nothing
// hangs off process-wide state.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("akkor"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hotelRepo := mongodb.NewHotelRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)

	tokens := service.NewTokenService(jwtSecret, tokenTTL)
	loginGuard := redisdb.NewLoginGuard(rdb)

	userService := service.NewUserService(userRepo, tokens, loginGuard, log)
	hotelService := service.NewHotelService(hotelRepo, userRepo, log)
	bookingService := service.NewBookingService(bookingRepo, log)

	userHandler := handler.NewUserHandler(userService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	auth := middleware.Auth(tokens)
	adminOnly := middleware.RequireRole(userRepo, domain.RoleAdmin)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/me", userHandler.Me, auth)
	users.PATCH("/me", userHandler.Update, auth)

	// --- Hotel routes ---
	hotels := e.Group("/hotels")
	hotels.POST("/", hotelHandler.Create, auth, adminOnly)
	hotels.GET("/:id", hotelHandler.Get)
	hotels.PATCH("/:id", hotelHandler.Update, auth)
	hotels.DELETE("/:id", hotelHandler.Delete, auth)

	// --- Booking routes ---
	bookings := e.Group("/bookings")
	bookings.POST("/", bookingHandler.Create, auth)
	bookings.GET("/", bookingHandler.List, auth)
	bookings.GET("/:id", bookingHandler.Get)
	bookings.DELETE("/:id", bookingHandler.Delete, auth)

	// --- Search (public) ---
	e.GET("/search", hotelHandler.Search)

	// --- Root ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the AKKOR Backend API!"})
	})

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
