package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/shareit-go/shareit/internal/booking"
	bookingHttp "github.com/shareit-go/shareit/internal/booking/http"
	"github.com/shareit-go/shareit/internal/identity"
	"github.com/shareit-go/shareit/internal/item"
	itemHttp "github.com/shareit-go/shareit/internal/item/http"
	"github.com/shareit-go/shareit/internal/itemrequest"
	requestHttp "github.com/shareit-go/shareit/internal/itemrequest/http"
	"github.com/shareit-go/shareit/internal/logging"
	"github.com/shareit-go/shareit/internal/metrics"
	"github.com/shareit-go/shareit/internal/user"
	userHttp "github.com/shareit-go/shareit/internal/user/http"
)

// Config holds the dependencies needed to assemble the backend.
type Config struct {
	DBPool *pgxpool.Pool
	Logger zerolog.Logger
}

// Container exposes the assembled backend components.
type Container struct {
	Router *gin.Engine
}

// NewContainer wires repositories, services and routes for the backend.
func NewContainer(cfg Config) *Container {
	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, cfg.Logger)

	// Booking repository is created early: it doubles as the
	// item module's source of booking facts.
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)

	// Item module
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, userService, bookingRepo, cfg.Logger)

	// Booking module
	bookingService := booking.NewService(bookingRepo, userService, itemService, cfg.Logger)

	// Item request module
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)
	requestService := itemrequest.NewService(requestRepo, userService, cfg.Logger)

	router := newRouter(cfg.Logger, userService, itemService, bookingService, requestService)

	return &Container{Router: router}
}

func newRouter(
	log zerolog.Logger,
	userService user.Service,
	itemService item.Service,
	bookingService booking.Service,
	requestService itemrequest.Service,
) *gin.Engine {
	r := gin.New()
	r.Use(logging.RequestLogger(log), gin.Recovery())

	m := metrics.New("server")
	r.Use(m.Middleware())
	r.GET("/metrics", m.Handler())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(config))

	callerRequired := identity.Required()

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHttp.NewHandler(userService))
		itemHttp.RegisterRoutes(root, itemHttp.NewHandler(itemService), callerRequired)
		bookingHttp.RegisterRoutes(root, bookingHttp.NewHandler(bookingService), callerRequired)
		requestHttp.RegisterRoutes(root, requestHttp.NewHandler(requestService), callerRequired)
	}

	return r
}
