package gateway

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/shareit-go/shareit/internal/identity"
	"github.com/shareit-go/shareit/internal/logging"
	"github.com/shareit-go/shareit/internal/metrics"
)

// NewRouter assembles the gateway: validation at the edge, everything
// else relayed to the backend server.
func NewRouter(client *Client, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(logging.RequestLogger(log), gin.Recovery())

	m := metrics.New("gateway")
	r.Use(m.Middleware())
	r.GET("/metrics", m.Handler())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(config))

	h := NewHandler(client)
	callerRequired := identity.Required()

	users := r.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	items := r.Group("/items", callerRequired)
	{
		items.POST("", h.CreateItem)
		items.GET("", h.ListItems)
		items.GET("/search", h.SearchItems)
		items.GET("/:id", h.GetItem)
		items.PATCH("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
		items.POST("/:id/comment", h.AddComment)
	}

	bookings := r.Group("/bookings", callerRequired)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/owner", h.ListOwnerBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.PATCH("/:id", h.ApproveBooking)
	}

	requests := r.Group("/requests", callerRequired)
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListOwnRequests)
		requests.GET("/all", h.ListOtherRequests)
		requests.GET("/:id", h.GetRequest)
	}

	return r
}
