package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-go/shareit/internal/booking"
	"github.com/shareit-go/shareit/internal/identity"
	"github.com/shareit-go/shareit/internal/pkg/request"
	"github.com/shareit-go/shareit/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := booking.CreateRequest{ItemID: body.ItemID}
	if body.Start != nil {
		req.Start = *body.Start
	}
	if body.End != nil {
		req.End = *body.End
	}

	b, err := h.service.Create(c.Request.Context(), identity.CallerID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved query parameter must be a boolean"})
		return
	}

	b, err := h.service.Approve(c.Request.Context(), identity.CallerID(c), id, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.GetForParticipant(c.Request.Context(), identity.CallerID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) ListForBooker(c *gin.Context) {
	state := booking.ParseState(c.Query("state"))

	bookings, err := h.service.ListForBooker(c.Request.Context(), identity.CallerID(c), state)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(toResponses(bookings)))
}

func (h *Handler) ListForOwner(c *gin.Context) {
	state := booking.ParseState(c.Query("state"))

	bookings, err := h.service.ListForOwner(c.Request.Context(), identity.CallerID(c), state)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(toResponses(bookings)))
}

func toResponses(bookings []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = NewBookingResponse(b)
	}
	return out
}
