package http

import (
	"time"

	"github.com/shareit-go/shareit/internal/booking"
	itemHttp "github.com/shareit-go/shareit/internal/item/http"
	userHttp "github.com/shareit-go/shareit/internal/user/http"
)

// Start and End are pointers so an absent or null timestamp is told
// apart from a present zero value.
type CreateBookingRequest struct {
	ItemID int64      `json:"itemId" binding:"required"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

type BookingResponse struct {
	ID     int64            `json:"id"`
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`
	Status string           `json:"status"`
	Booker userHttp.UserTag `json:"booker"`
	Item   itemHttp.ItemTag `json:"item"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Booker: userHttp.UserTag{ID: b.BookerID, Name: b.BookerName, Email: b.BookerEmail},
		Item:   itemHttp.ItemTag{ID: b.ItemID, Name: b.ItemName},
	}
}
