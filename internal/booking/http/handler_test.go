package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit-go/shareit/internal/booking"
	"github.com/shareit-go/shareit/internal/identity"
)

type stubService struct {
	booking *booking.Booking
	err     error

	lastCallerID int64
	lastState    booking.State
	lastApproved bool
	lastCreate   booking.CreateRequest
}

func (s *stubService) Create(_ context.Context, bookerID int64, req booking.CreateRequest) (*booking.Booking, error) {
	s.lastCallerID = bookerID
	s.lastCreate = req
	return s.booking, s.err
}

func (s *stubService) Approve(_ context.Context, actorID, _ int64, approved bool) (*booking.Booking, error) {
	s.lastCallerID = actorID
	s.lastApproved = approved
	return s.booking, s.err
}

func (s *stubService) GetForParticipant(_ context.Context, actorID, _ int64) (*booking.Booking, error) {
	s.lastCallerID = actorID
	return s.booking, s.err
}

func (s *stubService) ListForBooker(_ context.Context, bookerID int64, state booking.State) ([]*booking.Booking, error) {
	s.lastCallerID = bookerID
	s.lastState = state
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

func (s *stubService) ListForOwner(_ context.Context, ownerID int64, state booking.State) ([]*booking.Booking, error) {
	s.lastCallerID = ownerID
	s.lastState = state
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

func newTestRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), NewHandler(svc), identity.Required())
	return r
}

func perform(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(identity.Header, "7")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleBooking() *booking.Booking {
	return &booking.Booking{
		ID:          5,
		Start:       time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
		End:         time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC),
		Status:      booking.StatusWaiting,
		ItemID:      10,
		ItemName:    "drill",
		ItemOwnerID: 1,
		BookerID:    7,
		BookerName:  "bob",
		BookerEmail: "bob@example.com",
	}
}

func TestCreateBookingHandler(t *testing.T) {
	t.Run("valid body reaches the service", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := perform(r, http.MethodPost, "/bookings",
			`{"itemId":10,"start":"2025-07-01T10:00:00Z","end":"2025-07-02T10:00:00Z"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), svc.lastCallerID)
		assert.Equal(t, time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC), svc.lastCreate.Start)
		assert.Contains(t, w.Body.String(), `"status":"WAITING"`)
		assert.Contains(t, w.Body.String(), `"name":"drill"`)
	})

	t.Run("null timestamps reach the service as zero values", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := perform(r, http.MethodPost, "/bookings", `{"itemId":10,"start":null,"end":null}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, svc.lastCreate.Start.IsZero())
		assert.True(t, svc.lastCreate.End.IsZero())
	})

	t.Run("missing itemId is rejected at the edge", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := perform(r, http.MethodPost, "/bookings",
			`{"start":"2025-07-01T10:00:00Z","end":"2025-07-02T10:00:00Z"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.lastCallerID)
	})

	t.Run("service error is mapped", func(t *testing.T) {
		svc := &stubService{err: booking.ErrItemUnavailable}
		r := newTestRouter(svc)

		w := perform(r, http.MethodPost, "/bookings",
			`{"itemId":10,"start":"2025-07-01T10:00:00Z","end":"2025-07-02T10:00:00Z"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestApproveBookingHandler(t *testing.T) {
	t.Run("approved flag is forwarded", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := perform(r, http.MethodPatch, "/bookings/5?approved=true", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, svc.lastApproved)
	})

	t.Run("non-boolean approved", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := perform(r, http.MethodPatch, "/bookings/5?approved=maybe", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := perform(r, http.MethodPatch, "/bookings/abc?approved=true", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBookingHandler(t *testing.T) {
	t.Run("forbidden for strangers", func(t *testing.T) {
		svc := &stubService{err: booking.ErrNotParticipant}
		r := newTestRouter(svc)

		w := perform(r, http.MethodGet, "/bookings/5", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing caller header", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/bookings/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.lastCallerID)
	})
}

func TestListBookingsHandler(t *testing.T) {
	t.Run("state query is parsed, empty list is an array", func(t *testing.T) {
		svc := &stubService{}
		r := newTestRouter(svc)

		w := perform(r, http.MethodGet, "/bookings?state=past", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, booking.StatePast, svc.lastState)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("unknown state falls back to ALL", func(t *testing.T) {
		svc := &stubService{}
		r := newTestRouter(svc)

		w := perform(r, http.MethodGet, "/bookings/owner?state=bogus", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, booking.StateAll, svc.lastState)
	})
}
