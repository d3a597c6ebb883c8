package booking

import (
	"net/http"
	"time"

	"github.com/shareit-go/shareit/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrItemUnavailable  = apperror.New(http.StatusConflict, "item is not available for booking")
	ErrStartRequired    = apperror.New(http.StatusBadRequest, "booking start is required")
	ErrEndRequired      = apperror.New(http.StatusBadRequest, "booking end is required")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "booking start must be before end")
	ErrNotOwner         = apperror.New(http.StatusForbidden, "only the item owner may approve the booking")
	ErrNotParticipant   = apperror.New(http.StatusForbidden, "only the booker or the item owner may view the booking")
)

// Status is the approval state of a booking. WAITING is initial;
// APPROVED and REJECTED are terminal, reached only through the item
// owner's approval decision.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking reserves an item for a time window [Start, End). Item and
// booker are weak references by id; the name/email columns are joined-in
// snapshots for responses.
type Booking struct {
	ID          int64
	Start       time.Time
	End         time.Time
	Status      Status
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	BookerName  string
	BookerEmail string
}
