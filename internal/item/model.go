package item

import (
	"net/http"
	"time"

	"github.com/shareit-go/shareit/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "item not found")
	ErrNotOwner            = apperror.New(http.StatusForbidden, "only the item owner may edit the item")
	ErrNameRequired        = apperror.New(http.StatusBadRequest, "item name is required")
	ErrDescriptionRequired = apperror.New(http.StatusBadRequest, "item description is required")
	ErrAvailableRequired   = apperror.New(http.StatusBadRequest, "item availability flag is required")
	ErrCommentTextRequired = apperror.New(http.StatusBadRequest, "comment text is required")
	ErrCommentNotAllowed   = apperror.New(http.StatusBadRequest, "only a user with a finished booking of the item may comment")
)

// Item is a shareable object. The owner and the originating item request
// are weak references by id.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	OwnerName   string
	RequestID   *int64
}

// Comment is feedback left by a user who has finished a booking of the item.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// Details is the owner-facing item view with booking context attached.
type Details struct {
	Item
	LastBooking *time.Time
	NextBooking *time.Time
	Comments    []*Comment
}
