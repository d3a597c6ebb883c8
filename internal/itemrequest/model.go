package itemrequest

import (
	"net/http"
	"time"

	"github.com/shareit-go/shareit/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "item request not found")
	ErrDescriptionRequired = apperror.New(http.StatusBadRequest, "request description is required")
)

// Request is a user's ask for an item that is not yet offered. Items
// created in response reference the request by id.
type Request struct {
	ID            int64
	Description   string
	RequestorID   int64
	RequestorName string
	Created       time.Time
}
