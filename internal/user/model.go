package user

import (
	"net/http"

	"github.com/shareit-go/shareit/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailTaken   = apperror.New(http.StatusConflict, "email is already in use")
	ErrInvalidEmail = apperror.New(http.StatusBadRequest, "email must be non-blank and contain @")
)

// User is a member of the sharing service, acting as item owner, booker
// or requestor.
type User struct {
	ID    int64
	Name  string
	Email string
}
