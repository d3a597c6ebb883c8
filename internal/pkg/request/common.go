package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-go/shareit/internal/pkg/apperror"
)

// ErrBadID is returned when a path parameter is not a numeric identifier.
var ErrBadID = apperror.New(http.StatusBadRequest, "identifier must be a positive integer")

// ID parses a numeric path parameter.
func ID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadID
	}
	return id, nil
}
