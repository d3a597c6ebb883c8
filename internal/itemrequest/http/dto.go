package http

import (
	"time"

	"github.com/shareit-go/shareit/internal/itemrequest"
)

type CreateRequestBody struct {
	Description string `json:"description"`
}

type RequestResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestorId"`
	Created     time.Time `json:"created"`
}

func NewRequestResponse(r *itemrequest.Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		RequestorID: r.RequestorID,
		Created:     r.Created,
	}
}
