package gateway

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shareit-go/shareit/internal/identity"
	"github.com/shareit-go/shareit/internal/pkg/request"
	"github.com/shareit-go/shareit/internal/pkg/response"
)

// Handler validates request shape at the edge and forwards everything
// that passes to the backend server.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) relay(c *gin.Context, status int, body []byte) {
	c.Data(status, "application/json", body)
}

func (h *Handler) forward(c *gin.Context, method, path string, userID int64, query url.Values, body any) {
	status, data, err := h.client.Forward(c.Request.Context(), method, path, userID, query, body)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.relay(c, status, data)
}

// ===== Users =====

type createUserBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type updateUserBody struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (h *Handler) CreateUser(c *gin.Context) {
	var body createUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if trimmed := strings.TrimSpace(body.Email); trimmed == "" || !strings.Contains(trimmed, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email must be non-blank and contain @"})
		return
	}
	h.forward(c, http.MethodPost, "/users", 0, nil, body)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var body updateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.Email != nil {
		if trimmed := strings.TrimSpace(*body.Email); trimmed == "" || !strings.Contains(trimmed, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email must be non-blank and contain @"})
			return
		}
	}
	h.forward(c, http.MethodPatch, "/users/"+strconv.FormatInt(id, 10), 0, nil, body)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, http.MethodGet, "/users/"+strconv.FormatInt(id, 10), 0, nil, nil)
}

func (h *Handler) ListUsers(c *gin.Context) {
	h.forward(c, http.MethodGet, "/users", 0, nil, nil)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), 0, nil, nil)
}

// ===== Items =====

type createItemBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type updateItemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type createCommentBody struct {
	Text string `json:"text"`
}

func (h *Handler) CreateItem(c *gin.Context) {
	var body createItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	switch {
	case body.Available == nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "item availability flag is required"})
	case strings.TrimSpace(body.Name) == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "item name is required"})
	case strings.TrimSpace(body.Description) == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "item description is required"})
	default:
		h.forward(c, http.MethodPost, "/items", identity.CallerID(c), nil, body)
	}
}

func (h *Handler) UpdateItem(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var body updateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.forward(c, http.MethodPatch, "/items/"+strconv.FormatInt(id, 10), identity.CallerID(c), nil, body)
}

func (h *Handler) GetItem(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, http.MethodGet, "/items/"+strconv.FormatInt(id, 10), identity.CallerID(c), nil, nil)
}

func (h *Handler) ListItems(c *gin.Context) {
	h.forward(c, http.MethodGet, "/items", identity.CallerID(c), nil, nil)
}

func (h *Handler) SearchItems(c *gin.Context) {
	query := url.Values{"text": {c.Query("text")}}
	h.forward(c, http.MethodGet, "/items/search", identity.CallerID(c), query, nil)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, http.MethodDelete, "/items/"+strconv.FormatInt(id, 10), identity.CallerID(c), nil, nil)
}

func (h *Handler) AddComment(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var body createCommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment text is required"})
		return
	}
	h.forward(c, http.MethodPost, "/items/"+strconv.FormatInt(id, 10)+"/comment", identity.CallerID(c), nil, body)
}

// ===== Bookings =====

type createBookingBody struct {
	ItemID int64      `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var body createBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	switch {
	case body.ItemID <= 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required"})
	case body.Start == nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking start is required"})
	case body.End == nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking end is required"})
	default:
		h.forward(c, http.MethodPost, "/bookings", identity.CallerID(c), nil, body)
	}
}

func (h *Handler) ApproveBooking(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved query parameter must be a boolean"})
		return
	}
	query := url.Values{"approved": {c.Query("approved")}}
	h.forward(c, http.MethodPatch, "/bookings/"+strconv.FormatInt(id, 10), identity.CallerID(c), query, nil)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, http.MethodGet, "/bookings/"+strconv.FormatInt(id, 10), identity.CallerID(c), nil, nil)
}

func (h *Handler) ListBookings(c *gin.Context) {
	h.forward(c, http.MethodGet, "/bookings", identity.CallerID(c), stateQuery(c), nil)
}

func (h *Handler) ListOwnerBookings(c *gin.Context) {
	h.forward(c, http.MethodGet, "/bookings/owner", identity.CallerID(c), stateQuery(c), nil)
}

// stateQuery passes the state filter through untouched. Unrecognized
// values are the server's permissive-default concern, not the edge's.
func stateQuery(c *gin.Context) url.Values {
	if state := c.Query("state"); state != "" {
		return url.Values{"state": {state}}
	}
	return nil
}

// ===== Item requests =====

type createRequestBody struct {
	Description string `json:"description"`
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var body createRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(body.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request description is required"})
		return
	}
	h.forward(c, http.MethodPost, "/requests", identity.CallerID(c), nil, body)
}

func (h *Handler) GetRequest(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, http.MethodGet, "/requests/"+strconv.FormatInt(id, 10), identity.CallerID(c), nil, nil)
}

func (h *Handler) ListOwnRequests(c *gin.Context) {
	h.forward(c, http.MethodGet, "/requests", identity.CallerID(c), nil, nil)
}

func (h *Handler) ListOtherRequests(c *gin.Context) {
	h.forward(c, http.MethodGet, "/requests/all", identity.CallerID(c), nil, nil)
}
