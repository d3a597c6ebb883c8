package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/shareit-go/shareit/internal/identity"
	"github.com/shareit-go/shareit/internal/pkg/apperror"
)

// Client forwards validated requests to the backend server, carrying
// the caller-id header through unchanged.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *Breaker
	log     zerolog.Logger
}

func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		breaker: NewBreaker(5, 30*time.Second, time.Minute),
		log:     log.With().Str("component", "gateway_client").Logger(),
	}
}

// Forward sends the request downstream and returns the backend's status
// code and raw body, both relayed to the caller verbatim.
func (c *Client) Forward(ctx context.Context, method, path string, userID int64, query url.Values, body any) (int, []byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode forwarded body failed: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return 0, nil, fmt.Errorf("build forwarded request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set(identity.Header, strconv.FormatInt(userID, 10))
	}

	var status int
	var respBody []byte

	err = c.breaker.Execute(func() error {
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		status = resp.StatusCode
		respBody = data
		return nil
	})
	if err != nil {
		if err == ErrBreakerOpen {
			return 0, nil, err
		}
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("forward failed")
		return 0, nil, apperror.Wrap(err, http.StatusBadGateway, "failed to reach shareit server")
	}

	return status, respBody, nil
}
