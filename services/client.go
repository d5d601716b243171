package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snsihub/showcase-portal-backend/errs"
)

// Client talks to the collaborator backend. The portal consumes its REST
// interface and owns none of its data; every durable operation lands there.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient builds a client for the backend rooted at baseURL
// (e.g. "http://127.0.0.1:8000/api/projects").
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  log.With().Str("handlerName", "backendClient").Logger(),
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// doJSON performs one request and decodes a 2xx JSON body into out (when out
// is non-nil). Non-2xx responses and network faults are mapped onto the
// transport error channel; they never escape as raw errors.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.NewTransportError(errs.GenericTransportMessage, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return errs.NewTransportError(errs.GenericTransportMessage, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// do sends a prepared request and interprets the outcome. Exactly one
// network call happens per invocation; there are no retries.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("path", req.URL.Path).Msg("backend request failed")
		return errs.NewTransportError(errs.GenericTransportMessage, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewTransportError(errs.GenericTransportMessage, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp.StatusCode, bodyBytes)
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			c.logger.Warn().Err(err).Str("path", req.URL.Path).Msg("malformed backend response")
			return errs.NewTransportError(errs.GenericTransportMessage, err)
		}
	}
	return nil
}

// errorFromResponse surfaces the server-provided message when the error body
// carries one, otherwise the generic fallback.
func (c *Client) errorFromResponse(status int, body []byte) error {
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Error != "" {
		return errs.NewTransportError(errBody.Error, fmt.Errorf("backend returned status %d", status))
	}
	return errs.NewTransportError(errs.GenericTransportMessage, fmt.Errorf("backend returned status %d", status))
}
