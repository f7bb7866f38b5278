package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Envelope is the wrapper every remote API response comes in.
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// Pagination is accepted on list responses and otherwise ignored.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func (e Envelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// Client talks to the portfolio REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends the request and decodes data into out when out is not nil.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "%s: unable to encode request", op)
		}
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrapf(err, "%s: unable to create request", op)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s: %s %s", op, method, path)
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "%s: unable to read response", op)
	}

	var env Envelope
	decodeErr := json.Unmarshal(raw, &env)
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := http.StatusText(res.StatusCode)
		if decodeErr == nil && env.text() != "" {
			msg = env.text()
		}
		return &Error{Op: op, StatusCode: res.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return &Error{Op: op, StatusCode: res.StatusCode, Message: "invalid response body"}
	}
	if !env.Success {
		msg := env.text()
		if msg == "" {
			msg = "request was not successful"
		}
		return &Error{Op: op, StatusCode: res.StatusCode, Message: msg}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Op: op, StatusCode: res.StatusCode, Message: "unexpected data shape"}
	}
	return nil
}
