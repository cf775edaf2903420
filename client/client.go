package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/ezkit-shop/storefront/config"
	"github.com/ezkit-shop/storefront/utils"
)

// Client talks to the storefront backend. Every request carries the session
// cookie the backend set at login; no token is handled directly.
type Client struct {
	baseURL string
	http    *http.Client
}

// APIError is a non-2xx response from the backend, carrying the
// server-supplied message and HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsStatus reports whether err is an APIError with the given status code
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}

// IsUnauthorized reports whether err is a 401 response
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports whether err is a 404 response
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// New creates a client from configuration. The cookie jar holds the session
// cookie across calls, which is what makes the requests credentialed.
func New(cfg *config.Config) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, utils.WrapError(err, "failed to create cookie jar")
	}

	return &Client{
		baseURL: cfg.APIBaseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
	}, nil
}

// do performs a JSON request against the backend. On non-2xx it parses the
// error body's message and returns an APIError; transport failures come back
// wrapped. When out is non-nil the response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	return c.doWithHeaders(ctx, method, path, nil, body, out)
}

func (c *Client) doWithHeaders(ctx context.Context, method, path string, headers map[string]string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return utils.WrapError(err, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return utils.WrapError(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		utils.LogAPIFailure(method, path, err)
		return utils.WrapError(err, "request failed")
	}
	defer resp.Body.Close()
	utils.LogAPIRequest(method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return utils.WrapError(err, "failed to decode response")
		}
	}
	return nil
}

// doMultipart uploads a single file field. Content-Type is set by the
// multipart writer, not the JSON default.
func (c *Client) doMultipart(ctx context.Context, method, path, field, filename string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return utils.WrapError(err, "failed to build upload form")
	}
	if _, err := io.Copy(part, file); err != nil {
		return utils.WrapError(err, "failed to read upload file")
	}
	if err := writer.Close(); err != nil {
		return utils.WrapError(err, "failed to finalize upload form")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return utils.WrapError(err, "failed to build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		utils.LogAPIFailure(method, path, err)
		return utils.WrapError(err, "request failed")
	}
	defer resp.Body.Close()
	utils.LogAPIRequest(method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return utils.WrapError(err, "failed to decode response")
		}
	}
	return nil
}

func parseAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    utils.ErrRequestFailed,
	}
	var errBody struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Message != "" {
		apiErr.Message = errBody.Message
	}
	return apiErr
}
