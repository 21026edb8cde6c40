package careerbooster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

const contentType = "application/json"

// setHeaders stamps the common headers. The Authorization header is added
// only when a token is available; unauthenticated endpoints stay clean.
func (c *Client) setHeaders(req *http.Request) *http.Request {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", contentType)

	return req
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("method", req.Method), zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return resp, nil
}

// getJSON makes a GET request and decodes a 2xx body into target. Non-2xx
// answers come back mapped through the error taxonomy.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.request(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if err := statusError(resp.StatusCode, data); err != nil {
		return err
	}

	if target == nil {
		return nil
	}

	return json.Unmarshal(data, target)
}

// postJSON makes a POST request with a JSON body and decodes a 2xx answer
// into target. The raw body of a failed answer is preserved in the error.
func (c *Client) postJSON(ctx context.Context, path string, payload, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.request(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if err := statusError(resp.StatusCode, data); err != nil {
		return err
	}

	if target == nil {
		return nil
	}

	return json.Unmarshal(data, target)
}

// statusError maps a non-2xx status to the error taxonomy. The body is kept
// verbatim for ServerError so diagnostics survive without a retry.
func statusError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	switch status {
	case http.StatusUnauthorized:
		return &AuthError{Message: serverMessage(body)}
	case http.StatusRequestEntityTooLarge:
		return &PayloadTooLargeError{Limit: MaxUploadSize}
	case http.StatusUnsupportedMediaType:
		return &UnsupportedMediaTypeError{}
	default:
		return &ServerError{StatusCode: status, Body: string(body)}
	}
}

// serverMessage pulls the human readable message the backend puts into error
// bodies. Falls back to the raw body when the shape is unexpected.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return string(body)
}
