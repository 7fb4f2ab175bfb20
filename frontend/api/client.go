package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the TubularTutor REST API. It holds no session state:
// the bearer token is passed per call so one client serves every request.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
	}
}

// Do issues one request and decodes the JSON response into out when out is
// non-nil. A response without a JSON content type counts as empty, as does a
// body that fails to decode. Non-2xx statuses come back as *Error.
func (c *Client) Do(ctx context.Context, token, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	isJSON := strings.Contains(res.Header.Get("Content-Type"), "application/json")

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := &Error{Status: res.StatusCode}
		if isJSON {
			// A malformed error body still yields a usable Error value.
			json.Unmarshal(raw, &apiErr.Data)
		}
		if msg, ok := apiErr.Data["error"].(string); ok && msg != "" {
			apiErr.Message = msg
		} else if res.StatusCode == http.StatusNotFound {
			apiErr.Message = fmt.Sprintf("Not found. Is the TubularTutor server running at %s?", c.BaseURL)
		} else {
			apiErr.Message = "Request failed"
		}
		return apiErr
	}

	if out != nil && isJSON && len(raw) > 0 {
		// Lenient contract: a body that does not parse is treated as
		// empty, not as a failure.
		json.Unmarshal(raw, out)
	}
	return nil
}
