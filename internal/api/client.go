// Package api is the HTTP gateway layer for the barbershop server.
// One file per resource; all calls share the cookie-backed Client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// ErrUnreachable marks transport-level failures: no response was
// received at all. Callers use it to tell connection problems apart
// from requests the server actively rejected.
var ErrUnreachable = errors.New("servidor inacessível")

// genericRejection is shown when a rejected request carries no error text.
const genericRejection = "Erro ao processar requisição"

// RequestError is an application-level rejection: the server answered
// with a non-2xx status. Message carries the server's error text.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("servidor recusou a requisição (%d): %s", e.Status, e.Message)
}

// Client issues requests against the barbershop API. The cookie jar
// carries the server's session cookie between calls.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

// get issues a GET request and decodes the response body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// send issues a request with a JSON body and decodes the response into out.
func (c *Client) send(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// do executes the request and maps the two failure kinds: transport
// errors wrap ErrUnreachable, non-2xx statuses become a *RequestError
// carrying the body's error text (or a generic fallback).
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: lendo resposta: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var rejection errorResponse
		_ = json.Unmarshal(data, &rejection)
		if rejection.Error == "" {
			rejection.Error = genericRejection
		}
		return &RequestError{Status: resp.StatusCode, Message: rejection.Error}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("unmarshalling response: %w", err)
		}
	}

	return nil
}

// mutate issues a mutating request and returns the server's
// confirmation message.
func (c *Client) mutate(ctx context.Context, method, path string, body any) (string, error) {
	var resp mutationResponse
	if err := c.send(ctx, method, path, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
