// Package apiclient talks to the upstream warehouse REST API using the fiber
// HTTP agent.
package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const DefaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	Token  string
	// MessageKeys are the body fields tried, in order, for an error message.
	// Defaults to "message".
	MessageKeys []string
}

// Error is a failed upstream call. Status is 0 when no response arrived.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("request failed with status code %d", e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Do sends the request and returns the body of a 2xx response.
func (c *Client) Do(r Request) ([]byte, error) {
	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(r.Method)
	req.SetRequestURI(c.baseURL + r.Path)

	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if len(r.Query) > 0 {
		a.QueryString(r.Query.Encode())
	}
	if r.Token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+r.Token)
	}
	if r.Body != nil {
		a.JSON(r.Body)
	}
	a.Timeout(c.timeout)

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return nil, &Error{Err: err}
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, &Error{Status: code, Err: errors.Join(errs...)}
	}
	if code < 200 || code > 299 {
		keys := r.MessageKeys
		if len(keys) == 0 {
			keys = []string{"message"}
		}
		return nil, &Error{Status: code, Message: bodyMessage(body, keys)}
	}
	return body, nil
}

func (c *Client) Get(path string, query url.Values, token string) ([]byte, error) {
	return c.Do(Request{Method: fiber.MethodGet, Path: path, Query: query, Token: token})
}

func (c *Client) Post(path string, body interface{}, token string) ([]byte, error) {
	return c.Do(Request{Method: fiber.MethodPost, Path: path, Body: body, Token: token})
}

func (c *Client) Delete(path string, token string) error {
	_, err := c.Do(Request{Method: fiber.MethodDelete, Path: path, Token: token})
	return err
}

func bodyMessage(body []byte, keys []string) string {
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// UpstreamMessage returns the message the upstream put in an error body, if any.
func UpstreamMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return ""
}

// MessageOr is the text shown for a failed call: the upstream message, else
// the transport error, else fallback.
func MessageOr(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Message != "" {
			return ae.Message
		}
		if ae.Err != nil {
			return ae.Err.Error()
		}
		return fallback
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
