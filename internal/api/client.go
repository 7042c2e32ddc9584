package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds every request unless the configuration overrides it
const DefaultTimeout = 15 * time.Second

// The backend accepts the profile image under a fixed part name and filename.
const (
	imageFieldName   = "image"
	imageFileName    = "profile.jpg"
	imageContentType = "image/jpeg"
)

// TokenProvider supplies the bearer token attached to outgoing requests.
// An empty token means the call goes out unauthenticated.
type TokenProvider interface {
	Token() (string, error)
}

// Client is the single point of egress to the backend. It attaches the
// persisted bearer token to every request so no caller manages headers itself.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	logger  *logrus.Logger
}

// NewClient creates a client for the backend at baseURL. The token provider
// is required; pass a zero timeout to use the default.
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, logger *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete performs a DELETE request. The response body is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, out)
}

// PostMultipart uploads the file at localPath as a multipart form under the
// fixed image field name and decodes the JSON response into out.
func (c *Client) PostMultipart(ctx context.Context, path, localPath string, out any) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, imageFieldName, imageFileName))
	header.Set("Content-Type", imageContentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", localPath, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, out)
}

// send attaches request metadata and the bearer token, executes the request,
// classifies failures and decodes a successful JSON response into out.
func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.tokens.Token()
	if err != nil {
		c.logger.WithError(err).Warn("failed to read auth token, sending request without it")
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	requestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	if err != nil {
		he := &httpError{noResponse: true, cause: err}
		outcome := "network"

		var ne net.Error
		if (errors.As(err, &ne) && ne.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
			he = &httpError{timeout: true, cause: err}
			outcome = "timeout"
		}

		requestsTotal.WithLabelValues(req.Method, outcome).Inc()
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		}).Debug("request failed")
		return he
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(req.Method, "error").Inc()
		return &httpError{status: resp.StatusCode, cause: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		requestsTotal.WithLabelValues(req.Method, "error").Inc()
		he := &httpError{
			status: resp.StatusCode,
			cause:  fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
			he.serverMessage = payload.Message
		}
		return he
	}

	requestsTotal.WithLabelValues(req.Method, "ok").Inc()

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &httpError{status: resp.StatusCode, cause: fmt.Errorf("failed to decode response: %w", err)}
		}
	}
	return nil
}
