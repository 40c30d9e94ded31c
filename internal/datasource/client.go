// Package datasource fetches listings from the listing service.
package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/pkg/logger"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	privilegedPath = "/listings"
	publicPath     = "/listings/public"
	loginPath      = "/login"
)

// Options configures the HTTP transport
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryWait  time.Duration
	Debug      bool
}

// Client performs listing fetches against the listing service
type Client struct {
	client  *resty.Client
	baseURL string
}

// NewClient creates a new listing service client
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = 200 * time.Millisecond
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryMaxWaitTime(2 * time.Second)

	client.AddRetryCondition(retryCondition)
	client.SetDebug(opts.Debug)

	return &Client{client: client, baseURL: opts.BaseURL}
}

// retry transport failures and 5xx; auth rejections and 4xx are final
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	return r.StatusCode() >= 500
}

// Fetch retrieves the listing collection filtered server-side by term.
// An empty credential queries the public endpoint; a non-empty one is sent
// as a bearer token to the privileged endpoint.
func (c *Client) Fetch(ctx context.Context, term, credential string) ([]models.Listing, error) {
	path := publicPath
	if credential != "" {
		path = privilegedPath
	}

	requestID := uuid.NewString()
	req := c.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetQueryParam("search", term)
	if credential != "" {
		req.SetAuthToken(credential)
	}

	start := time.Now()
	resp, err := req.Get(path)
	if err := classify(resp, err, "GET "+path); err != nil {
		logger.GlobalLogger.Debugf("Listing fetch failed: request_id=%s, path=%s, search=%q, error=%v", requestID, path, term, err)
		return nil, err
	}

	listings, err := DecodeListings(resp.Body())
	if err != nil {
		return nil, err
	}
	logger.GlobalLogger.Debugf("Listing fetch completed: request_id=%s, path=%s, search=%q, count=%d, latency=%v",
		requestID, path, term, len(listings), time.Since(start))
	return listings, nil
}

// Login exchanges email and password for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var details models.TokenDetails
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post(loginPath)
	if err := classify(resp, err, "POST "+loginPath); err != nil {
		return "", err
	}
	if err := json.Unmarshal(resp.Body(), &details); err != nil {
		return "", apperrors.NewMalformedDataError("failed to decode login response", err)
	}
	if details.Token == "" {
		return "", apperrors.NewMalformedDataError("login response carried no token", nil)
	}
	return details.Token, nil
}

// classify maps a transport result onto the error taxonomy
func classify(resp *resty.Response, err error, op string) error {
	if err != nil {
		return apperrors.NewNetworkError(fmt.Sprintf("%s: transport failure", op), err)
	}
	if resp == nil {
		return apperrors.NewNetworkError(fmt.Sprintf("%s: no response", op), nil)
	}
	status := resp.StatusCode()
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperrors.NewAuthError(fmt.Sprintf("%s: credential rejected: %s", op, resp.Status()), status)
	case status < 200 || status >= 300:
		return apperrors.NewServerError(fmt.Sprintf("%s: unexpected status %s, response: %s", op, resp.Status(), truncate(resp.String(), 256)), status)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
