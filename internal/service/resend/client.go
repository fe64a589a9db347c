package resend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"TradingHours/internal/domain/models"
	"TradingHours/internal/service/ratelimit"
	xhttp "TradingHours/pkg/http"
)

const (
	DefaultBaseURL = "https://api.resend.com"
	// Resend's default account quota.
	DefaultRatePerSecond = 2.0

	limiterKey = "resend"
)

var ErrMissingAPIKey = errors.New("resend: api key is required")

type Option func(*Client)

// Client sends email through the Resend REST API.
type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	rate    float64
	http    *xhttp.Client
	limiter *ratelimit.Limiter
}

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimit caps outbound sends per second; zero or negative disables throttling.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) { c.rate = perSecond }
}

// WithLimiter shares a limiter across clients.
func WithLimiter(l *ratelimit.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: 15 * time.Second,
		rate:    DefaultRatePerSecond,
	}
	for _, o := range opts {
		o(c)
	}
	if c.limiter == nil {
		c.limiter = ratelimit.New()
	}
	c.http = xhttp.NewClient(xhttp.WithTimeout(c.timeout))
	return c, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type apiError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// Send delivers one email and returns the provider message id.
func (c *Client) Send(ctx context.Context, e *models.Email) (string, error) {
	if c.rate > 0 {
		burst := c.rate
		if burst < 1 {
			burst = 1
		}
		if err := c.limiter.Wait(ctx, limiterKey, burst, c.rate); err != nil {
			return "", fmt.Errorf("resend: rate limit wait: %w", err)
		}
	}

	var out sendResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/emails",
		Headers: map[string]string{
			"Authorization": "Bearer " + c.apiKey,
			"Content-Type":  "application/json",
		},
		Body: sendRequest{
			From:    e.From,
			To:      []string{e.To},
			Subject: e.Subject,
			Text:    e.Text,
			HTML:    e.HTML,
		},
	}, &out)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) {
			return "", fmt.Errorf("resend: send to %s: status %d: %s", e.To, se.Code, errorMessage(se.Body))
		}
		return "", fmt.Errorf("resend: send to %s: %w", e.To, err)
	}
	return out.ID, nil
}

func errorMessage(body []byte) string {
	var ae apiError
	if err := json.Unmarshal(body, &ae); err == nil && ae.Message != "" {
		return ae.Message
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return "empty response"
}
