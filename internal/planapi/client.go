package planapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/pkg/memcache"
	"tripdesk/pkg/notify"
	"tripdesk/pkg/utils"
)

const (
	defaultTimeout     = 30 * time.Second
	maxRefreshAttempts = 3

	genericErrorMessage   = "Something went wrong."
	sessionExpiredMessage = "Session expired. Please login again."
	noRefreshTokenMessage = "No refresh token found. Please login again."
)

// RequestTransform mutates an outbound request before it is sent.
type RequestTransform func(*http.Request) error

// ResponseHandler inspects a response and may replace it, e.g. by
// refreshing credentials and replaying the original request.
type ResponseHandler func(ctx context.Context, method, path string, payload []byte, res *http.Response) (*http.Response, error)

// errorBody is the failure envelope the planning API sends.
type errorBody struct {
	Message      string `json:"message"`
	TokenExpired bool   `json:"tokenExpired"`
}

type refreshResponse struct {
	Tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"tokens"`
}

// Client talks to the remote planning API. All retry state is
// per-instance and mutex-guarded: the refresh counter bounds one
// authentication episode, not the process lifetime.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   *memcache.SessionTokens
	notifier notify.Notifier
	log      *logrus.Logger

	defaultAuthorization string

	transforms []RequestTransform
	handlers   []ResponseHandler

	mu         sync.Mutex
	retryCount int
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithDefaultAuthorization sets the Authorization header used when no
// access token is in the session store.
func WithDefaultAuthorization(header string) Option {
	return func(c *Client) { c.defaultAuthorization = header }
}

func New(baseURL string, tokens *memcache.SessionTokens, notifier notify.Notifier, logger *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		tokens:   tokens,
		notifier: notifier,
		log:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.transforms = []RequestTransform{c.attachBearer}
	c.handlers = []ResponseHandler{c.refreshOnAuthFailure}
	return c
}

// SubmitPlan posts trip parameters and decodes the returned plan.
func (c *Client) SubmitPlan(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResult, error) {
	var plan response_models.PlanResult
	if err := c.Do(ctx, http.MethodPost, "/travel/", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// SendFeedback forwards either feedback variant.
func (c *Client) SendFeedback(ctx context.Context, payload any) error {
	return c.Do(ctx, http.MethodPost, "/travel/feedback", payload, nil)
}

// SendPlanEmail asks the planning API to mail the plan out.
func (c *Client) SendPlanEmail(ctx context.Context, email string, plan response_models.PlanResult) error {
	body := request_models.SendEmailRequest{Email: email, Data: plan}
	return c.Do(ctx, http.MethodPost, "/travel/sendEmail", body, nil)
}

// Do sends one JSON request through the transform and handler chains.
// body and out may be nil. Failures map onto the error taxonomy:
// *utils.NetworkError, *utils.HTTPError, utils.ErrSessionExpired.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = b
	}

	res, err := c.roundTrip(ctx, method, path, payload)
	if err != nil {
		c.notifier.Error(genericErrorMessage)
		c.resetRetries()
		return err
	}
	for _, handle := range c.handlers {
		res, err = handle(ctx, method, path, payload, res)
		if err != nil {
			return err
		}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		c.resetRetries()
		return &utils.NetworkError{Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		message := eb.Message
		if message == "" {
			message = genericErrorMessage
		}
		c.notifier.Error(message)
		c.resetRetries()
		return &utils.HTTPError{Status: res.StatusCode, Message: message}
	}

	c.resetRetries()
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for _, transform := range c.transforms {
		if err := transform(req); err != nil {
			return nil, err
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &utils.NetworkError{Err: err}
	}
	return res, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// attachBearer is the first transform stage: session access token when
// present, otherwise the configured default header if one exists.
func (c *Client) attachBearer(req *http.Request) error {
	if token := c.tokens.Access(); token != "" {
		if exp, err := utils.TokenExpiry(token); err == nil && time.Now().After(exp) {
			c.log.WithField("expired_at", exp).Debug("access token already expired, sending anyway")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	} else if c.defaultAuthorization != "" {
		req.Header.Set("Authorization", c.defaultAuthorization)
	}
	return nil
}

// refreshOnAuthFailure is the response handler for one authentication
// episode: on 401 with the server's tokenExpired flag it exchanges the
// refresh token and replays the original request, at most
// maxRefreshAttempts times before giving up terminally.
func (c *Client) refreshOnAuthFailure(ctx context.Context, method, path string, payload []byte, res *http.Response) (*http.Response, error) {
	expired, err := c.tokenExpiredResponse(res)
	if err != nil {
		return nil, err
	}
	if !expired {
		return res, nil
	}

	for c.attemptsLeft() {
		refreshToken := c.tokens.Refresh()
		if refreshToken == "" {
			c.resetRetries()
			c.notifier.Error(noRefreshTokenMessage)
			return nil, utils.ErrSessionExpired
		}

		access, refresh, err := c.exchangeRefreshToken(ctx, refreshToken)
		if err != nil {
			c.log.Warnf("token refresh failed: %v", err)
			c.resetRetries()
			c.notifier.Error(sessionExpiredMessage)
			return nil, utils.ErrSessionExpired
		}
		c.tokens.Replace(access, refresh)
		c.bumpRetries()

		res.Body.Close()
		res, err = c.roundTrip(ctx, method, path, payload)
		if err != nil {
			c.resetRetries()
			return nil, err
		}
		expired, err = c.tokenExpiredResponse(res)
		if err != nil {
			return nil, err
		}
		if !expired {
			return res, nil
		}
	}

	res.Body.Close()
	c.resetRetries()
	c.notifier.Error(sessionExpiredMessage)
	return nil, utils.ErrSessionExpired
}

// tokenExpiredResponse reports whether res is a 401 with the server's
// tokenExpired flag, leaving the body re-readable for later stages.
func (c *Client) tokenExpiredResponse(res *http.Response) (bool, error) {
	if res.StatusCode != http.StatusUnauthorized {
		return false, nil
	}

	raw, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		c.resetRetries()
		return false, &utils.NetworkError{Err: err}
	}
	res.Body = io.NopCloser(bytes.NewReader(raw))

	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	return eb.TokenExpired, nil
}

func (c *Client) exchangeRefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	body, err := json.Marshal(map[string]string{"token": refreshToken})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("admin/refresh-tokens"), bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", "", &utils.NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", "", fmt.Errorf("refresh endpoint: HTTP %d", res.StatusCode)
	}

	var rr refreshResponse
	if err := json.NewDecoder(res.Body).Decode(&rr); err != nil {
		return "", "", fmt.Errorf("decode refresh response: %w", err)
	}
	if rr.Tokens.Access == "" || rr.Tokens.Refresh == "" {
		return "", "", fmt.Errorf("refresh endpoint returned incomplete token pair")
	}
	return rr.Tokens.Access, rr.Tokens.Refresh, nil
}

func (c *Client) attemptsLeft() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.retryCount < maxRefreshAttempts
}

func (c *Client) bumpRetries() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retryCount++
}

func (c *Client) resetRetries() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retryCount = 0
}
