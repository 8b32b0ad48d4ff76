// Package pocketcast is a client for the Pocket Casts web-player API.
// A Client is constructed from account credentials, logs in once during
// construction, and transparently re-authenticates when the issued
// bearer token expires.
package pocketcast

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/patric-chuzhbe/pocketcast/internal/logger"
)

// Production base URLs of the Pocket Casts services.
const (
	DefaultAPIBase    = "https://api.pocketcasts.com"
	DefaultListsBase  = "https://lists.pocketcasts.com"
	DefaultStaticBase = "https://static.pocketcasts.com"
	DefaultCacheBase  = "https://podcast-api.pocketcasts.com"
)

const (
	loginScope       = "webplayer"
	defaultTimeout   = 30 * time.Second
	defaultRetries   = 3
	defaultUserAgent = "pocketcast-go"

	// How long before the token's `exp` claim a re-login is forced, to
	// avoid racing the server clock.
	tokenExpiryLeeway = 30 * time.Second
)

var validate = validator.New()

// Client is an authenticated session with the Pocket Casts API.
// It is safe for concurrent use.
type Client struct {
	httpClient *resty.Client

	apiBase    string
	listsBase  string
	staticBase string
	cacheBase  string

	email    string
	password string

	timeout    time.Duration
	retryCount int
	userAgent  string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
	loginCount  int
}

// Option customizes a Client during construction.
type Option func(*Client)

// WithAPIBase overrides the authenticated API base URL.
func WithAPIBase(base string) Option {
	return func(c *Client) {
		c.apiBase = strings.TrimRight(base, "/")
	}
}

// WithListsBase overrides the curated-lists base URL.
func WithListsBase(base string) Option {
	return func(c *Client) {
		c.listsBase = strings.TrimRight(base, "/")
	}
}

// WithStaticBase overrides the static-assets base URL.
func WithStaticBase(base string) Option {
	return func(c *Client) {
		c.staticBase = strings.TrimRight(base, "/")
	}
}

// WithCacheBase overrides the podcast-cache base URL.
func WithCacheBase(base string) Option {
	return func(c *Client) {
		c.cacheBase = strings.TrimRight(base, "/")
	}
}

// WithTimeout overrides the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetryCount overrides the number of retries performed on
// rate-limited (429) and server-error responses.
func WithRetryCount(count int) Option {
	return func(c *Client) {
		if count >= 0 {
			c.retryCount = count
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// New validates the credentials, performs the login request, and
// returns an authenticated client. The context bounds the login
// request only.
func New(ctx context.Context, email, password string, options ...Option) (*Client, error) {
	email = strings.TrimSpace(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("malformed email %q: %w", email, ErrInvalidCredentials)
	}
	if password == "" {
		return nil, fmt.Errorf("empty password: %w", ErrInvalidCredentials)
	}

	client := &Client{
		apiBase:    DefaultAPIBase,
		listsBase:  DefaultListsBase,
		staticBase: DefaultStaticBase,
		cacheBase:  DefaultCacheBase,
		email:      email,
		password:   password,
		timeout:    defaultTimeout,
		retryCount: defaultRetries,
		userAgent:  defaultUserAgent,
	}
	for _, option := range options {
		option(client)
	}

	client.httpClient = newHTTPClient(client.timeout, client.retryCount, client.userAgent)

	if err := client.login(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

func newHTTPClient(timeout time.Duration, retryCount int, userAgent string) *resty.Client {
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(retryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(10 * time.Second).
		AddRetryCondition(func(response *resty.Response, err error) bool {
			if err != nil || response == nil {
				return false
			}
			return response.StatusCode() == http.StatusTooManyRequests ||
				response.StatusCode() >= http.StatusInternalServerError
		}).
		SetRetryAfter(func(_ *resty.Client, response *resty.Response) (time.Duration, error) {
			seconds, err := strconv.Atoi(response.Header().Get("Retry-After"))
			if err != nil || seconds < 0 {
				return 0, nil
			}
			return time.Duration(seconds) * time.Second, nil
		})

	httpClient.OnAfterResponse(func(_ *resty.Client, response *resty.Response) error {
		logger.Log.Debugln(
			"method", response.Request.Method,
			"url", response.Request.URL,
			"status", response.StatusCode(),
			"duration", response.Time(),
		)
		return nil
	})

	return httpClient
}

// login exchanges the credentials for a bearer token.
func (c *Client) login(ctx context.Context) error {
	var result loginResponse
	errorBody := &apiErrorBody{}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(loginRequest{
			Email:    c.email,
			Password: c.password,
			Scope:    loginScope,
		}).
		SetResult(&result).
		SetError(errorBody).
		Post(c.apiURL("user/login"))
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	if response.IsError() {
		if response.StatusCode() == http.StatusUnauthorized ||
			response.StatusCode() == http.StatusBadRequest {
			logger.Log.Debugln("login rejected", "status", response.StatusCode(), zap.Error(ErrInvalidCredentials))
			return fmt.Errorf("login rejected for %s: %w", c.email, ErrInvalidCredentials)
		}
		return newAPIError("user/login", response.StatusCode(), errorBody)
	}

	if result.Token == "" {
		return fmt.Errorf("login response for %s carried no token", c.email)
	}

	c.mu.Lock()
	c.token = result.Token
	c.tokenExpiry = tokenExpiry(result.Token)
	c.loginCount++
	c.mu.Unlock()

	return nil
}

// tokenExpiry reads the `exp` claim of the server-issued JWT. The
// signature belongs to the server, so the parse is unverified. Tokens
// without a readable expiry never trigger a refresh.
func tokenExpiry(token string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// bearer returns the current token, re-logging-in first when it has
// expired.
func (c *Client) bearer(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.token
	expired := !c.tokenExpiry.IsZero() && time.Now().After(c.tokenExpiry.Add(-tokenExpiryLeeway))
	c.mu.Unlock()

	if token != "" && !expired {
		return token, nil
	}

	logger.Log.Debugln("bearer token expired, re-authenticating", "email", c.email)
	if err := c.login(ctx); err != nil {
		return "", fmt.Errorf("token refresh: %w", err)
	}

	c.mu.Lock()
	token = c.token
	c.mu.Unlock()

	return token, nil
}

func (c *Client) apiURL(endpoint string) string {
	return c.apiBase + "/" + strings.TrimPrefix(endpoint, "/")
}

func (c *Client) listURL(name string) string {
	return c.listsBase + "/" + strings.TrimPrefix(name, "/") + ".json"
}

// post issues an authenticated POST against the API base and decodes
// the JSON response into result when it is non-nil.
func (c *Client) post(ctx context.Context, endpoint string, body, result interface{}) error {
	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}

	errorBody := &apiErrorBody{}
	request := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(errorBody)
	if body != nil {
		request.SetBody(body)
	}
	if result != nil {
		request.SetResult(result)
	}

	response, err := request.Post(c.apiURL(endpoint))
	if err != nil {
		return fmt.Errorf("POST %s: %w", endpoint, err)
	}
	if response.IsError() {
		return newAPIError(endpoint, response.StatusCode(), errorBody)
	}

	return nil
}

// get issues a GET against an absolute URL. The discovery services are
// unauthenticated; withToken attaches the bearer token for the few GET
// endpoints that need it.
func (c *Client) get(ctx context.Context, rawURL string, result interface{}, withToken bool) error {
	errorBody := &apiErrorBody{}
	request := c.httpClient.R().
		SetContext(ctx).
		SetError(errorBody)
	if result != nil {
		request.SetResult(result)
	}
	if withToken {
		token, err := c.bearer(ctx)
		if err != nil {
			return err
		}
		request.SetAuthToken(token)
	}

	response, err := request.Get(rawURL)
	if err != nil {
		return fmt.Errorf("GET %s: %w", rawURL, err)
	}
	if response.IsError() {
		return newAPIError(rawURL, response.StatusCode(), errorBody)
	}

	return nil
}
