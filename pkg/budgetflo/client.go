package budgetflo

import (
	"context"
	"net/http"
	"time"

	"github.com/AyzeysDev/budgetflo-platform-sub002/internal/transport"
	internalTypes "github.com/AyzeysDev/budgetflo-platform-sub002/internal/types"
	"github.com/getsentry/sentry-go"
)

const (
	// DefaultBaseURL is the default BudgetFlo API base URL
	DefaultBaseURL = "https://api.budgetflo.app"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "budgetflo-go/1.0.0"
)

// Client is the main BudgetFlo API client
type Client struct {
	// Service interfaces
	Accounts     AccountService
	Budgets      BudgetService
	Transactions TransactionService
	Transfers    TransferService
	Goals        GoalService
	Loans        LoanService
	Savings      SavingsService
	Auth         AuthService

	// Internal fields
	baseURL    string
	httpClient *http.Client
	transport  Transport
	options    *ClientOptions
	session    *Session
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Token provides direct authentication token
	Token string

	// SessionFile path for session persistence
	SessionFile string

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport handles HTTP communication with the backend
type Transport interface {
	Do(ctx context.Context, method, path string, body, result interface{}) error
	SetAuth(token string)
	SetSession(session *internalTypes.Session)
}

// NewClient creates a new BudgetFlo client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	// Create transport using the internal package
	trans := transport.NewRESTTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	})

	// Set auth if token provided
	if opts.Token != "" {
		trans.SetAuth(opts.Token)
	}

	c := &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		transport:  trans,
		options:    opts,
	}

	c.initServices()

	// Load session if file specified
	if opts.SessionFile != "" {
		if err := c.Auth.LoadSession(opts.SessionFile); err != nil && opts.Logger != nil {
			opts.Logger.Warn("Failed to load session", "error", err)
		}
	}

	return c, nil
}

// NewClientWithToken creates a client with an auth token
func NewClientWithToken(token string) (*Client, error) {
	return NewClient(&ClientOptions{
		Token: token,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Accounts = &accountService{client: c}
	c.Budgets = &budgetService{client: c}
	c.Transactions = newTransactionService(c)
	c.Transfers = newTransferService(c)
	c.Goals = newGoalService(c)
	c.Loans = newLoanService(c)
	c.Savings = newSavingsService(c)
	c.Auth = newAuthService(c)
}

// SetToken sets the authentication token
func (c *Client) SetToken(token string) {
	c.transport.SetAuth(token)
	if c.session == nil {
		c.session = &Session{}
	}
	c.session.Token = token
}

// GetSession returns the current session
func (c *Client) GetSession() *Session {
	return c.session
}

// do executes an API request through the transport, applying rate limiting,
// hooks and Sentry capture
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	// Rate limiting
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			captureException(ctx, err, method, path, 0)
			return WrapError(err, "RATE_LIMITER", "rate limiter")
		}
	}

	start := time.Now()
	err := c.transport.Do(ctx, method, path, body, result)
	duration := time.Since(start)

	if err != nil {
		captureException(ctx, err, method, path, duration)

		if c.options.Hooks != nil && c.options.Hooks.OnError != nil {
			c.options.Hooks.OnError(ctx, err)
		}
	}

	return err
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}

// captureException reports a request failure to Sentry with request context
func captureException(ctx context.Context, err error, method, path string, duration time.Duration) {
	capture := func(scope *sentry.Scope, hub *sentry.Hub) {
		scope.SetTag("api.method", method)
		scope.SetTag("api.path", path)
		scope.SetContext("request", map[string]interface{}{
			"method":   method,
			"path":     path,
			"duration": duration.String(),
		})
		hub.CaptureException(err)
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			capture(scope, hub)
		})
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		capture(scope, sentry.CurrentHub())
	})
}
