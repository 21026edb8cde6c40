package careerbooster

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "http://localhost:8080"
	// The backend runs on the host machine, Android emulators reach it
	// through their own loopback alias.
	androidEmulatorBaseURL = "http://10.0.2.2:8080"

	userAgent = "careerbooster/cb-cli"

	// MaxUploadSize is the local pre-check limit for CV uploads.
	MaxUploadSize = 10 * 1024 * 1024
	// PDFMediaType is the only media type the backend accepts for uploads.
	PDFMediaType = "application/pdf"
)

// TokenSource yields the bearer token of the active session. The client never
// caches the value so a re-login during the process lifetime is picked up.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

type Client struct {
	tokens     TokenSource
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	BaseURL    string
}

// New builds a client against baseURL. An empty baseURL falls back to the
// local development default.
func New(baseURL string, tokens TokenSource, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if tokens == nil {
		tokens = TokenFunc(func() string { return "" })
	}

	return &Client{
		tokens:  tokens,
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// HasToken reports whether an authenticated call can currently be made.
func (c *Client) HasToken() bool {
	return c.tokens.Token() != ""
}

// DefaultBaseURL returns the backend address for the given platform name.
// Only "android" differs, everything else talks to plain localhost.
func DefaultBaseURL(platform string) string {
	if platform == "android" {
		return androidEmulatorBaseURL
	}
	return defaultBaseURL
}
