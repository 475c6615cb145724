package server

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/jmgilman/go/bitbucket/errors"
)

// defaultUserAgent is sent when WithUserAgent is not used.
const defaultUserAgent = "bitbucket-go-client"

// config holds configuration for Provider.
type config struct {
	repository     string
	userCentric    bool
	credentials    CredentialSource
	proxies        ProxySource
	logger         *log.Logger
	maxPages       int
	connectTimeout time.Duration
	readTimeout    time.Duration
	userAgent      string
}

func defaultConfig() *config {
	return &config{
		proxies:        NoProxy{},
		logger:         log.Default().WithPrefix("bitbucket"),
		maxPages:       DefaultMaxPages,
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
		userAgent:      defaultUserAgent,
	}
}

// Option configures the provider.
type Option func(*config) error

// WithRepository scopes the provider to a repository of the owner.
func WithRepository(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			err := errors.New(errors.CodeInvalidInput, "repository cannot be empty")
			return errors.WithContext(err, "field", "repository")
		}
		cfg.repository = name
		return nil
	}
}

// WithUserCentric addresses the owner as a personal namespace instead of a
// project.
func WithUserCentric(userCentric bool) Option {
	return func(cfg *config) error {
		cfg.userCentric = userCentric
		return nil
	}
}

// WithCredentials sets Basic credentials for the target server.
func WithCredentials(username, password string) Option {
	return func(cfg *config) error {
		if username == "" {
			err := errors.New(errors.CodeInvalidInput, "username cannot be empty")
			return errors.WithContext(err, "field", "username")
		}
		cfg.credentials = StaticCredentials{Username: username, Password: password}
		return nil
	}
}

// WithCredentialSource reads credentials from source when the provider is built.
func WithCredentialSource(source CredentialSource) Option {
	return func(cfg *config) error {
		if source == nil {
			err := errors.New(errors.CodeInvalidInput, "credential source cannot be nil")
			return errors.WithContext(err, "field", "credentials")
		}
		cfg.credentials = source
		return nil
	}
}

// WithProxySource sets where outbound proxy settings come from.
func WithProxySource(source ProxySource) Option {
	return func(cfg *config) error {
		if source == nil {
			err := errors.New(errors.CodeInvalidInput, "proxy source cannot be nil")
			return errors.WithContext(err, "field", "proxy")
		}
		cfg.proxies = source
		return nil
	}
}

// WithLogger sets the logger used for warnings and request tracing.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			err := errors.New(errors.CodeInvalidInput, "logger cannot be nil")
			return errors.WithContext(err, "field", "logger")
		}
		cfg.logger = logger
		return nil
	}
}

// WithMaxPages changes how many pages a listing may fetch before it is
// truncated. The default is DefaultMaxPages.
func WithMaxPages(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			err := errors.Newf(errors.CodeInvalidInput, "max pages must be positive, got %d", n)
			return errors.WithContext(err, "field", "max_pages")
		}
		cfg.maxPages = n
		return nil
	}
}

// WithTimeouts overrides the connection and read timeouts.
func WithTimeouts(connect, read time.Duration) Option {
	return func(cfg *config) error {
		if connect <= 0 || read <= 0 {
			err := errors.New(errors.CodeInvalidInput, "timeouts must be positive")
			return errors.WithContextMap(err, map[string]interface{}{
				"field":   "timeouts",
				"connect": connect.String(),
				"read":    read.String(),
			})
		}
		cfg.connectTimeout = connect
		cfg.readTimeout = read
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(cfg *config) error {
		if userAgent == "" {
			err := errors.New(errors.CodeInvalidInput, "user agent cannot be empty")
			return errors.WithContext(err, "field", "user_agent")
		}
		cfg.userAgent = userAgent
		return nil
	}
}
