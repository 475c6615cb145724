package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jmgilman/go/bitbucket/errors"
	"github.com/jmgilman/go/bitbucket/providers/server"
)

// Profile describes how to reach one owner on a Bitbucket Server.
type Profile struct {
	BaseURL     string       `json:"base_url"`
	Owner       string       `json:"owner"`
	Repository  string       `json:"repository,omitempty"`
	UserCentric bool         `json:"user_centric"`
	MaxPages    int          `json:"max_pages"`
	UserAgent   string       `json:"user_agent,omitempty"`
	Timeouts    *Timeouts    `json:"timeouts,omitempty"`
	Credentials *Credentials `json:"credentials,omitempty"`
	Proxy       *Proxy       `json:"proxy,omitempty"`
}

// Timeouts overrides the connection and read timeouts. Values use
// time.ParseDuration syntax.
type Timeouts struct {
	Connect string `json:"connect"`
	Read    string `json:"read"`
}

// Credentials names where the password for Username comes from. Exactly one
// of PasswordEnv and Keyring must be set.
type Credentials struct {
	Username    string   `json:"username"`
	PasswordEnv string   `json:"password_env,omitempty"`
	Keyring     *Keyring `json:"keyring,omitempty"`
}

// Keyring identifies a system keyring entry.
type Keyring struct {
	Service string `json:"service"`
}

// Proxy selects the outbound proxy. FromEnvironment and Host are mutually
// exclusive.
type Proxy struct {
	FromEnvironment bool   `json:"from_environment"`
	Scheme          string `json:"scheme,omitempty"`
	Host            string `json:"host,omitempty"`
	Port            int    `json:"port,omitempty"`
	Username        string `json:"username,omitempty"`
	PasswordEnv     string `json:"password_env,omitempty"`
}

// envCredentials reads the password from an environment variable when the
// provider is built.
type envCredentials struct {
	username string
	variable string
}

// Credentials implements server.CredentialSource.
func (e envCredentials) Credentials() (*server.Credentials, error) {
	password, ok := os.LookupEnv(e.variable)
	if !ok {
		err := errors.Newf(errors.CodeInvalidConfig, "environment variable %s is not set", e.variable)
		return nil, errors.WithContext(err, "variable", e.variable)
	}
	return &server.Credentials{Username: e.username, Password: password}, nil
}

// Options converts the profile into provider options. extra is appended last
// so callers can override profile settings, e.g. with server.WithLogger.
func (p *Profile) Options(extra ...server.Option) ([]server.Option, error) {
	opts := []server.Option{
		server.WithUserCentric(p.UserCentric),
	}
	if p.MaxPages > 0 {
		opts = append(opts, server.WithMaxPages(p.MaxPages))
	}
	if p.Repository != "" {
		opts = append(opts, server.WithRepository(p.Repository))
	}
	if p.UserAgent != "" {
		opts = append(opts, server.WithUserAgent(p.UserAgent))
	}

	if p.Timeouts != nil {
		connect, err := parseDuration("timeouts.connect", p.Timeouts.Connect)
		if err != nil {
			return nil, err
		}
		read, err := parseDuration("timeouts.read", p.Timeouts.Read)
		if err != nil {
			return nil, err
		}
		opts = append(opts, server.WithTimeouts(connect, read))
	}

	if p.Credentials != nil {
		source, err := p.Credentials.source()
		if err != nil {
			return nil, err
		}
		opts = append(opts, server.WithCredentialSource(source))
	}

	if p.Proxy != nil {
		source, err := p.Proxy.source()
		if err != nil {
			return nil, err
		}
		opts = append(opts, server.WithProxySource(source))
	}

	return append(opts, extra...), nil
}

// NewProvider builds a provider from the profile.
func (p *Profile) NewProvider(logger *log.Logger, extra ...server.Option) (*server.Provider, error) {
	if logger != nil {
		extra = append([]server.Option{server.WithLogger(logger)}, extra...)
	}
	opts, err := p.Options(extra...)
	if err != nil {
		return nil, err
	}
	return server.New(p.BaseURL, p.Owner, opts...)
}

func (c *Credentials) source() (server.CredentialSource, error) {
	switch {
	case c.Keyring != nil && c.PasswordEnv != "":
		return nil, fieldError("credentials", "set either password_env or keyring, not both")
	case c.Keyring != nil:
		return server.KeyringCredentials{Service: c.Keyring.Service, Username: c.Username}, nil
	case c.PasswordEnv != "":
		return envCredentials{username: c.Username, variable: c.PasswordEnv}, nil
	default:
		return nil, fieldError("credentials", "password_env or keyring is required")
	}
}

func (p *Proxy) source() (server.ProxySource, error) {
	switch {
	case p.FromEnvironment && p.Host != "":
		return nil, fieldError("proxy", "set either from_environment or host, not both")
	case p.FromEnvironment:
		return server.EnvironmentProxy{}, nil
	case p.Host == "":
		return server.NoProxy{}, nil
	}

	if p.Port == 0 {
		return nil, fieldError("proxy.port", "port is required with host")
	}
	settings := server.StaticProxy{Scheme: p.Scheme, Host: p.Host, Port: p.Port, Username: p.Username}
	if p.PasswordEnv != "" {
		password, ok := os.LookupEnv(p.PasswordEnv)
		if !ok {
			err := errors.Newf(errors.CodeInvalidConfig, "environment variable %s is not set", p.PasswordEnv)
			return nil, errors.WithContext(err, "variable", p.PasswordEnv)
		}
		settings.Password = password
	}
	return settings, nil
}

func parseDuration(field, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid duration", makeContext("field", field, "value", raw))
	}
	return d, nil
}

func fieldError(field, message string) error {
	return errors.WithContext(errors.New(errors.CodeInvalidConfig, message), "field", field)
}
