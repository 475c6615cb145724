package server

import (
	"net"
	"net/url"
	"strconv"

	"github.com/jmgilman/go/bitbucket/errors"
	"github.com/zalando/go-keyring"
	"golang.org/x/net/http/httpproxy"
)

// Credentials are HTTP Basic credentials for the target server.
type Credentials struct {
	Username string
	Password string
}

// String hides the password.
func (c Credentials) String() string {
	return c.Username + ":******"
}

// CredentialSource supplies credentials once, when a provider is constructed.
// A nil result with a nil error means anonymous access.
type CredentialSource interface {
	Credentials() (*Credentials, error)
}

// StaticCredentials returns fixed credentials.
type StaticCredentials Credentials

// Credentials implements CredentialSource.
func (s StaticCredentials) Credentials() (*Credentials, error) {
	creds := Credentials(s)
	return &creds, nil
}

// KeyringCredentials reads the password of Username from the system keyring
// entry identified by Service.
type KeyringCredentials struct {
	Service  string
	Username string
}

// Credentials implements CredentialSource.
func (k KeyringCredentials) Credentials() (*Credentials, error) {
	secret, err := keyring.Get(k.Service, k.Username)
	if err != nil {
		code := errors.CodeInvalidConfig
		if errors.Is(err, keyring.ErrNotFound) {
			code = errors.CodeNotFound
		}
		return nil, errors.WrapWithContext(err, code, "failed to read credentials from keyring", map[string]interface{}{
			"service":  k.Service,
			"username": k.Username,
		})
	}
	return &Credentials{Username: k.Username, Password: secret}, nil
}

// ProxySettings describes an outbound HTTP proxy. Username and Password, when
// set, are sent as proxy-level Basic auth independent of the target credentials.
//
// Scheme is the protocol spoken to the proxy itself, "http" when empty.
type ProxySettings struct {
	Scheme   string
	Host     string
	Port     int
	Username string
	Password string
}

// url returns the proxy URL with credentials embedded as user info, which
// net/http turns into a Proxy-Authorization header.
func (p *ProxySettings) url() *url.URL {
	scheme := p.Scheme
	if scheme == "" {
		scheme = "http"
	}
	u := &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
	}
	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}

// ProxySource decides which proxy, if any, to use for a request. It is
// queried on every request so changes in the hosting environment take effect
// without rebuilding the provider.
type ProxySource interface {
	ProxyFor(target *url.URL) (*ProxySettings, error)
}

// NoProxy never uses a proxy.
type NoProxy struct{}

// ProxyFor implements ProxySource.
func (NoProxy) ProxyFor(*url.URL) (*ProxySettings, error) {
	return nil, nil
}

// StaticProxy always uses the same proxy.
type StaticProxy ProxySettings

// ProxyFor implements ProxySource.
func (s StaticProxy) ProxyFor(*url.URL) (*ProxySettings, error) {
	settings := ProxySettings(s)
	return &settings, nil
}

// EnvironmentProxy reads HTTP_PROXY, HTTPS_PROXY and NO_PROXY (or their
// lowercase forms) on every call.
type EnvironmentProxy struct{}

// ProxyFor implements ProxySource.
func (EnvironmentProxy) ProxyFor(target *url.URL) (*ProxySettings, error) {
	proxyURL, err := httpproxy.FromEnvironment().ProxyFunc()(target)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "invalid proxy environment")
	}
	if proxyURL == nil {
		return nil, nil
	}

	port, err := proxyPort(proxyURL)
	if err != nil {
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "invalid proxy port"),
			"proxy", proxyURL.Redacted(),
		)
	}

	settings := &ProxySettings{
		Scheme: proxyURL.Scheme,
		Host:   proxyURL.Hostname(),
		Port:   port,
	}
	if proxyURL.User != nil {
		settings.Username = proxyURL.User.Username()
		settings.Password, _ = proxyURL.User.Password()
	}
	return settings, nil
}

// proxyPort returns the explicit port of u or the scheme default.
func proxyPort(u *url.URL) (int, error) {
	if p := u.Port(); p != "" {
		return strconv.Atoi(p)
	}
	if u.Scheme == "https" {
		return 443, nil
	}
	return 80, nil
}
