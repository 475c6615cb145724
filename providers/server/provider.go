// Package server provides the Bitbucket Server (Data Center) implementation
// of bitbucket.Provider over the REST API.
//
// A Provider is scoped to one owner, either a project key or a user name when
// built WithUserCentric, and optionally one repository. Every call issues
// its own HTTP request with preemptive Basic auth, a fresh proxy lookup and
// fixed connection and read timeouts. Listings are walked page by page up to
// a page cap.
//
// Failures are returned as errors from the bitbucket/errors package with one
// of the codes TRANSPORT_ERROR, UNEXPECTED_STATUS, DECODE_FAILED or
// ENCODING_FAILED. Three operations never fail: CheckPathExists reports false,
// PostBuildStatus logs every failure, and PostCommitComment logs encoding
// failures.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jmgilman/go/bitbucket"
	"github.com/jmgilman/go/bitbucket/errors"
)

// Identity is the immutable scope of a Provider.
type Identity struct {
	BaseURL     string
	Owner       string
	Repository  string
	UserCentric bool
	Credentials *Credentials
}

// Provider implements bitbucket.Provider for Bitbucket Server.
type Provider struct {
	identity  Identity
	endpoints endpoints
	transport *transport
	pager     pager
	logger    *log.Logger

	// marshal encodes request payloads.
	marshal func(v any) ([]byte, error)
}

var _ bitbucket.Provider = (*Provider)(nil)

// New creates a provider for owner on the server at baseURL.
//
// Example:
//
//	provider, err := server.New("https://scm.example", "PROJ",
//	    server.WithRepository("svc"),
//	    server.WithCredentialSource(server.KeyringCredentials{Service: "bitbucket", Username: "ci-bot"}),
//	    server.WithProxySource(server.EnvironmentProxy{}),
//	)
func New(baseURL, owner string, opts ...Option) (*Provider, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if owner == "" {
		err := errors.New(errors.CodeInvalidInput, "owner cannot be empty")
		return nil, errors.WithContext(err, "field", "owner")
	}

	var creds *Credentials
	if cfg.credentials != nil {
		creds, err = cfg.credentials.Credentials()
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to resolve credentials")
		}
	}

	identity := Identity{
		BaseURL:     base,
		Owner:       owner,
		Repository:  cfg.repository,
		UserCentric: cfg.userCentric,
		Credentials: creds,
	}

	t := &transport{
		baseURL:        base,
		credentials:    creds,
		proxies:        cfg.proxies,
		connectTimeout: cfg.connectTimeout,
		readTimeout:    cfg.readTimeout,
		userAgent:      cfg.userAgent,
		logger:         cfg.logger,
	}

	return &Provider{
		identity:  identity,
		endpoints: newEndpoints(owner, cfg.repository, cfg.userCentric),
		transport: t,
		pager: pager{
			get:      t.get,
			maxPages: cfg.maxPages,
			logger:   cfg.logger,
		},
		logger:  cfg.logger,
		marshal: json.Marshal,
	}, nil
}

// parseBaseURL validates an http(s) server URL and strips trailing slashes.
func parseBaseURL(raw string) (string, error) {
	if raw == "" {
		err := errors.New(errors.CodeInvalidInput, "base URL cannot be empty")
		return "", errors.WithContext(err, "field", "base_url")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err := errors.Newf(errors.CodeInvalidInput, "invalid base URL: %q", raw)
		return "", errors.WithContext(err, "field", "base_url")
	}
	return strings.TrimRight(raw, "/"), nil
}

// Identity returns a copy of the provider scope.
func (p *Provider) Identity() Identity {
	id := p.identity
	if id.Credentials != nil {
		creds := *id.Credentials
		id.Credentials = &creds
	}
	return id
}

// Owner returns the raw owner name.
func (p *Provider) Owner() string {
	return p.identity.Owner
}

// RepositoryName returns the configured repository, or "".
func (p *Provider) RepositoryName() string {
	return p.identity.Repository
}

// Capabilities reports that webhooks are not supported.
func (p *Provider) Capabilities() bitbucket.Capabilities {
	return bitbucket.Capabilities{Webhooks: false}
}

// ListRepositories lists every repository of the owner.
// Bitbucket Server has no role filter, so role is ignored.
func (p *Provider) ListRepositories(ctx context.Context, _ bitbucket.Role) ([]*bitbucket.RepositoryData, error) {
	repos, err := walk[serverRepository](ctx, p.pager, "repositories", p.endpoints.repositories)
	if err != nil {
		return nil, err
	}
	return convertRepositories(repos), nil
}

// GetTeam returns the owning project. User-centric providers have no
// project and return nil without a request.
func (p *Provider) GetTeam(ctx context.Context) (*bitbucket.TeamData, error) {
	if p.identity.UserCentric {
		return nil, nil
	}

	body, err := p.transport.get(ctx, p.endpoints.projectInfo())
	if err != nil {
		return nil, err
	}
	project, err := decode[serverProject](body, "project")
	if err != nil {
		return nil, err
	}
	return convertTeam(&project), nil
}

// GetRepository retrieves the configured repository. Without a repository it
// returns nil and makes no request.
func (p *Provider) GetRepository(ctx context.Context) (*bitbucket.RepositoryData, error) {
	if p.identity.Repository == "" {
		return nil, nil
	}

	body, err := p.transport.get(ctx, p.endpoints.repositoryInfo())
	if err != nil {
		return nil, err
	}
	repo, err := decode[serverRepository](body, "repository")
	if err != nil {
		return nil, err
	}
	return convertRepository(&repo), nil
}

// IsPrivate reports whether the repository is private. A missing repository
// is not private.
func (p *Provider) IsPrivate(ctx context.Context) (bool, error) {
	repo, err := p.GetRepository(ctx)
	if err != nil {
		return false, err
	}
	return repo != nil && repo.Private, nil
}

// ListBranches lists every branch of the repository.
func (p *Provider) ListBranches(ctx context.Context) ([]*bitbucket.BranchData, error) {
	branches, err := walk[serverBranch](ctx, p.pager, "branches", p.endpoints.branches)
	if err != nil {
		return nil, err
	}
	return convertBranches(branches), nil
}

// ResolveCommit retrieves commit metadata.
func (p *Provider) ResolveCommit(ctx context.Context, hash string) (*bitbucket.CommitData, error) {
	body, err := p.transport.get(ctx, p.endpoints.commit(hash))
	if err != nil {
		return nil, err
	}
	commit, err := decode[serverCommit](body, "commit")
	if err != nil {
		return nil, err
	}
	return convertCommit(&commit), nil
}

// CheckPathExists reports whether path exists at branch. Only a 200 answer
// counts; every other status and any transport failure yield false.
func (p *Provider) CheckPathExists(ctx context.Context, branch, path string) bool {
	return p.transport.probe(ctx, p.endpoints.browse(path, branch)) == http.StatusOK
}

// ListPullRequests lists the open pull requests of the repository.
func (p *Provider) ListPullRequests(ctx context.Context) ([]*bitbucket.PullRequestData, error) {
	prs, err := walk[serverPullRequest](ctx, p.pager, "pull requests", p.endpoints.pullRequests)
	if err != nil {
		return nil, err
	}
	return convertPullRequests(prs), nil
}

// GetPullRequest retrieves a pull request by id.
func (p *Provider) GetPullRequest(ctx context.Context, id int) (*bitbucket.PullRequestData, error) {
	body, err := p.transport.get(ctx, p.endpoints.pullRequest(id))
	if err != nil {
		return nil, err
	}
	pr, err := decode[serverPullRequest](body, "pull request")
	if err != nil {
		return nil, err
	}
	return convertPullRequest(&pr), nil
}

// ResolveSourceFullHash returns the head commit of the source branch as
// recorded on pr. No request is made.
func (p *Provider) ResolveSourceFullHash(pr *bitbucket.PullRequestData) string {
	if pr == nil {
		return ""
	}
	return pr.Source.Commit.Hash
}

// ListWebhooks returns an empty list; the server API offers no stable webhook
// surface.
func (p *Provider) ListWebhooks(context.Context) ([]*bitbucket.WebhookData, error) {
	return []*bitbucket.WebhookData{}, nil
}

// RegisterCommitWebhook does nothing.
func (p *Provider) RegisterCommitWebhook(context.Context, *bitbucket.WebhookData) error {
	return nil
}

// RemoveCommitWebhook does nothing.
func (p *Provider) RemoveCommitWebhook(context.Context, *bitbucket.WebhookData) error {
	return nil
}
