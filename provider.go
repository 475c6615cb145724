package bitbucket

import "context"

//go:generate go run github.com/matryer/moq@latest -out mocks/provider.go -pkg mocks . Provider

// Provider defines the capability set of a source-control backend scoped to a
// single owner and, optionally, a single repository.
//
// The owner is either a user namespace or a project namespace, fixed when the
// provider is constructed. Repository-scoped methods act on the configured
// repository. The Bitbucket Server implementation lives in providers/server.
//
// All blocking methods accept a context.Context for cancellation. Methods
// return structured data types (e.g., RepositoryData, PullRequestData) that are
// independent of the backend wire format.
//
// Example:
//
//	provider, err := server.New("https://scm.example", "PROJ",
//	    server.WithRepository("svc"),
//	    server.WithCredentials("ci-bot", secret),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	branches, err := provider.ListBranches(ctx)
type Provider interface {
	// Owner returns the raw owner name (user or project key).
	Owner() string

	// RepositoryName returns the configured repository, or "" if none.
	RepositoryName() string

	// Capabilities reports optional features supported by the backend.
	Capabilities() Capabilities

	// Owner operations

	// ListRepositories lists every repository of the owner.
	// Backends without role filtering ignore role.
	ListRepositories(ctx context.Context, role Role) ([]*RepositoryData, error)

	// GetTeam returns the entity owning the repositories.
	// Returns nil without error when the backend has no such concept for the owner.
	GetTeam(ctx context.Context) (*TeamData, error)

	// Repository operations

	// GetRepository retrieves the configured repository.
	// Returns nil without error when no repository is configured.
	GetRepository(ctx context.Context) (*RepositoryData, error)

	// IsPrivate reports whether the configured repository is private.
	// A missing repository is not private.
	IsPrivate(ctx context.Context) (bool, error)

	// ListBranches lists every branch of the repository.
	ListBranches(ctx context.Context) ([]*BranchData, error)

	// ResolveCommit retrieves commit metadata by hash.
	ResolveCommit(ctx context.Context, hash string) (*CommitData, error)

	// CheckPathExists reports whether path exists at branch.
	// Any failure yields false.
	CheckPathExists(ctx context.Context, branch, path string) bool

	// PostCommitComment adds a comment to a commit.
	PostCommitComment(ctx context.Context, hash, comment string) error

	// PostBuildStatus reports a build result against status.Hash.
	PostBuildStatus(ctx context.Context, status *BuildStatus) error

	// Pull Request operations

	// ListPullRequests lists the open pull requests of the repository.
	ListPullRequests(ctx context.Context) ([]*PullRequestData, error)

	// GetPullRequest retrieves a pull request by id.
	GetPullRequest(ctx context.Context, id int) (*PullRequestData, error)

	// ResolveSourceFullHash returns the full hash of the source side of pr.
	ResolveSourceFullHash(pr *PullRequestData) string

	// Webhook operations

	// ListWebhooks lists the repository webhooks.
	ListWebhooks(ctx context.Context) ([]*WebhookData, error)

	// RegisterCommitWebhook registers a webhook.
	RegisterCommitWebhook(ctx context.Context, hook *WebhookData) error

	// RemoveCommitWebhook removes a webhook.
	RemoveCommitWebhook(ctx context.Context, hook *WebhookData) error
}
