package bitbucket

import (
	"context"
	"fmt"
)

// Repository represents the repository a provider is scoped to and provides
// repository-level operations.
//
// Repository instances are created through a Client:
//
//	repo := client.Repository()
//	if err := repo.Get(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Repository:", repo.FullName())
type Repository struct {
	client *Client
	owner  string
	name   string
	data   *RepositoryData
}

// Get fetches the repository data.
// Returns a CodeNotFound error when the provider has no repository configured.
func (r *Repository) Get(ctx context.Context) error {
	data, err := r.client.provider.GetRepository(ctx)
	if err != nil {
		return wrapProviderError(err, "failed to get repository")
	}
	if data == nil {
		return newNotFoundError("repository", r.FullName())
	}
	r.data = data
	return nil
}

// Refresh is an alias for Get that reads better when updating existing data.
func (r *Repository) Refresh(ctx context.Context) error {
	return r.Get(ctx)
}

// Owner returns the repository owner (project key or user name).
func (r *Repository) Owner() string {
	return r.owner
}

// Name returns the repository name (without owner).
func (r *Repository) Name() string {
	return r.name
}

// FullName returns "owner/name".
func (r *Repository) FullName() string {
	if r.data != nil {
		return r.data.FullName()
	}
	return fmt.Sprintf("%s/%s", r.owner, r.name)
}

// CloneURL returns the HTTP clone URL.
// Returns empty string if repository data hasn't been fetched yet.
func (r *Repository) CloneURL() string {
	if r.data == nil {
		return ""
	}
	return r.data.CloneURL
}

// SSHURL returns the SSH clone URL.
// Returns empty string if repository data hasn't been fetched yet.
func (r *Repository) SSHURL() string {
	if r.data == nil {
		return ""
	}
	return r.data.SSHURL
}

// HTMLURL returns the browse URL.
// Returns empty string if repository data hasn't been fetched yet.
func (r *Repository) HTMLURL() string {
	if r.data == nil {
		return ""
	}
	return r.data.HTMLURL
}

// IsPrivate returns true if the repository is private.
// Returns false if repository data hasn't been fetched yet.
func (r *Repository) IsPrivate() bool {
	if r.data == nil {
		return false
	}
	return r.data.Private
}

// IsFork returns true if the repository is a fork.
// Returns false if repository data hasn't been fetched yet.
func (r *Repository) IsFork() bool {
	if r.data == nil {
		return false
	}
	return r.data.Fork
}

// Data returns the underlying repository data, or nil before Get.
func (r *Repository) Data() *RepositoryData {
	return r.data
}

// Branch operations

// Branches lists every branch of the repository.
func (r *Repository) Branches(ctx context.Context) ([]*BranchData, error) {
	branches, err := r.client.provider.ListBranches(ctx)
	if err != nil {
		return nil, wrapProviderError(err, "failed to list branches")
	}
	return branches, nil
}

// PathExists reports whether path exists at branch. It never fails.
func (r *Repository) PathExists(ctx context.Context, branch, path string) bool {
	return r.client.provider.CheckPathExists(ctx, branch, path)
}

// Commit operations

// Commit resolves commit metadata by hash.
func (r *Repository) Commit(ctx context.Context, hash string) (*CommitData, error) {
	commit, err := r.client.provider.ResolveCommit(ctx, hash)
	if err != nil {
		return nil, wrapProviderError(err, "failed to resolve commit")
	}
	return commit, nil
}

// Comment adds a comment to a commit.
func (r *Repository) Comment(ctx context.Context, hash, text string) error {
	if err := r.client.provider.PostCommitComment(ctx, hash, text); err != nil {
		return wrapProviderError(err, "failed to comment on commit")
	}
	return nil
}

// ReportStatus reports a build result for a commit.
//
// Example:
//
//	err := repo.ReportStatus(ctx, hash, bitbucket.BuildStateSuccessful,
//	    bitbucket.WithStatusKey("ci/build"),
//	    bitbucket.WithStatusURL("https://ci.example/job/42"),
//	)
func (r *Repository) ReportStatus(ctx context.Context, hash, state string, opts ...StatusOption) error {
	status := &BuildStatus{
		Hash:  hash,
		State: state,
	}
	for _, opt := range opts {
		opt(status)
	}

	if err := r.client.provider.PostBuildStatus(ctx, status); err != nil {
		return wrapProviderError(err, "failed to report build status")
	}
	return nil
}

// Pull Request operations

// PullRequests lists the open pull requests.
func (r *Repository) PullRequests(ctx context.Context) ([]*PullRequest, error) {
	dataList, err := r.client.provider.ListPullRequests(ctx)
	if err != nil {
		return nil, wrapProviderError(err, "failed to list pull requests")
	}

	prs := make([]*PullRequest, len(dataList))
	for i, data := range dataList {
		prs[i] = &PullRequest{
			client: r.client,
			data:   data,
		}
	}
	return prs, nil
}

// PullRequest retrieves a pull request by id.
func (r *Repository) PullRequest(ctx context.Context, id int) (*PullRequest, error) {
	data, err := r.client.provider.GetPullRequest(ctx, id)
	if err != nil {
		return nil, wrapProviderError(err, "failed to get pull request")
	}

	return &PullRequest{
		client: r.client,
		data:   data,
	}, nil
}

// Webhook operations

// Webhooks lists the repository webhooks. Backends without webhook support
// return an empty list.
func (r *Repository) Webhooks(ctx context.Context) ([]*WebhookData, error) {
	hooks, err := r.client.provider.ListWebhooks(ctx)
	if err != nil {
		return nil, wrapProviderError(err, "failed to list webhooks")
	}
	return hooks, nil
}
