package bitbucket

import (
	"context"
	"time"
)

// PullRequest represents a pull request of the scoped repository.
type PullRequest struct {
	client *Client
	data   *PullRequestData
}

// ID returns the pull request id.
func (pr *PullRequest) ID() int {
	return pr.data.ID
}

// Title returns the pull request title.
func (pr *PullRequest) Title() string {
	return pr.data.Title
}

// Description returns the pull request description.
func (pr *PullRequest) Description() string {
	return pr.data.Description
}

// State returns the pull request state (OPEN, MERGED or DECLINED).
func (pr *PullRequest) State() string {
	return pr.data.State
}

// Author returns the author's user name.
func (pr *PullRequest) Author() string {
	return pr.data.Author
}

// SourceBranch returns the branch the changes come from.
func (pr *PullRequest) SourceBranch() string {
	return pr.data.Source.Branch
}

// DestinationBranch returns the branch the changes merge into.
func (pr *PullRequest) DestinationBranch() string {
	return pr.data.Destination.Branch
}

// HTMLURL returns the URL to view the pull request.
func (pr *PullRequest) HTMLURL() string {
	return pr.data.HTMLURL
}

// CreatedAt returns when the pull request was opened.
func (pr *PullRequest) CreatedAt() time.Time {
	return pr.data.CreatedAt
}

// IsOpen returns true if the pull request is open.
func (pr *PullRequest) IsOpen() bool {
	return pr.data.State == PullRequestStateOpen
}

// SourceFullHash returns the full hash of the source side commit.
// No request is made.
func (pr *PullRequest) SourceFullHash() string {
	return pr.client.provider.ResolveSourceFullHash(pr.data)
}

// Refresh re-fetches the pull request.
func (pr *PullRequest) Refresh(ctx context.Context) error {
	data, err := pr.client.provider.GetPullRequest(ctx, pr.data.ID)
	if err != nil {
		return wrapProviderError(err, "failed to refresh pull request")
	}
	pr.data = data
	return nil
}

// Data returns the underlying pull request data.
func (pr *PullRequest) Data() *PullRequestData {
	return pr.data
}
