package bitbucket

import "time"

// RepositoryData contains repository information from the provider.
type RepositoryData struct {
	// Identification
	ID         int64  `json:"id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Owner      string `json:"owner"`
	ProjectKey string `json:"project_key"`

	// Metadata
	SCM     string `json:"scm"`
	State   string `json:"state"`
	Private bool   `json:"private"`
	Fork    bool   `json:"fork"`

	// URLs
	CloneURL string `json:"clone_url"`
	SSHURL   string `json:"ssh_url"`
	HTMLURL  string `json:"html_url"`
}

// FullName returns "owner/slug".
func (r *RepositoryData) FullName() string {
	return r.Owner + "/" + r.Slug
}

// BranchData contains branch information.
type BranchData struct {
	// ID is the fully qualified ref (e.g., "refs/heads/main").
	ID string `json:"id"`

	// Name is the short display name (e.g., "main").
	Name string `json:"name"`

	// LatestCommit is the full hash of the branch head.
	LatestCommit string `json:"latest_commit"`

	IsDefault bool `json:"is_default"`
}

// CommitRef identifies a commit.
type CommitRef struct {
	Hash string `json:"hash"`
}

// PullRequestRef is one side of a pull request.
type PullRequestRef struct {
	Branch     string    `json:"branch"`
	Commit     CommitRef `json:"commit"`
	Repository string    `json:"repository"`
	Owner      string    `json:"owner"`
}

// PullRequestData contains pull request information.
type PullRequestData struct {
	// Identification
	ID      int `json:"id"`
	Version int `json:"version"`

	// Content
	Title       string `json:"title"`
	Description string `json:"description"`

	// Branch information
	Source      PullRequestRef `json:"source"`
	Destination PullRequestRef `json:"destination"`

	// State and metadata
	State  string `json:"state"`
	Author string `json:"author"`

	// URL
	HTMLURL string `json:"html_url"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommitData contains commit metadata.
type CommitData struct {
	Hash        string    `json:"hash"`
	DisplayHash string    `json:"display_hash"`
	Message     string    `json:"message"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"author_email"`
	AuthoredAt  time.Time `json:"authored_at"`
}

// TeamData describes the entity that owns a set of repositories.
// On Bitbucket Server this is a project.
type TeamData struct {
	Key         string `json:"key"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
	HTMLURL     string `json:"html_url"`
}

// WebhookData describes a repository webhook.
type WebhookData struct {
	UUID   string   `json:"uuid"`
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Active bool     `json:"active"`
}

// BuildStatus is a build result reported against a commit.
// Hash selects the commit and is part of the request path, not the payload.
type BuildStatus struct {
	Hash        string `json:"-"`
	State       string `json:"state"`
	Key         string `json:"key"`
	Name        string `json:"name,omitempty"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Build states accepted by the build status endpoint.
const (
	// BuildStateSuccessful marks a passing build.
	BuildStateSuccessful = "SUCCESSFUL"

	// BuildStateFailed marks a failing build.
	BuildStateFailed = "FAILED"

	// BuildStateInProgress marks a running build.
	BuildStateInProgress = "INPROGRESS"
)

// Pull request states.
const (
	PullRequestStateOpen     = "OPEN"
	PullRequestStateMerged   = "MERGED"
	PullRequestStateDeclined = "DECLINED"
)

// Role filters repositories by the caller's role in them.
type Role string

// Roles understood by backends that filter repository listings.
const (
	RoleAny         Role = ""
	RoleOwner       Role = "owner"
	RoleAdmin       Role = "admin"
	RoleContributor Role = "contributor"
	RoleMember      Role = "member"
)

// Capabilities reports optional features a provider supports.
type Capabilities struct {
	// Webhooks is false when webhook operations are accepted but do nothing.
	Webhooks bool
}

// ListRepositoriesOptions contains options for listing repositories.
type ListRepositoriesOptions struct {
	// Role filters by the caller's role. Backends may ignore it.
	Role Role
}
