package bitbucket

import "context"

// Client provides high-level Bitbucket operations on top of a Provider.
//
// Example usage:
//
//	provider, err := server.New("https://scm.example", "PROJ", server.WithRepository("svc"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := bitbucket.NewClient(provider)
//	repo := client.Repository()
//	if err := repo.Get(ctx); err != nil {
//	    log.Fatal(err)
//	}
type Client struct {
	provider Provider
}

// NewClient creates a new client backed by provider.
func NewClient(provider Provider) *Client {
	return &Client{provider: provider}
}

// Repository returns a Repository for the provider's configured repository.
//
// Note: This method does not validate that the repository exists. Call Get()
// on the returned Repository to fetch its data.
func (c *Client) Repository() *Repository {
	return &Repository{
		client: c,
		owner:  c.provider.Owner(),
		name:   c.provider.RepositoryName(),
	}
}

// Repositories lists the repositories of the owner.
//
// Example:
//
//	repos, err := client.Repositories(ctx, bitbucket.WithRole(bitbucket.RoleAdmin))
func (c *Client) Repositories(ctx context.Context, opts ...RepositoryListOption) ([]*RepositoryData, error) {
	listOpts := ListRepositoriesOptions{Role: RoleAny}
	for _, opt := range opts {
		opt(&listOpts)
	}

	repos, err := c.provider.ListRepositories(ctx, listOpts.Role)
	if err != nil {
		return nil, wrapProviderError(err, "failed to list repositories")
	}
	return repos, nil
}

// Team returns the entity owning the repositories, or nil when the backend
// has no such concept for this owner.
func (c *Client) Team(ctx context.Context) (*TeamData, error) {
	team, err := c.provider.GetTeam(ctx)
	if err != nil {
		return nil, wrapProviderError(err, "failed to get team")
	}
	return team, nil
}

// SupportsWebhooks reports whether webhook operations have any effect.
func (c *Client) SupportsWebhooks() bool {
	return c.provider.Capabilities().Webhooks
}

// Provider returns the underlying Provider.
// This is an escape hatch for operations not covered by the high-level API.
func (c *Client) Provider() Provider {
	return c.provider
}

// Owner returns the owner the provider is scoped to.
func (c *Client) Owner() string {
	return c.provider.Owner()
}
