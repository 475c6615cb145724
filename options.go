package bitbucket

// RepositoryListOption configures repository listing.
type RepositoryListOption func(*ListRepositoriesOptions)

// WithRole filters repositories by the caller's role.
// Bitbucket Server ignores the filter.
func WithRole(role Role) RepositoryListOption {
	return func(opts *ListRepositoriesOptions) {
		opts.Role = role
	}
}

// StatusOption configures a build status report.
type StatusOption func(*BuildStatus)

// WithStatusKey sets the key that identifies the build. Reports with the same
// key replace each other.
func WithStatusKey(key string) StatusOption {
	return func(status *BuildStatus) {
		status.Key = key
	}
}

// WithStatusName sets the display name of the build.
func WithStatusName(name string) StatusOption {
	return func(status *BuildStatus) {
		status.Name = name
	}
}

// WithStatusURL sets the link to the build result.
func WithStatusURL(url string) StatusOption {
	return func(status *BuildStatus) {
		status.URL = url
	}
}

// WithStatusDescription sets a short description of the result.
func WithStatusDescription(description string) StatusOption {
	return func(status *BuildStatus) {
		status.Description = description
	}
}
