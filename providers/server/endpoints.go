package server

import (
	"fmt"
	"net/url"
	"strings"
)

// REST path templates. Owner segments are rendered by renderOwner except in
// projectPath, which always takes the raw project key.
const (
	apiBasePath = "/rest/api/1.0"

	repositoriesPath   = apiBasePath + "/projects/%s/repos?start=%d"
	repositoryPath     = apiBasePath + "/projects/%s/repos/%s"
	branchesPath       = repositoryPath + "/branches?start=%d"
	pullRequestsPath   = repositoryPath + "/pull-requests?start=%d"
	pullRequestPath    = repositoryPath + "/pull-requests/%d"
	browsePath         = repositoryPath + "/browse/%s?at=%s"
	commitPath         = repositoryPath + "/commits/%s"
	commitCommentsPath = repositoryPath + "/commits/%s/comments"
	projectPath        = apiBasePath + "/projects/%s"
	buildStatusPath    = "/rest/build-status/1.0/commits/%s"
)

// endpoints formats request paths for one owner and repository scope.
type endpoints struct {
	owner      string // rendered owner segment
	project    string // raw owner, used for the project resource
	repository string
}

func newEndpoints(owner, repository string, userCentric bool) endpoints {
	return endpoints{
		owner:      renderOwner(owner, userCentric),
		project:    owner,
		repository: repository,
	}
}

func (e endpoints) repositories(start int) string {
	return fmt.Sprintf(repositoriesPath, e.owner, start)
}

func (e endpoints) repositoryInfo() string {
	return fmt.Sprintf(repositoryPath, e.owner, e.repository)
}

func (e endpoints) branches(start int) string {
	return fmt.Sprintf(branchesPath, e.owner, e.repository, start)
}

func (e endpoints) pullRequests(start int) string {
	return fmt.Sprintf(pullRequestsPath, e.owner, e.repository, start)
}

func (e endpoints) pullRequest(id int) string {
	return fmt.Sprintf(pullRequestPath, e.owner, e.repository, id)
}

// browse escapes each path segment and the branch, so names holding '#',
// '?' or '&' address the intended file and ref.
func (e endpoints) browse(path, branch string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf(browsePath, e.owner, e.repository, strings.Join(segments, "/"), url.QueryEscape(branch))
}

func (e endpoints) commit(hash string) string {
	return fmt.Sprintf(commitPath, e.owner, e.repository, hash)
}

func (e endpoints) commitComments(hash string) string {
	return fmt.Sprintf(commitCommentsPath, e.owner, e.repository, hash)
}

func (e endpoints) projectInfo() string {
	return fmt.Sprintf(projectPath, e.project)
}

func (e endpoints) buildStatus(hash string) string {
	return fmt.Sprintf(buildStatusPath, hash)
}
