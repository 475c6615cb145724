package server

import (
	"strings"

	"github.com/jmgilman/go/bitbucket"
)

// Wire shapes of the Bitbucket Server REST API. Only the fields the client
// reads are declared.

type serverLink struct {
	Href string `json:"href"`
	Name string `json:"name"`
}

type serverLinks struct {
	Self  []serverLink `json:"self"`
	Clone []serverLink `json:"clone"`
}

func (l serverLinks) self() string {
	if len(l.Self) == 0 {
		return ""
	}
	return l.Self[0].Href
}

func (l serverLinks) clone(name string) string {
	for _, link := range l.Clone {
		if link.Name == name {
			return link.Href
		}
	}
	return ""
}

type serverProject struct {
	Key         string      `json:"key"`
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Public      bool        `json:"public"`
	Type        string      `json:"type"`
	Links       serverLinks `json:"links"`
}

type serverRepository struct {
	ID      int64             `json:"id"`
	Slug    string            `json:"slug"`
	Name    string            `json:"name"`
	ScmID   string            `json:"scmId"`
	State   string            `json:"state"`
	Public  bool              `json:"public"`
	Origin  *serverRepository `json:"origin"`
	Project serverProject     `json:"project"`
	Links   serverLinks       `json:"links"`
}

type serverBranch struct {
	ID           string `json:"id"`
	DisplayID    string `json:"displayId"`
	LatestCommit string `json:"latestCommit"`
	IsDefault    bool   `json:"isDefault"`
}

type serverUser struct {
	Name         string `json:"name"`
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName"`
}

type serverRef struct {
	ID           string           `json:"id"`
	DisplayID    string           `json:"displayId"`
	LatestCommit string           `json:"latestCommit"`
	Repository   serverRepository `json:"repository"`
}

type serverParticipant struct {
	User serverUser `json:"user"`
}

type serverPullRequest struct {
	ID          int               `json:"id"`
	Version     int               `json:"version"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	State       string            `json:"state"`
	FromRef     serverRef         `json:"fromRef"`
	ToRef       serverRef         `json:"toRef"`
	Author      serverParticipant `json:"author"`
	CreatedDate int64             `json:"createdDate"`
	UpdatedDate int64             `json:"updatedDate"`
	Links       serverLinks       `json:"links"`
}

type serverCommit struct {
	ID              string     `json:"id"`
	DisplayID       string     `json:"displayId"`
	Message         string     `json:"message"`
	Author          serverUser `json:"author"`
	AuthorTimestamp int64      `json:"authorTimestamp"`
}

func (p *serverProject) check() error {
	if p.ID == 0 {
		return missing("id")
	}
	return nil
}

func (r *serverRepository) check() error {
	if r.ID == 0 {
		return missing("id")
	}
	return nil
}

func (pr *serverPullRequest) check() error {
	if pr.ID == 0 {
		return missing("id")
	}
	return nil
}

func (c *serverCommit) check() error {
	if c.ID == "" {
		return missing("id")
	}
	return nil
}

// ownerOf strips the personal project marker from a project key.
func ownerOf(project serverProject) string {
	return strings.TrimPrefix(project.Key, userSigil)
}

func convertRepository(r *serverRepository) *bitbucket.RepositoryData {
	return &bitbucket.RepositoryData{
		ID:         r.ID,
		Slug:       r.Slug,
		Name:       r.Name,
		Owner:      ownerOf(r.Project),
		ProjectKey: r.Project.Key,
		SCM:        r.ScmID,
		State:      r.State,
		Private:    !r.Public,
		Fork:       r.Origin != nil,
		CloneURL:   r.Links.clone("http"),
		SSHURL:     r.Links.clone("ssh"),
		HTMLURL:    r.Links.self(),
	}
}

func convertRepositories(repos []serverRepository) []*bitbucket.RepositoryData {
	out := make([]*bitbucket.RepositoryData, len(repos))
	for i := range repos {
		out[i] = convertRepository(&repos[i])
	}
	return out
}

func convertBranches(branches []serverBranch) []*bitbucket.BranchData {
	out := make([]*bitbucket.BranchData, len(branches))
	for i, b := range branches {
		out[i] = &bitbucket.BranchData{
			ID:           b.ID,
			Name:         b.DisplayID,
			LatestCommit: b.LatestCommit,
			IsDefault:    b.IsDefault,
		}
	}
	return out
}

func convertRef(ref serverRef) bitbucket.PullRequestRef {
	return bitbucket.PullRequestRef{
		Branch:     ref.DisplayID,
		Commit:     bitbucket.CommitRef{Hash: ref.LatestCommit},
		Repository: ref.Repository.Slug,
		Owner:      ownerOf(ref.Repository.Project),
	}
}

func convertPullRequest(pr *serverPullRequest) *bitbucket.PullRequestData {
	return &bitbucket.PullRequestData{
		ID:          pr.ID,
		Version:     pr.Version,
		Title:       pr.Title,
		Description: pr.Description,
		Source:      convertRef(pr.FromRef),
		Destination: convertRef(pr.ToRef),
		State:       pr.State,
		Author:      pr.Author.User.Name,
		HTMLURL:     pr.Links.self(),
		CreatedAt:   bitbucket.FromEpochMillis(pr.CreatedDate),
		UpdatedAt:   bitbucket.FromEpochMillis(pr.UpdatedDate),
	}
}

func convertPullRequests(prs []serverPullRequest) []*bitbucket.PullRequestData {
	out := make([]*bitbucket.PullRequestData, len(prs))
	for i := range prs {
		out[i] = convertPullRequest(&prs[i])
	}
	return out
}

func convertCommit(c *serverCommit) *bitbucket.CommitData {
	return &bitbucket.CommitData{
		Hash:        c.ID,
		DisplayHash: c.DisplayID,
		Message:     c.Message,
		Author:      c.Author.Name,
		AuthorEmail: c.Author.EmailAddress,
		AuthoredAt:  bitbucket.FromEpochMillis(c.AuthorTimestamp),
	}
}

func convertTeam(p *serverProject) *bitbucket.TeamData {
	return &bitbucket.TeamData{
		Key:         p.Key,
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Public:      p.Public,
		HTMLURL:     p.Links.self(),
	}
}
