package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jmgilman/go/bitbucket"
	"github.com/jmgilman/go/bitbucket/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		provider, err := New("https://scm.example/", "TEAM")

		require.NoError(t, err)
		id := provider.Identity()
		assert.Equal(t, "https://scm.example", id.BaseURL)
		assert.Equal(t, "TEAM", id.Owner)
		assert.Empty(t, id.Repository)
		assert.False(t, id.UserCentric)
		assert.Nil(t, id.Credentials)
		assert.Equal(t, DefaultMaxPages, provider.pager.maxPages)
		assert.Equal(t, DefaultConnectTimeout, provider.transport.connectTimeout)
		assert.Equal(t, DefaultReadTimeout, provider.transport.readTimeout)
	})

	t.Run("with options", func(t *testing.T) {
		t.Parallel()

		provider, err := New("https://scm.example", "alice",
			WithRepository("svc"),
			WithUserCentric(true),
			WithCredentials("ci-bot", "s3cret"),
			WithMaxPages(5),
			WithTimeouts(time.Second, 2*time.Second),
			WithUserAgent("ci/1.0"),
		)

		require.NoError(t, err)
		id := provider.Identity()
		assert.Equal(t, "svc", id.Repository)
		assert.True(t, id.UserCentric)
		require.NotNil(t, id.Credentials)
		assert.Equal(t, "ci-bot", id.Credentials.Username)
		assert.Equal(t, 5, provider.pager.maxPages)
		assert.Equal(t, time.Second, provider.transport.connectTimeout)
		assert.Equal(t, "ci/1.0", provider.transport.userAgent)
		assert.Equal(t, "alice", provider.Owner())
		assert.Equal(t, "svc", provider.RepositoryName())
	})

	t.Run("identity is a copy", func(t *testing.T) {
		t.Parallel()

		provider, err := New("https://scm.example", "TEAM", WithCredentials("ci-bot", "s3cret"))
		require.NoError(t, err)

		id := provider.Identity()
		id.Credentials.Password = "changed"

		assert.Equal(t, "s3cret", provider.Identity().Credentials.Password)
	})

	tests := []struct {
		name    string
		baseURL string
		owner   string
		opts    []Option
		field   string
	}{
		{name: "empty base URL", baseURL: "", owner: "TEAM", field: "base_url"},
		{name: "base URL without scheme", baseURL: "scm.example", owner: "TEAM", field: "base_url"},
		{name: "unsupported scheme", baseURL: "ftp://scm.example", owner: "TEAM", field: "base_url"},
		{name: "empty owner", baseURL: "https://scm.example", owner: "", field: "owner"},
		{name: "empty repository", baseURL: "https://scm.example", owner: "TEAM", opts: []Option{WithRepository("")}, field: "repository"},
		{name: "empty username", baseURL: "https://scm.example", owner: "TEAM", opts: []Option{WithCredentials("", "x")}, field: "username"},
		{name: "nil credential source", baseURL: "https://scm.example", owner: "TEAM", opts: []Option{WithCredentialSource(nil)}, field: "credentials"},
		{name: "nil proxy source", baseURL: "https://scm.example", owner: "TEAM", opts: []Option{WithProxySource(nil)}, field: "proxy"},
		{name: "nil logger", baseURL: "https://scm.example", owner: "TEAM", opts: []Option{WithLogger(nil)}, field: "logger"},
		{name: "zero max pages", baseURL: "https://scm.example", owner: "TEAM", opts: []Option{WithMaxPages(0)}, field: "max_pages"},
		{name: "negative timeout", baseURL: "https://scm.example", owner: "TEAM", opts: []Option{WithTimeouts(-1, time.Second)}, field: "timeouts"},
		{name: "empty user agent", baseURL: "https://scm.example", owner: "TEAM", opts: []Option{WithUserAgent("")}, field: "user_agent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.baseURL, tt.owner, tt.opts...)

			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
			field, ok := errors.GetContext(err, "field")
			require.True(t, ok)
			assert.Equal(t, tt.field, field)
		})
	}

	t.Run("credential source failure", func(t *testing.T) {
		t.Parallel()

		_, err := New("https://scm.example", "TEAM", WithCredentialSource(failingCredentials{}))

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}

type failingCredentials struct{}

func (failingCredentials) Credentials() (*Credentials, error) {
	return nil, stderrors.New("keyring locked")
}

func branchPage(values []string, last bool, next int) string {
	type branch struct {
		ID        string `json:"id"`
		DisplayID string `json:"displayId"`
	}
	p := page[branch]{Values: []branch{}, IsLastPage: last, NextPageStart: next}
	for _, v := range values {
		p.Values = append(p.Values, branch{ID: "refs/heads/" + v, DisplayID: v})
	}
	data, _ := json.Marshal(p)
	return string(data)
}

func TestProvider_ListBranches(t *testing.T) {
	t.Parallel()

	t.Run("walks two pages", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("start") {
			case "0":
				_, _ = w.Write([]byte(branchPage([]string{"main"}, false, 25)))
			case "25":
				_, _ = w.Write([]byte(branchPage([]string{"dev"}, true, 0)))
			default:
				w.WriteHeader(http.StatusBadRequest)
			}
		})
		provider := newTestProvider(t, rec.URL(), "proj1", WithRepository("svc"))

		branches, err := provider.ListBranches(context.Background())

		require.NoError(t, err)
		require.Len(t, branches, 2)
		assert.Equal(t, "main", branches[0].Name)
		assert.Equal(t, "refs/heads/main", branches[0].ID)
		assert.Equal(t, "dev", branches[1].Name)
		assert.Equal(t, []string{
			"/rest/api/1.0/projects/proj1/repos/svc/branches?start=0",
			"/rest/api/1.0/projects/proj1/repos/svc/branches?start=25",
		}, rec.URIs())
	})

	t.Run("user centric owner", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, branchPage(nil, true, 0)))
		provider := newTestProvider(t, rec.URL(), "alice", WithRepository("svc"), WithUserCentric(true))

		branches, err := provider.ListBranches(context.Background())

		require.NoError(t, err)
		assert.Empty(t, branches)
		assert.Equal(t, []string{"/rest/api/1.0/projects/~alice/repos/svc/branches?start=0"}, rec.URIs())
	})

	t.Run("stops after the page cap", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, branchPage([]string{"x"}, false, 1)))
		provider := newTestProvider(t, rec.URL(), "proj1", WithRepository("svc"))

		branches, err := provider.ListBranches(context.Background())

		require.NoError(t, err)
		assert.Len(t, branches, 100)
		assert.Len(t, rec.Requests(), 100)
	})

	t.Run("empty object is not a page", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, `{}`))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		branches, err := provider.ListBranches(context.Background())

		require.Error(t, err)
		assert.Nil(t, branches)
		assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
		assert.Equal(t, []string{"/rest/api/1.0/projects/TEAM/repos/svc/branches?start=0"}, rec.URIs())
	})
}

func TestProvider_ListRepositories(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, respond(http.StatusOK, `{
		"values": [
			{"id": 1, "slug": "svc", "name": "Service", "scmId": "git", "state": "AVAILABLE", "public": false,
			 "project": {"key": "~ALICE"},
			 "links": {"clone": [{"href": "https://scm.example/scm/~alice/svc.git", "name": "http"},
			                     {"href": "ssh://git@scm.example:7999/~alice/svc.git", "name": "ssh"}],
			           "self": [{"href": "https://scm.example/users/alice/repos/svc/browse"}]}},
			{"id": 2, "slug": "lib", "name": "Lib", "public": true, "origin": {"id": 9, "slug": "upstream"},
			 "project": {"key": "~ALICE"}}
		],
		"isLastPage": true
	}`))
	provider := newTestProvider(t, rec.URL(), "alice", WithUserCentric(true))

	repos, err := provider.ListRepositories(context.Background(), bitbucket.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, []string{"/rest/api/1.0/projects/~alice/repos?start=0"}, rec.URIs())
	require.Len(t, repos, 2)

	assert.Equal(t, "svc", repos[0].Slug)
	assert.Equal(t, "ALICE", repos[0].Owner)
	assert.Equal(t, "~ALICE", repos[0].ProjectKey)
	assert.True(t, repos[0].Private)
	assert.False(t, repos[0].Fork)
	assert.Equal(t, "https://scm.example/scm/~alice/svc.git", repos[0].CloneURL)
	assert.Equal(t, "ssh://git@scm.example:7999/~alice/svc.git", repos[0].SSHURL)
	assert.Equal(t, "https://scm.example/users/alice/repos/svc/browse", repos[0].HTMLURL)

	assert.False(t, repos[1].Private)
	assert.True(t, repos[1].Fork)
}

func TestProvider_GetRepository(t *testing.T) {
	t.Parallel()

	t.Run("no repository configured makes no request", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, `{}`))
		provider := newTestProvider(t, rec.URL(), "TEAM")

		repo, err := provider.GetRepository(context.Background())

		require.NoError(t, err)
		assert.Nil(t, repo)
		assert.Empty(t, rec.Requests())

		private, err := provider.IsPrivate(context.Background())
		require.NoError(t, err)
		assert.False(t, private)
	})

	t.Run("fetches the repository", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, `{"id": 7, "slug": "svc", "name": "svc", "public": false, "project": {"key": "TEAM"}}`))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		repo, err := provider.GetRepository(context.Background())

		require.NoError(t, err)
		require.NotNil(t, repo)
		assert.Equal(t, int64(7), repo.ID)
		assert.Equal(t, "TEAM/svc", repo.FullName())
		assert.Equal(t, []string{"/rest/api/1.0/projects/TEAM/repos/svc"}, rec.URIs())

		private, err := provider.IsPrivate(context.Background())
		require.NoError(t, err)
		assert.True(t, private)
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusInternalServerError, "database unavailable"))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		_, err := provider.GetRepository(context.Background())

		require.Error(t, err)
		assert.Equal(t, errors.CodeUnexpectedStatus, errors.GetCode(err))
		assert.Equal(t, 500, bitbucket.StatusCode(err))
		assert.Equal(t, "database unavailable", bitbucket.ResponseBody(err))

		_, err = provider.IsPrivate(context.Background())
		require.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, `{"id": "seven"`))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		repo, err := provider.GetRepository(context.Background())

		require.Error(t, err)
		assert.Nil(t, repo)
		assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
	})

	for _, body := range []string{`null`, `{}`} {
		t.Run("rejects "+body, func(t *testing.T) {
			t.Parallel()

			rec := newRecorder(t, respond(http.StatusOK, body))
			provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

			repo, err := provider.GetRepository(context.Background())
			require.Error(t, err)
			assert.Nil(t, repo)
			assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))

			private, err := provider.IsPrivate(context.Background())
			require.Error(t, err)
			assert.False(t, private)
		})
	}
}

func TestProvider_PullRequests(t *testing.T) {
	t.Parallel()

	const pr = `{
		"id": 42, "version": 3, "title": "Add feature", "description": "Adds it", "state": "OPEN",
		"fromRef": {"id": "refs/heads/feature", "displayId": "feature", "latestCommit": "abc123",
		            "repository": {"slug": "svc-fork", "project": {"key": "~BOB"}}},
		"toRef": {"id": "refs/heads/main", "displayId": "main", "latestCommit": "def456",
		          "repository": {"slug": "svc", "project": {"key": "TEAM"}}},
		"author": {"user": {"name": "bob", "emailAddress": "bob@example.com"}},
		"createdDate": 1700000000000,
		"updatedDate": 1700000360000,
		"links": {"self": [{"href": "https://scm.example/projects/TEAM/repos/svc/pull-requests/42"}]}
	}`

	t.Run("get by id", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, pr))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		got, err := provider.GetPullRequest(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, []string{"/rest/api/1.0/projects/TEAM/repos/svc/pull-requests/42"}, rec.URIs())
		assert.Equal(t, 42, got.ID)
		assert.Equal(t, "feature", got.Source.Branch)
		assert.Equal(t, "abc123", got.Source.Commit.Hash)
		assert.Equal(t, "svc-fork", got.Source.Repository)
		assert.Equal(t, "BOB", got.Source.Owner)
		assert.Equal(t, "main", got.Destination.Branch)
		assert.Equal(t, "bob", got.Author)
		assert.Equal(t, time.UnixMilli(1700000000000).UTC(), got.CreatedAt)
		assert.Equal(t, "https://scm.example/projects/TEAM/repos/svc/pull-requests/42", got.HTMLURL)
	})

	t.Run("invalid pull request response", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, `not json`))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		_, err := provider.GetPullRequest(context.Background(), 42)

		require.Error(t, err)
		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, errors.CodeDecodeFailed, platformErr.Code())
		assert.Equal(t, "invalid pull request response", platformErr.Message())
	})

	t.Run("null body", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, `null`))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		got, err := provider.GetPullRequest(context.Background(), 42)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, fmt.Sprintf(`{"values": [%s], "isLastPage": true}`, pr)))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		prs, err := provider.ListPullRequests(context.Background())

		require.NoError(t, err)
		require.Len(t, prs, 1)
		assert.Equal(t, "Add feature", prs[0].Title)
		assert.Equal(t, []string{"/rest/api/1.0/projects/TEAM/repos/svc/pull-requests?start=0"}, rec.URIs())
	})

	t.Run("source full hash needs no request", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, `{}`))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))
		data := &bitbucket.PullRequestData{Source: bitbucket.PullRequestRef{Commit: bitbucket.CommitRef{Hash: "abc123"}}}

		assert.Equal(t, "abc123", provider.ResolveSourceFullHash(data))
		assert.Empty(t, provider.ResolveSourceFullHash(nil))
		assert.Empty(t, rec.Requests())
	})
}

func TestProvider_ResolveCommit(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, respond(http.StatusOK, `{
		"id": "abc123def456", "displayId": "abc123d", "message": "Fix build",
		"author": {"name": "alice", "emailAddress": "alice@example.com"},
		"authorTimestamp": 1700000000000
	}`))
	provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

	commit, err := provider.ResolveCommit(context.Background(), "abc123def456")

	require.NoError(t, err)
	assert.Equal(t, []string{"/rest/api/1.0/projects/TEAM/repos/svc/commits/abc123def456"}, rec.URIs())
	assert.Equal(t, "abc123def456", commit.Hash)
	assert.Equal(t, "abc123d", commit.DisplayHash)
	assert.Equal(t, "Fix build", commit.Message)
	assert.Equal(t, "alice@example.com", commit.AuthorEmail)
}

func TestProvider_CheckPathExists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"exists", http.StatusOK, true},
		{"missing", http.StatusNotFound, false},
		{"server error", http.StatusInternalServerError, false},
		{"no content", http.StatusNoContent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := newRecorder(t, respond(tt.status, `{}`))
			provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

			assert.Equal(t, tt.want, provider.CheckPathExists(context.Background(), "main", "Jenkinsfile"))
			assert.Equal(t, []string{"/rest/api/1.0/projects/TEAM/repos/svc/browse/Jenkinsfile?at=main"}, rec.URIs())
		})
	}

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, closedServerURL(t), "TEAM", WithRepository("svc"))

		assert.False(t, provider.CheckPathExists(context.Background(), "main", "Jenkinsfile"))
	})

	t.Run("special characters reach the server escaped", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/rest/api/1.0/projects/TEAM/repos/svc/browse/docs/c#1.md" || r.URL.Query().Get("at") != "feature/a&b" {
				w.WriteHeader(http.StatusNotFound)
			}
		})
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		assert.True(t, provider.CheckPathExists(context.Background(), "feature/a&b", "docs/c#1.md"))
		assert.Equal(t, []string{"/rest/api/1.0/projects/TEAM/repos/svc/browse/docs/c%231.md?at=feature%2Fa%26b"}, rec.URIs())
	})
}

func TestProvider_GetTeam(t *testing.T) {
	t.Parallel()

	t.Run("project centric fetches the project", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, `{"key": "TEAM", "id": 3, "name": "The Team", "description": "d", "public": true}`))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		team, err := provider.GetTeam(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "TEAM", team.Key)
		assert.Equal(t, "The Team", team.Name)
		assert.True(t, team.Public)
		assert.Equal(t, []string{"/rest/api/1.0/projects/TEAM"}, rec.URIs())
	})

	t.Run("user centric has no team", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, `{}`))
		provider := newTestProvider(t, rec.URL(), "alice", WithUserCentric(true))

		team, err := provider.GetTeam(context.Background())

		require.NoError(t, err)
		assert.Nil(t, team)
		assert.Empty(t, rec.Requests())
	})

	t.Run("invalid project response", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusOK, `[]`))
		provider := newTestProvider(t, rec.URL(), "TEAM")

		_, err := provider.GetTeam(context.Background())

		require.Error(t, err)
		assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
	})
}

func TestProvider_PostCommitComment(t *testing.T) {
	t.Parallel()

	t.Run("posts text as flat object", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusCreated, `{"id": 1, "text": "Build passed"}`))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"), WithCredentials("ci-bot", "s3cret"))

		err := provider.PostCommitComment(context.Background(), "abc123", "Build passed")

		require.NoError(t, err)
		requests := rec.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, http.MethodPost, requests[0].Method)
		assert.Equal(t, "/rest/api/1.0/projects/TEAM/repos/svc/commits/abc123/comments", requests[0].URI)
		assert.JSONEq(t, `{"text": "Build passed"}`, requests[0].Body)
	})

	t.Run("encoding failure is logged not raised", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusCreated, `{}`))
		logger, buf := bufferLogger()
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"), WithLogger(logger))
		provider.marshal = func(any) ([]byte, error) {
			return nil, stderrors.New("unsupported value")
		}

		err := provider.PostCommitComment(context.Background(), "abc123", "Build passed")

		require.NoError(t, err)
		assert.Empty(t, rec.Requests())
		assert.Contains(t, buf.String(), "encoding error")
	})

	t.Run("rejected request is raised", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusForbidden, `{"errors":[{"message":"no permission"}]}`))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		err := provider.PostCommitComment(context.Background(), "abc123", "Build passed")

		require.Error(t, err)
		assert.Equal(t, 403, bitbucket.StatusCode(err))
	})

	t.Run("transport failure is raised", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, closedServerURL(t), "TEAM", WithRepository("svc"))

		err := provider.PostCommitComment(context.Background(), "abc123", "Build passed")

		require.Error(t, err)
		assert.Equal(t, errors.CodeTransport, errors.GetCode(err))
	})
}

func TestProvider_PostBuildStatus(t *testing.T) {
	t.Parallel()

	status := &bitbucket.BuildStatus{
		Hash:        "abc123",
		State:       bitbucket.BuildStateSuccessful,
		Key:         "ci/build",
		Name:        "CI",
		URL:         "https://ci.example/job/1",
		Description: "All good",
	}

	t.Run("posts to the global status endpoint", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusNoContent, ""))
		provider := newTestProvider(t, rec.URL(), "alice", WithRepository("svc"), WithUserCentric(true))

		err := provider.PostBuildStatus(context.Background(), status)

		require.NoError(t, err)
		requests := rec.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, "/rest/build-status/1.0/commits/abc123", requests[0].URI)
		assert.JSONEq(t, `{"state":"SUCCESSFUL","key":"ci/build","name":"CI","url":"https://ci.example/job/1","description":"All good"}`, requests[0].Body)
	})

	t.Run("request failure is logged not raised", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusBadRequest, `{"errors":[]}`))
		logger, buf := bufferLogger()
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"), WithLogger(logger))

		err := provider.PostBuildStatus(context.Background(), status)

		require.NoError(t, err)
		assert.Len(t, rec.Requests(), 1)
		assert.Contains(t, buf.String(), "request failed")
	})

	t.Run("transport failure is logged not raised", func(t *testing.T) {
		t.Parallel()

		logger, buf := bufferLogger()
		provider := newTestProvider(t, closedServerURL(t), "TEAM", WithRepository("svc"), WithLogger(logger))

		err := provider.PostBuildStatus(context.Background(), status)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "request failed")
	})

	t.Run("encoding failure is logged not raised", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusNoContent, ""))
		logger, buf := bufferLogger()
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"), WithLogger(logger))
		provider.marshal = func(any) ([]byte, error) {
			return nil, stderrors.New("unsupported value")
		}

		err := provider.PostBuildStatus(context.Background(), status)

		require.NoError(t, err)
		assert.Empty(t, rec.Requests())
		assert.Contains(t, buf.String(), "encoding error")
	})

	t.Run("nil status", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, respond(http.StatusNoContent, ""))
		provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))

		require.NoError(t, provider.PostBuildStatus(context.Background(), nil))
		assert.Empty(t, rec.Requests())
	})
}

func TestProvider_Webhooks(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, respond(http.StatusOK, `{}`))
	provider := newTestProvider(t, rec.URL(), "TEAM", WithRepository("svc"))
	ctx := context.Background()
	hook := &bitbucket.WebhookData{URL: "https://ci.example/hook"}

	hooks, err := provider.ListWebhooks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, hooks)
	assert.Empty(t, hooks)

	assert.NoError(t, provider.RegisterCommitWebhook(ctx, hook))
	assert.NoError(t, provider.RemoveCommitWebhook(ctx, hook))
	assert.False(t, provider.Capabilities().Webhooks)
	assert.Empty(t, rec.Requests())
}
