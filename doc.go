// Package bitbucket provides a clean, idiomatic wrapper around Bitbucket Server
// operations.
//
// The package defines a backend-neutral Provider interface and a high-level
// API (Client, Repository, PullRequest) on top of it. The Bitbucket Server
// REST implementation lives in providers/server; profiles that configure it
// live in config.
//
// # Architecture
//
//  1. Provider abstraction through the Provider interface
//  2. A Bitbucket Server provider scoped to one owner and, optionally, one repository
//  3. High-level types (Client, Repository, PullRequest)
//  4. An escape hatch (Client.Provider) for direct provider calls
//  5. Structured errors from the errors sub-package
//  6. Context support for cancellation on top of fixed request timeouts
//
// # Owners
//
// An owner is either a project key ("PROJ") or, for personal repositories, a
// user name. User-centric providers address the owner as "~name" in request
// paths and have no team.
//
// # Usage
//
//	provider, err := server.New("https://scm.example", "PROJ",
//	    server.WithRepository("svc"),
//	    server.WithCredentialSource(server.KeyringCredentials{Service: "bitbucket", Username: "ci-bot"}),
//	    server.WithProxySource(server.EnvironmentProxy{}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := bitbucket.NewClient(provider)
//	repo := client.Repository()
//
//	branches, err := repo.Branches(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, b := range branches {
//	    fmt.Println(b.Name)
//	}
//
//	if repo.PathExists(ctx, "main", "Jenkinsfile") {
//	    _ = repo.ReportStatus(ctx, hash, bitbucket.BuildStateInProgress,
//	        bitbucket.WithStatusKey("ci/build"),
//	        bitbucket.WithStatusURL(buildURL),
//	    )
//	}
//
// Listings follow the server's page cursor until the last page or a page
// cap (100 pages by default), whichever comes first. Hitting the cap is
// logged and the partial listing is returned.
//
// # Error Handling
//
// Every failure carries one of these codes:
//
//   - ErrCodeTransport: no usable response (connection, timeout, proxy); retryable
//   - ErrCodeUnexpectedStatus: a status the operation does not accept; the
//     status, reason and body are attached as context. 429 and 5xx are retryable
//   - ErrCodeDecode: a successful response whose body has the wrong shape
//   - ErrCodeEncoding: a request payload that could not be serialized
//
// Use StatusCode and ResponseBody to read the attached response:
//
//	if err := repo.Comment(ctx, hash, text); err != nil {
//	    if bitbucket.StatusCode(err) == http.StatusForbidden {
//	        fmt.Println("no permission to comment")
//	    }
//	    return err
//	}
//
// Build status reporting never fails: delivery problems are logged as
// warnings. PathExists reports false on any failure.
//
// # Testing
//
// The mocks sub-package provides a moq-generated ProviderMock:
//
//	mock := &mocks.ProviderMock{
//	    OwnerFunc:          func() string { return "PROJ" },
//	    RepositoryNameFunc: func() string { return "svc" },
//	    ListBranchesFunc: func(ctx context.Context) ([]*bitbucket.BranchData, error) {
//	        return []*bitbucket.BranchData{{Name: "main"}}, nil
//	    },
//	}
//	client := bitbucket.NewClient(mock)
//
// # References
//
//   - Bitbucket Server REST API: https://developer.atlassian.com/server/bitbucket/rest/
package bitbucket
