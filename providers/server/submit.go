package server

import (
	"context"

	"github.com/jmgilman/go/bitbucket"
)

// failurePolicy decides which failures of a POST reach the caller. Failures
// that are not raised are logged as warnings.
type failurePolicy struct {
	raiseEncoding  bool
	raiseTransport bool
}

var (
	// commentPolicy: a comment that cannot be encoded is dropped, but a
	// rejected or failed request is returned.
	commentPolicy = failurePolicy{raiseEncoding: false, raiseTransport: true}

	// statusPolicy: build status reporting is fire-and-forget.
	statusPolicy = failurePolicy{raiseEncoding: false, raiseTransport: false}
)

// pair is one field of a flat JSON object body.
type pair struct {
	name  string
	value string
}

// pairsObject turns pairs into a flat object; later pairs win on duplicate names.
func pairsObject(pairs ...pair) map[string]string {
	obj := make(map[string]string, len(pairs))
	for _, p := range pairs {
		obj[p.name] = p.value
	}
	return obj
}

// PostCommitComment adds a comment to a commit of the repository.
// Encoding failures are logged; request failures are returned.
func (p *Provider) PostCommitComment(ctx context.Context, hash, comment string) error {
	return p.submit(ctx, p.endpoints.commitComments(hash), pairsObject(pair{"text", comment}), "commit comment", commentPolicy)
}

// PostBuildStatus reports status against status.Hash. Every failure is
// logged and nil is returned.
func (p *Provider) PostBuildStatus(ctx context.Context, status *bitbucket.BuildStatus) error {
	if status == nil {
		p.logger.Warn("build status skipped", "reason", "nil status")
		return nil
	}
	return p.submit(ctx, p.endpoints.buildStatus(status.Hash), status, "build status", statusPolicy)
}

// submit encodes payload as JSON and posts it to path, applying policy to
// any failure.
func (p *Provider) submit(ctx context.Context, path string, payload any, what string, policy failurePolicy) error {
	body, err := p.marshal(payload)
	if err != nil {
		err = bitbucket.NewEncodingError(err, what)
		if policy.raiseEncoding {
			return err
		}
		p.logger.Warn("encoding error", "payload", what, "err", err)
		return nil
	}

	if _, err := p.transport.post(ctx, path, body); err != nil {
		if policy.raiseTransport {
			return err
		}
		p.logger.Warn("request failed", "payload", what, "path", path, "status", bitbucket.StatusCode(err), "err", err)
	}
	return nil
}
