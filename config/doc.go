// Package config loads Bitbucket client profiles.
//
// A profile is a CUE or YAML document checked against an embedded CUE schema.
// Fields left out take their schema defaults (max_pages 100, timeouts 10s and
// 60s). Secrets never live in the profile: credentials name either an
// environment variable or a system keyring entry.
//
// Example profile (bitbucket.cue):
//
//	base_url:   "https://scm.example"
//	owner:      "PROJ"
//	repository: "svc"
//	credentials: {
//	    username: "ci-bot"
//	    keyring: service: "bitbucket"
//	}
//	proxy: from_environment: true
//
// Loading it:
//
//	loader := config.NewOSLoader(".")
//	profile, err := loader.Discover(ctx)
//	if err != nil {
//	    return err
//	}
//	provider, err := profile.NewProvider(logger)
//
// Loaders read through a billy.Filesystem, so tests can use memfs.
package config
