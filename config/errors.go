package config

import (
	"github.com/jmgilman/go/bitbucket/errors"
)

// wrapLoadErrorWithContext wraps an error with CodeConfigLoadFailed and attaches context metadata.
func wrapLoadErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigLoadFailed, message, ctx)
}

// wrapValidationErrorWithContext wraps an error with CodeConfigValidationFailed and attaches context metadata.
func wrapValidationErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigValidationFailed, message, ctx)
}

// wrapDecodeErrorWithContext wraps an error with CodeConfigDecodeFailed and attaches context metadata.
func wrapDecodeErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigDecodeFailed, message, ctx)
}

// makeContext builds a context map from alternating keys and values.
// Example: makeContext("path", "bitbucket.cue", "format", "yaml").
func makeContext(kvPairs ...interface{}) map[string]interface{} {
	if len(kvPairs) == 0 {
		return nil
	}

	ctx := make(map[string]interface{})
	for i := 0; i < len(kvPairs)-1; i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kvPairs[i+1]
	}

	if len(ctx) == 0 {
		return nil
	}
	return ctx
}
