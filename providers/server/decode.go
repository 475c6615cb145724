package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jmgilman/go/bitbucket"
)

// checked is implemented by wire shapes that require fields to be present.
type checked interface {
	check() error
}

// decode maps a response body onto T. Any mismatch is reported as a decode
// error naming resource, even when the request itself succeeded. A null body
// and a body missing required fields are mismatches.
func decode[T any](body, resource string) (T, error) {
	var out T
	if bytes.Equal(bytes.TrimSpace([]byte(body)), []byte("null")) {
		return out, bitbucket.NewDecodeError(resource, fmt.Errorf("null body"))
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		var zero T
		return zero, bitbucket.NewDecodeError(resource, err)
	}
	if c, ok := any(&out).(checked); ok {
		if err := c.check(); err != nil {
			var zero T
			return zero, bitbucket.NewDecodeError(resource, err)
		}
	}
	return out, nil
}

// missing reports an absent required field.
func missing(field string) error {
	return fmt.Errorf("missing required field %q", field)
}
