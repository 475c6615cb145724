package config

import (
	"context"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/bitbucket/errors"
)

//go:embed schema.cue
var schemaSource string

// DefaultFiles are the profile names Discover looks for, in order.
var DefaultFiles = []string{"bitbucket.cue", "bitbucket.yaml", "bitbucket.yml"}

// Issue is a single schema violation.
type Issue struct {
	// Path is the field path, e.g. ["proxy", "port"].
	Path []string

	// Message is the human-readable error message.
	Message string
}

// Loader reads profiles from a filesystem and checks them against the
// embedded schema.
type Loader struct {
	fs     billy.Filesystem
	cueCtx *cue.Context
	schema cue.Value
}

// NewLoader creates a loader reading from filesystem.
func NewLoader(filesystem billy.Filesystem) *Loader {
	cueCtx := cuecontext.New()
	schema := cueCtx.CompileString(schemaSource, cue.Filename("schema.cue"))
	return &Loader{
		fs:     filesystem,
		cueCtx: cueCtx,
		schema: schema.LookupPath(cue.ParsePath("#Profile")),
	}
}

// NewOSLoader creates a loader rooted at dir on the local disk.
func NewOSLoader(dir string) *Loader {
	return NewLoader(osfs.New(dir))
}

// Discover loads the first of DefaultFiles that exists at the filesystem root.
// Returns a CodeNotFound error when none exists.
func (l *Loader) Discover(ctx context.Context) (*Profile, error) {
	for _, name := range DefaultFiles {
		if _, err := l.fs.Stat(name); err == nil {
			return l.Load(ctx, name)
		}
	}
	return nil, errors.WithContext(
		errors.New(errors.CodeNotFound, "no profile found"),
		"candidates", strings.Join(DefaultFiles, ", "),
	)
}

// Load reads, validates and decodes the profile at path. The format follows
// the extension: .cue, .yaml or .yml.
//
// Returns CodeConfigLoadFailed when the file cannot be read or compiled,
// CodeConfigValidationFailed when it violates the schema and
// CodeConfigDecodeFailed when the validated value cannot be decoded.
func (l *Loader) Load(ctx context.Context, path string) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapLoadErrorWithContext(err, "context cancelled", makeContext("path", path))
	}

	data, err := util.ReadFile(l.fs, path)
	if err != nil {
		return nil, wrapLoadErrorWithContext(err, "failed to read profile", makeContext("path", path))
	}

	value, err := l.compile(path, data)
	if err != nil {
		return nil, err
	}

	unified := l.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return nil, wrapValidationErrorWithContext(err, "profile does not match schema", makeContext(
			"path", path,
			"details", cueerrors.Details(err, nil),
			"issues", extractIssues(err),
		))
	}

	var profile Profile
	if err := unified.Decode(&profile); err != nil {
		return nil, wrapDecodeErrorWithContext(err, "failed to decode profile", makeContext("path", path))
	}
	return &profile, nil
}

// compile builds a CUE value from CUE or YAML source.
func (l *Loader) compile(path string, data []byte) (cue.Value, error) {
	var value cue.Value
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cue":
		value = l.cueCtx.CompileBytes(data, cue.Filename(path))
	case ".yaml", ".yml":
		file, err := cueyaml.Extract(path, data)
		if err != nil {
			return cue.Value{}, wrapLoadErrorWithContext(err, "failed to parse YAML profile", makeContext("path", path))
		}
		value = l.cueCtx.BuildFile(file)
	default:
		return cue.Value{}, errors.WithContextMap(
			errors.Newf(errors.CodeConfigLoadFailed, "unsupported profile format %q", ext),
			makeContext("path", path),
		)
	}

	if err := value.Err(); err != nil {
		return cue.Value{}, wrapLoadErrorWithContext(err, "failed to compile profile", makeContext(
			"path", path,
			"details", cueerrors.Details(err, nil),
		))
	}
	return value, nil
}

// extractIssues flattens a CUE error into one Issue per violation.
func extractIssues(err error) []Issue {
	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issues = append(issues, Issue{
			Path:    e.Path(),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return issues
}
