// Package seed loads the initial blog snapshot from a file, an S3 object or a
// Postgres database. Sources are read-only: the running service never writes
// back to them.
package seed

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/tendant/simple-blog/pkg/simpleblog"
)

var (
	// ErrUnsupportedSource indicates a seed URL with an unknown scheme or format
	ErrUnsupportedSource = errors.New("unsupported seed source")

	// ErrSeedNotFound indicates the seed object or file does not exist
	ErrSeedNotFound = errors.New("seed not found")

	// ErrInvalidSeed indicates the loaded snapshot breaks a store invariant
	ErrInvalidSeed = errors.New("invalid seed snapshot")
)

// Source produces an initial snapshot.
type Source interface {
	Load(ctx context.Context) (simpleblog.Snapshot, error)
}

// S3Options configures access to S3 or an S3-compatible service.
type S3Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// Options configures the sources built by Open.
type Options struct {
	S3 S3Options
}

// Open returns the source addressed by rawURL:
//
//	""  or memory://            empty blog
//	file:///path/blog.json      JSON or YAML file, by extension
//	s3://bucket/key.yaml        object in S3, format by extension
//	postgres://... postgresql://...
func Open(ctx context.Context, rawURL string, opts Options) (Source, error) {
	if rawURL == "" || rawURL == "memory" || rawURL == "memory://" {
		return EmptySource{}, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse seed url: %w", err)
	}

	switch u.Scheme {
	case "memory":
		return EmptySource{}, nil
	case "file":
		p := u.Path
		if u.Host != "" {
			// file://relative/path.json
			p = u.Host + u.Path
		}
		format, err := formatOf(p)
		if err != nil {
			return nil, err
		}
		return &FileSource{Path: p, Format: format}, nil
	case "s3":
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, fmt.Errorf("%w: s3 url needs bucket and key: %s", ErrUnsupportedSource, rawURL)
		}
		format, err := formatOf(key)
		if err != nil {
			return nil, err
		}
		return NewS3Source(ctx, u.Host, key, format, opts.S3)
	case "postgres", "postgresql":
		return NewPostgresSource(ctx, rawURL)
	default:
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedSource, u.Scheme)
	}
}

// Load opens rawURL and returns its validated snapshot.
func Load(ctx context.Context, rawURL string, opts Options) (simpleblog.Snapshot, error) {
	src, err := Open(ctx, rawURL, opts)
	if err != nil {
		return simpleblog.Snapshot{}, err
	}
	if closer, ok := src.(interface{ Close() }); ok {
		defer closer.Close()
	}
	return src.Load(ctx)
}

// EmptySource yields a blog with no authors and no posts.
type EmptySource struct{}

func (EmptySource) Load(ctx context.Context) (simpleblog.Snapshot, error) {
	return simpleblog.Snapshot{Authors: []simpleblog.Author{}, Posts: []simpleblog.Post{}}, nil
}

// Format is the encoding of a seed document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatOf(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: cannot tell format of %q", ErrUnsupportedSource, name)
	}
}

// finish normalizes a decoded snapshot and checks its invariants.
func finish(s simpleblog.Snapshot) (simpleblog.Snapshot, error) {
	s = s.Clone()
	if err := s.Validate(); err != nil {
		return simpleblog.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return s, nil
}
