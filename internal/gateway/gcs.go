package gateway

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/harrison/consolidator/internal/fileutil"
)

const gcsScheme = "gs://"

// GCSOptions selects how the storage client authenticates.
// With no credentials the client falls back to application default
// credentials, unless Endpoint is set, in which case it talks to the
// endpoint unauthenticated (emulators, fake servers).
type GCSOptions struct {
	CredentialsFile string
	CredentialsJSON string
	Endpoint        string
}

// NewGCSClient builds a storage client from opts.
func NewGCSClient(ctx context.Context, opts GCSOptions) (*storage.Client, error) {
	var clientOpts []option.ClientOption

	switch {
	case opts.CredentialsJSON != "":
		conf, err := google.JWTConfigFromJSON([]byte(opts.CredentialsJSON), storage.ScopeReadOnly)
		if err != nil {
			return nil, fmt.Errorf("failed to parse gcs credentials: %w", err)
		}
		clientOpts = append(clientOpts, option.WithTokenSource(conf.TokenSource(ctx)))
	case opts.CredentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	case opts.Endpoint != "":
		clientOpts = append(clientOpts, option.WithoutAuthentication())
	}

	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return client, nil
}

// GCSLister lists objects in a bucket as if prefixes were directories.
type GCSLister struct {
	client *storage.Client

	// Extensions restricts listings to these object extensions (empty = all)
	Extensions []string
}

// NewGCSLister wraps an existing storage client. Only object names ending in
// one of exts are listed, if any are given.
func NewGCSLister(client *storage.Client, exts ...string) *GCSLister {
	return &GCSLister{client: client, Extensions: exts}
}

// Close releases the storage client.
func (l *GCSLister) Close() error {
	return l.client.Close()
}

// ListFiles lists the objects directly under dir ("gs://bucket/prefix"),
// returning the object names relative to the prefix. Nested prefixes are
// skipped.
func (l *GCSLister) ListFiles(ctx context.Context, dir, glob string) ([]string, error) {
	bucket, prefix, err := ParseGCSPath(dir)
	if err != nil {
		return nil, err
	}
	if glob != "" && !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("invalid glob %q: %w", glob, doublestar.ErrBadPattern)
	}

	it := l.client.Bucket(bucket).Objects(ctx, &storage.Query{
		Prefix:    prefix,
		Delimiter: "/",
	})

	names := make([]string, 0)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list gs://%s/%s: %w", bucket, prefix, err)
		}

		// Entries carrying only a Prefix are synthetic subdirectories.
		if attrs.Name == "" {
			continue
		}
		name := strings.TrimPrefix(attrs.Name, prefix)
		if name == "" || !fileutil.HasExtension(name, l.Extensions) {
			continue
		}
		if glob != "" {
			if ok, _ := doublestar.Match(glob, name); !ok {
				continue
			}
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// IsGCSPath reports whether path uses the gs:// scheme.
func IsGCSPath(path string) bool {
	return strings.HasPrefix(path, gcsScheme)
}

// ParseGCSPath splits "gs://bucket/some/prefix" into its bucket and a
// prefix that is either empty or ends in "/".
func ParseGCSPath(path string) (bucket, prefix string, err error) {
	if !IsGCSPath(path) {
		return "", "", fmt.Errorf("not a gcs path: %s", path)
	}

	rest := strings.TrimPrefix(path, gcsScheme)
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("missing bucket in gcs path: %s", path)
	}

	prefix = strings.TrimLeft(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return bucket, prefix, nil
}

// Resolve picks a lister for path: GCS for gs:// paths, the local
// filesystem otherwise. Listers that hold resources implement io.Closer.
// A non-empty exts restricts listings to those extensions.
func Resolve(ctx context.Context, path string, opts GCSOptions, exts ...string) (Lister, error) {
	if !IsGCSPath(path) {
		return NewLocalLister(exts...), nil
	}
	if _, _, err := ParseGCSPath(path); err != nil {
		return nil, err
	}

	client, err := NewGCSClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	return NewGCSLister(client, exts...), nil
}
