package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"
)

var (
	ErrFileUnavailable   = errors.New("file unavailable at source")
	ErrUnsupportedScheme = errors.New("unsupported file url scheme")
)

// HTTPClient is the subset of http.Client the fetcher needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// File is an open stream of a resolved artifact file plus the headers a
// proxying handler needs.
type File struct {
	Body          io.ReadCloser
	Name          string
	ContentType   string
	ContentLength int64
}

// Fetcher streams the bytes behind a resolved file URL. The resolver only
// ever hands over URLs; this is the transport plumbing around the core.
// Plain https URLs go through the HTTP client, gs:// URLs through the
// Cloud Storage client when one is configured.
type Fetcher struct {
	httpClient HTTPClient
	gcsClient  *gcs.Client
}

// NewFetcher returns a Fetcher. gcsClient may be nil, in which case gs://
// URLs are rejected as unsupported.
func NewFetcher(httpClient HTTPClient, gcsClient *gcs.Client) *Fetcher {
	return &Fetcher{httpClient: httpClient, gcsClient: gcsClient}
}

// Open opens the file behind rawURL for streaming. Callers own the
// returned body and must close it.
func (f *Fetcher) Open(ctx context.Context, rawURL string) (*File, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing file url: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		return f.openHTTP(ctx, u)
	case "gs":
		return f.openGCS(ctx, u)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

func (f *Fetcher) openHTTP(ctx context.Context, u *url.URL) (*File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", u, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %d", ErrFileUnavailable, u, resp.StatusCode)
	}

	return &File{
		Body:          resp.Body,
		Name:          path.Base(u.Path),
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}, nil
}

func (f *Fetcher) openGCS(ctx context.Context, u *url.URL) (*File, error) {
	if f.gcsClient == nil {
		return nil, fmt.Errorf("%w: no storage client configured for gs urls", ErrUnsupportedScheme)
	}

	object := strings.TrimPrefix(u.Path, "/")
	reader, err := f.gcsClient.Bucket(u.Host).Object(object).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: gs://%s/%s", ErrFileUnavailable, u.Host, object)
	}
	if err != nil {
		return nil, fmt.Errorf("opening gs://%s/%s: %w", u.Host, object, err)
	}

	return &File{
		Body:          reader,
		Name:          path.Base(object),
		ContentType:   reader.Attrs.ContentType,
		ContentLength: reader.Attrs.Size,
	}, nil
}
