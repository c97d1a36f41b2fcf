package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Source provides the raw dataset bytes
type Source interface {
	// Open returns a reader over the raw bytes; callers close it
	Open(ctx context.Context) (io.ReadCloser, error)
	// Name identifies the source in logs; its extension selects the row format
	Name() string
}

// HTTPSource fetches the dataset with a single GET
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Open performs the request. Any non-2xx status is a StatusError.
func (s HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetch, err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{URL: s.URL, StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}

func (s HTTPSource) Name() string {
	if u, err := url.Parse(s.URL); err == nil {
		return u.Path
	}
	return s.URL
}

// FileSource reads the dataset from the local filesystem
type FileSource struct {
	Path string
}

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return f, nil
}

func (s FileSource) Name() string { return s.Path }

// ResolveSource resolves the fixed relative file against a base. An http(s)
// base yields an HTTPSource, anything else a FileSource.
func ResolveSource(base, file string, client *http.Client) Source {
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		u, err := url.Parse(base)
		if err == nil {
			u.Path = path.Join("/", u.Path, file)
			return HTTPSource{URL: u.String(), Client: client}
		}
		return HTTPSource{URL: strings.TrimSuffix(base, "/") + "/" + file, Client: client}
	}
	return FileSource{Path: filepath.Join(base, file)}
}
