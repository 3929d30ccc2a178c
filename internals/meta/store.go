// Package meta fetches component metadata from the catalog and keeps a disk
// cache of every document it has seen, so launching works offline.
package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/helixlauncher/helix/internals/fsutil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const DefaultMetaURL = "https://meta.helixlauncher.dev/"

var (
	// ErrMetaNotFound is returned (wrapped) when the catalog does not know the
	// requested component or version
	ErrMetaNotFound = errors.New("component metadata not found")
)

// StatusError is returned for unexpected http status codes
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

// ParseError is returned when metadata could not be decoded. It is never
// recovered from, not even by falling back to the cache.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed metadata in %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Store fetches metadata over http and caches the raw documents in CacheDir
type Store struct {
	http     *http.Client
	baseURL  string
	cacheDir string
}

// NewStore returns a store for the catalog at baseURL. Passing an empty
// baseURL uses DefaultMetaURL.
func NewStore(httpClient *http.Client, baseURL string, cacheDir string) *Store {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultMetaURL
	}
	return &Store{http: httpClient, baseURL: baseURL, cacheDir: cacheDir}
}

// GetComponentMeta returns the metadata of component id at version
func (s *Store) GetComponentMeta(ctx context.Context, id string, version string) (*Component, error) {
	target, err := url.JoinPath(s.baseURL, id, version+".json")
	if err != nil {
		return nil, err
	}
	cachePath := filepath.Join(s.cacheDir, fsutil.CleanName(id), fsutil.CleanName(version+".json"))

	data, err := s.fetchCached(ctx, target, cachePath)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s %s", id, version)
	}

	component := &Component{}
	if err := json.Unmarshal(data, component); err != nil {
		return nil, &ParseError{Source: fmt.Sprintf("%s %s", id, version), Err: err}
	}
	return component, nil
}

// GetComponentIndex returns all versions the catalog lists for id
func (s *Store) GetComponentIndex(ctx context.Context, id string) (Index, error) {
	target, err := url.JoinPath(s.baseURL, id+".json")
	if err != nil {
		return nil, err
	}
	cachePath := filepath.Join(s.cacheDir, fsutil.CleanName(id), "index.json")

	data, err := s.fetchCached(ctx, target, cachePath)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching index of %s", id)
	}

	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, &ParseError{Source: "index of " + id, Err: err}
	}
	return index, nil
}

// VersionExists checks the index of id for version. An unknown component is
// reported as false without an error.
func (s *Store) VersionExists(ctx context.Context, id string, version string) (bool, error) {
	index, err := s.GetComponentIndex(ctx, id)
	if errors.Is(err, ErrMetaNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return index.Contains(version), nil
}

// fetchCached tries the network first and updates the cache. If the request
// fails, the cached copy is returned instead. Without one, the network error is.
func (s *Store) fetchCached(ctx context.Context, target string, cachePath string) ([]byte, error) {
	data, fetchErr := s.fetch(ctx, target)
	if fetchErr == nil {
		if err := fsutil.WriteFile(cachePath, data); err != nil {
			return nil, errors.Wrap(err, "writing metadata cache")
		}
		return data, nil
	}

	cached, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, fetchErr
	}
	log.Warn().Err(fetchErr).Str("url", target).Str("cache", cachePath).Msg("metadata fetch failed, using cached copy")
	return cached, nil
}

func (s *Store) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound || res.StatusCode == http.StatusGone:
		return nil, ErrMetaNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		return nil, &StatusError{URL: target, StatusCode: res.StatusCode}
	}

	return io.ReadAll(res.Body)
}
