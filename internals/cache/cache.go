// Package cache maps artifact ids to files in the shared libraries directory
// and makes sure they are present and intact.
package cache

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/helixlauncher/helix/internals/components"
	"github.com/helixlauncher/helix/internals/downloadmgr"
	"github.com/helixlauncher/helix/internals/fsutil"
	"github.com/helixlauncher/helix/internals/meta"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Cache is a helper to cache/store artifacts locally
type Cache struct {
	location string
	client   *http.Client
	// OnProgress receives the completed percentage of ResolveAll
	OnProgress func(p int)
}

// New returns a cache rooted at location (the libraries directory)
func New(location string, client *http.Client) *Cache {
	return &Cache{location: location, client: client}
}

// PathFor returns where id is stored. Nothing is downloaded. Every segment is
// sanitized, so the result is always inside the cache location.
func (c *Cache) PathFor(id meta.ArtifactID) string {
	segments := []string{c.location}
	for _, part := range strings.Split(id.Group, ".") {
		segments = append(segments, fsutil.CleanName(part))
	}
	segments = append(segments,
		fsutil.CleanName(id.Artifact),
		fsutil.CleanName(id.Version),
		fsutil.CleanName(id.Filename()),
	)
	return filepath.Join(segments...)
}

// Resolve makes sure id is present and valid and returns its path
func (c *Cache) Resolve(ctx context.Context, id meta.ArtifactID, artifact meta.Artifact) (string, error) {
	item, err := c.item(id, artifact)
	if err != nil {
		return "", err
	}
	if err := item.Download(ctx); err != nil {
		return "", errors.Wrapf(err, "resolving %s", id)
	}
	return item.Target, nil
}

// ResolveAll resolves every artifact required by merged. Downloads run
// concurrently, the first failure aborts the rest.
func (c *Cache) ResolveAll(ctx context.Context, merged *components.Merged) (map[meta.ArtifactID]string, error) {
	ids, err := merged.RequiredArtifacts()
	if err != nil {
		return nil, err
	}

	mgr := downloadmgr.New()
	mgr.OnProgress = c.OnProgress
	paths := make(map[meta.ArtifactID]string, len(ids))
	for _, id := range ids {
		artifact, _ := merged.Artifact(id)
		item, err := c.item(id, artifact)
		if err != nil {
			return nil, err
		}
		id := id
		mgr.Add(downloadmgr.DownloaderFunc(func(ctx context.Context) error {
			return errors.Wrapf(item.Download(ctx), "resolving %s", id)
		}))
		paths[id] = item.Target
	}

	log.Debug().Int("artifacts", len(ids)).Msg("resolving artifacts")
	if err := mgr.Start(ctx); err != nil {
		return nil, err
	}
	return paths, nil
}

func (c *Cache) item(id meta.ArtifactID, artifact meta.Artifact) (*downloadmgr.HTTPItem, error) {
	switch a := artifact.(type) {
	case meta.Download:
		item := downloadmgr.NewHTTPItem(a.URL, c.PathFor(id), a.Size, a.Hash)
		item.Client = c.client
		return item, nil
	default:
		return nil, fmt.Errorf("%s: unsupported artifact source %T", id, artifact)
	}
}
