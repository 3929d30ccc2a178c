// Package downloadmgr downloads and verifies files with bounded concurrency
package downloadmgr

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of downloads in flight at the same time
const DefaultConcurrency = 16

// Downloader allows downloadmgr to download the file
type Downloader interface {
	Download(ctx context.Context) error
}

// DownloaderFunc adapts a function to the Downloader interface
type DownloaderFunc func(ctx context.Context) error

// Download calls f(ctx)
func (f DownloaderFunc) Download(ctx context.Context) error { return f(ctx) }

// DownloadManager includes a queue to download
type DownloadManager struct {
	queue []Downloader
	// Concurrency limits downloads in flight, defaults to DefaultConcurrency
	Concurrency int
	// OnProgress is called with the completed percentage after every finished item
	OnProgress func(p int)
}

// New creates a new downloadmgr
func New() *DownloadManager {
	return &DownloadManager{Concurrency: DefaultConcurrency}
}

// Add adds a new item to the queue
func (d *DownloadManager) Add(i Downloader) {
	d.queue = append(d.queue, i)
}

// Len returns the number of queued items
func (d *DownloadManager) Len() int {
	return len(d.queue)
}

// Start downloads the queue. The first failure cancels all other downloads
// and is returned.
func (d *DownloadManager) Start(ctx context.Context) error {
	if len(d.queue) == 0 {
		return nil
	}

	limit := d.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	done := 0
	total := len(d.queue)

	for _, item := range d.queue {
		if ctx.Err() != nil {
			break
		}
		item := item
		g.Go(func() error {
			if err := item.Download(ctx); err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			done++
			if d.OnProgress != nil {
				d.OnProgress(done * 100 / total)
			}
			return nil
		})
	}
	return g.Wait()
}
