package downloadmgr

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/helixlauncher/helix/internals/fsutil"
	"github.com/helixlauncher/helix/internals/meta"
	"github.com/rs/zerolog/log"
)

var defaultClient = http.Client{
	Transport: &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   20 * time.Second,
		ResponseHeaderTimeout: 60 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	},
}

// HTTPItem is a URL, target pair that will be downloaded using http(s).
// The download is skipped if Target already has the expected Size and Hash.
type HTTPItem struct {
	Client *http.Client
	URL    string
	Target string
	Size   int64
	Hash   meta.Hash
}

// InvalidFileError is returned when a downloaded file does not match its declared size or hash
type InvalidFileError struct {
	URL          string
	ExpectedSize int64
	ActualSize   int64
	ExpectedHash meta.Hash
	ActualHash   meta.Hash
}

func (e *InvalidFileError) Error() string {
	return fmt.Sprintf(
		"File corrupted: %s is invalid.\n\texpected %d bytes with %s\n\tbut got %d bytes with %s",
		e.URL,
		e.ExpectedSize,
		e.ExpectedHash,
		e.ActualSize,
		e.ActualHash,
	)
}

// StatusError is returned for non 2xx responses
type StatusError struct {
	URL    string
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("invalid status code: %s from %s", e.Status, e.URL)
}

// NewHTTPItem creates a Item to be queued that will download the file using HTTP(S)
func NewHTTPItem(URL string, Target string, size int64, hash meta.Hash) *HTTPItem {
	if URL == "" {
		panic("Download URL can not be empty")
	}
	if Target == "" {
		panic("Target can not be empty")
	}
	return &HTTPItem{URL: URL, Target: Target, Size: size, Hash: hash}
}

// Download downloads the item to the defined target using http.
// The file is verified before it is moved into place.
func (i *HTTPItem) Download(ctx context.Context) error {
	valid, err := CheckFile(i.Target, i.Size, i.Hash)
	if err != nil {
		return err
	}
	if valid {
		log.Debug().Str("target", i.Target).Msg("already cached")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", i.URL, nil)
	if err != nil {
		return err
	}

	client := i.Client
	if client == nil {
		client = &defaultClient
	}

	fileRes, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error while fetching %s: %w", i.URL, err)
	}
	defer fileRes.Body.Close()

	if fileRes.StatusCode < 200 || fileRes.StatusCode > 299 {
		return &StatusError{URL: i.URL, Status: fileRes.Status}
	}

	hasher, err := i.Hash.New()
	if err != nil {
		return err
	}

	dest, err := fsutil.CreateAtomic(i.Target)
	if err != nil {
		return err
	}
	defer dest.Abort()

	written, err := io.Copy(io.MultiWriter(dest, hasher), fileRes.Body)
	if err != nil {
		return fmt.Errorf("error while fetching %s: %w", i.URL, err)
	}

	actual := meta.Hash{Algorithm: i.Hash.Algorithm, Hex: fmt.Sprintf("%x", hasher.Sum(nil))}
	if written != i.Size || !actual.Equal(i.Hash) {
		return &InvalidFileError{
			URL:          i.URL,
			ExpectedSize: i.Size,
			ActualSize:   written,
			ExpectedHash: i.Hash,
			ActualHash:   actual,
		}
	}

	if err := dest.Commit(); err != nil {
		return err
	}
	log.Debug().Str("url", i.URL).Str("size", humanize.Bytes(uint64(written))).Msg("downloaded")
	return nil
}
