package pack

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/helixlauncher/helix/internals/downloadmgr"
	"github.com/helixlauncher/helix/internals/fsutil"
	"github.com/helixlauncher/helix/internals/meta"
	"github.com/helixlauncher/helix/internals/minecraft"
	"github.com/rs/zerolog/log"
)

// Assets describes the unpacked assets of an instance
type Assets struct {
	IndexID string
	// Dir is the root of the asset pool
	Dir string
	// UnpackDir is where objects were copied to by name, empty if the index
	// only uses the pool
	UnpackDir string
	Index     *minecraft.AssetIndex
}

// UnpackTarget returns where the objects of index are copied to by name, if at all
func UnpackTarget(index *minecraft.AssetIndex, indexID string, gameDir string) string {
	switch {
	case index.MapToResources:
		return filepath.Join(gameDir, "resources")
	case index.Virtual:
		return filepath.Join(gameDir, "assets", "virtual", fsutil.CleanName(indexID))
	default:
		return ""
	}
}

// UnpackAssets downloads the asset index described by desc and all of its
// objects into the pool, then copies them to the unpack target if the index has one.
func (a *Assembler) UnpackAssets(ctx context.Context, desc *meta.Assets, gameDir string) (*Assets, error) {
	indexPath := filepath.Join(a.AssetsDir, "indexes", fsutil.CleanName(desc.ID+".json"))
	download := desc.Download()
	indexItem := downloadmgr.NewHTTPItem(download.URL, indexPath, download.Size, download.Hash)
	indexItem.Client = a.Client
	if err := indexItem.Download(ctx); err != nil {
		return nil, fmt.Errorf("asset index %s: %w", desc.ID, err)
	}

	raw, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, err
	}
	index := &minecraft.AssetIndex{}
	if err := json.Unmarshal(raw, index); err != nil {
		return nil, &meta.ParseError{Source: "asset index " + desc.ID, Err: err}
	}
	// the descriptor can force the legacy layouts as well
	index.MapToResources = index.MapToResources || desc.MapToResources
	index.Virtual = index.Virtual || desc.Virtual

	target := UnpackTarget(index, desc.ID, gameDir)
	mgr := downloadmgr.New()
	mgr.OnProgress = a.OnProgress

	for name, obj := range index.Objects {
		// the hash becomes part of the pool path
		if _, err := hex.DecodeString(obj.Hash); err != nil || len(obj.Hash) < 2 {
			return nil, &InvalidFilenameError{Name: obj.Hash, Reason: "asset hash is not hex"}
		}
		var unpackTo string
		if target != "" {
			if err := CheckPath(name); err != nil {
				return nil, err
			}
			unpackTo = filepath.Join(target, filepath.FromSlash(name))
		}
		mgr.Add(a.assetItem(obj, unpackTo))
	}

	log.Debug().Str("index", desc.ID).Int("objects", mgr.Len()).Str("unpack", target).Msg("unpacking assets")
	if err := mgr.Start(ctx); err != nil {
		return nil, err
	}

	return &Assets{
		IndexID:   desc.ID,
		Dir:       a.AssetsDir,
		UnpackDir: target,
		Index:     index,
	}, nil
}

func (a *Assembler) assetItem(obj minecraft.AssetObject, unpackTo string) downloadmgr.Downloader {
	pooled := filepath.Join(a.AssetsDir, "objects", filepath.FromSlash(obj.UnixPath()))
	item := downloadmgr.NewHTTPItem(
		obj.DownloadURL(a.ResourcesURL),
		pooled,
		obj.Size,
		meta.Hash{Algorithm: meta.SHA1, Hex: obj.Hash},
	)
	item.Client = a.Client

	return downloadmgr.DownloaderFunc(func(ctx context.Context) error {
		if err := item.Download(ctx); err != nil {
			return err
		}
		if unpackTo == "" {
			return nil
		}
		return fsutil.CopyFile(pooled, unpackTo)
	})
}
