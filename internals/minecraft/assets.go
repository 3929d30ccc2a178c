package minecraft

import (
	"net/url"
	"strings"
)

// DefaultResourcesURL is the CDN all asset objects are downloaded from
const DefaultResourcesURL = "https://resources.download.minecraft.net/"

// AssetIndex maps logical asset names to objects in the asset pool
type AssetIndex struct {
	// MapToResources copies all objects to <game dir>/resources (very old versions)
	MapToResources bool `json:"map_to_resources,omitempty"`
	// Virtual copies all objects to assets/virtual/<index id> (legacy versions)
	Virtual bool                   `json:"virtual,omitempty"`
	Objects map[string]AssetObject `json:"objects"`
}

// AssetObject is one minecraft asset
type AssetObject struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// UnixPath returns the path including the folder
// example: fe/fe32f3b8…
func (a *AssetObject) UnixPath() string {
	return a.Hash[:2] + "/" + a.Hash
}

// DownloadURL returns the download url for this asset. An empty base uses DefaultResourcesURL.
func (a *AssetObject) DownloadURL(base string) string {
	if base == "" {
		base = DefaultResourcesURL
	}
	joined, err := url.JoinPath(base, a.Hash[:2], a.Hash)
	if err != nil {
		return strings.TrimSuffix(base, "/") + "/" + a.UnixPath()
	}
	return joined
}
