package meta

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"hash"
	"strings"
)

// ArtifactID is a gradle style coordinate: group:artifact:version[:classifier][@extension]
type ArtifactID struct {
	Group      string
	Artifact   string
	Version    string
	Classifier string
	Extension  string
}

// ParseArtifactID parses a coordinate string. The extension defaults to "jar".
func ParseArtifactID(s string) (ArtifactID, error) {
	id := ArtifactID{Extension: "jar"}

	coords := s
	if at := strings.LastIndexByte(s, '@'); at != -1 {
		coords = s[:at]
		id.Extension = s[at+1:]
		if id.Extension == "" {
			return ArtifactID{}, fmt.Errorf("invalid artifact id %q: empty extension", s)
		}
	}

	parts := strings.Split(coords, ":")
	switch len(parts) {
	case 4:
		id.Classifier = parts[3]
		fallthrough
	case 3:
		id.Group, id.Artifact, id.Version = parts[0], parts[1], parts[2]
	default:
		return ArtifactID{}, fmt.Errorf("invalid artifact id %q: expected group:artifact:version[:classifier][@extension]", s)
	}

	if id.Group == "" || id.Artifact == "" {
		return ArtifactID{}, fmt.Errorf("invalid artifact id %q: group and artifact must not be empty", s)
	}
	return id, nil
}

// MustParseArtifactID is like ParseArtifactID but panics on invalid input.
// Intended for tests and constants.
func MustParseArtifactID(s string) ArtifactID {
	id, err := ParseArtifactID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Unversioned returns the id with the version blanked. Two ids name the same
// logical artifact if their unversioned forms are equal.
func (a ArtifactID) Unversioned() ArtifactID {
	a.Version = ""
	return a
}

// Filename returns <artifact>-<version>[-<classifier>].<extension>
func (a ArtifactID) Filename() string {
	name := a.Artifact + "-" + a.Version
	if a.Classifier != "" {
		name += "-" + a.Classifier
	}
	return name + "." + a.Extension
}

func (a ArtifactID) String() string {
	s := a.Group + ":" + a.Artifact + ":" + a.Version
	if a.Classifier != "" {
		s += ":" + a.Classifier
	}
	if a.Extension != "" && a.Extension != "jar" {
		s += "@" + a.Extension
	}
	return s
}

// MarshalText implements encoding.TextMarshaler. This also makes ArtifactID
// usable as a JSON object key.
func (a ArtifactID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *ArtifactID) UnmarshalText(text []byte) error {
	id, err := ParseArtifactID(string(text))
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// HashAlgorithm is the scheme of a Hash
type HashAlgorithm string

const (
	SHA1   HashAlgorithm = "sha1"
	SHA256 HashAlgorithm = "sha256"
)

// Hash is a hex digest tagged with the algorithm that produced it
type Hash struct {
	Algorithm HashAlgorithm `json:"type"`
	Hex       string        `json:"hash"`
}

// New returns a fresh hash.Hash for the algorithm of h
func (h Hash) New() (hash.Hash, error) {
	switch h.Algorithm {
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %q", h.Algorithm)
	}
}

// Equal reports whether both hashes use the same algorithm and digest.
// Hashes of different algorithms are never equal.
func (h Hash) Equal(o Hash) bool {
	return h.Algorithm == o.Algorithm && strings.EqualFold(h.Hex, o.Hex)
}

func (h Hash) String() string {
	return string(h.Algorithm) + ":" + h.Hex
}

// UnmarshalJSON accepts the algorithm case insensitive
func (h *Hash) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type string `json:"type"`
		Hash string `json:"hash"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	algo := HashAlgorithm(strings.ToLower(raw.Type))
	if algo != SHA1 && algo != SHA256 {
		return fmt.Errorf("unsupported hash algorithm %q", raw.Type)
	}
	h.Algorithm = algo
	h.Hex = strings.ToLower(raw.Hash)
	return nil
}

// Artifact is a source a file can be obtained from. Download is the only
// implementation for now.
type Artifact interface {
	artifact()
}

// Download is an artifact fetched over http
type Download struct {
	URL  string
	Size int64
	Hash Hash
}

func (Download) artifact() {}

// DownloadEntry is a single entry of the "downloads" list of a component
type DownloadEntry struct {
	Name ArtifactID `json:"name"`
	URL  string     `json:"url"`
	Size int64      `json:"size"`
	Hash Hash       `json:"hash"`
}

// Artifact returns the artifact described by this entry
func (d DownloadEntry) Artifact() Artifact {
	return Download{URL: d.URL, Size: d.Size, Hash: d.Hash}
}
