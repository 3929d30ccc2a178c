package components

import "github.com/helixlauncher/helix/internals/meta"

// artifactSet keeps artifact ids in insertion order, unique by their
// unversioned id. The first version added wins.
type artifactSet struct {
	ids  []meta.ArtifactID
	seen map[meta.ArtifactID]struct{}
}

func newArtifactSet() *artifactSet {
	return &artifactSet{seen: make(map[meta.ArtifactID]struct{})}
}

// Add inserts id unless an artifact with the same unversioned id was added
// before. Reports whether id was inserted.
func (s *artifactSet) Add(id meta.ArtifactID) bool {
	key := id.Unversioned()
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Slice returns the ids in insertion order
func (s *artifactSet) Slice() []meta.ArtifactID {
	out := make([]meta.ArtifactID, len(s.ids))
	copy(out, s.ids)
	return out
}
