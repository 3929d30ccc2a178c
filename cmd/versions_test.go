package cmd

import (
	"testing"

	"github.com/helixlauncher/helix/internals/meta"
)

func TestFilterIndex(t *testing.T) {
	index := meta.Index{
		{Version: "1.20.1", Type: "release"},
		{Version: "1.20", Type: "release"},
		{Version: "23w31a", Type: "snapshot"},
		{Version: "1.19.4", Type: "release"},
	}

	tests := []struct {
		constraint string
		want       []string
	}{
		{"", []string{"1.20.1", "1.20", "23w31a", "1.19.4"}},
		{">=1.20", []string{"1.20.1", "1.20"}},
		{"~1.19", []string{"1.19.4"}},
		{"<1.0", nil},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			got, err := filterIndex(index, tt.constraint)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].Version != tt.want[i] {
					t.Errorf("entry %d: got %s, want %s", i, got[i].Version, tt.want[i])
				}
			}
		})
	}

	if _, err := filterIndex(index, "not a constraint"); err == nil {
		t.Error("expected an error for an invalid constraint")
	}
}
