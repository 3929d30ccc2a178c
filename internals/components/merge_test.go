package components

import (
	"context"
	"errors"
	"testing"

	"github.com/helixlauncher/helix/internals/meta"
)

type fakeSource map[string]*meta.Component

func (f fakeSource) GetComponentMeta(ctx context.Context, id string, version string) (*meta.Component, error) {
	c, ok := f[id+"@"+version]
	if !ok {
		return nil, meta.ErrMetaNotFound
	}
	return c, nil
}

func id(s string) meta.ArtifactID { return meta.MustParseArtifactID(s) }

func idPtr(s string) *meta.ArtifactID {
	v := id(s)
	return &v
}

func download(name string) meta.DownloadEntry {
	return meta.DownloadEntry{
		Name: id(name),
		URL:  "https://example.com/" + name,
		Size: 1,
		Hash: meta.Hash{Algorithm: meta.SHA1, Hex: "00"},
	}
}

func refs(ids ...string) []meta.ComponentRef {
	var out []meta.ComponentRef
	for _, s := range ids {
		out = append(out, meta.ComponentRef{ID: s, Version: "1.0"})
	}
	return out
}

func TestMergeMainClassOrder(t *testing.T) {
	src := fakeSource{
		"a@1.0": {MainClass: "A"},
		"b@1.0": {MainClass: "B"},
	}
	ctx := context.Background()

	ab, err := MergeFor(ctx, src, refs("a", "b"), "linux", "x86_64")
	if err != nil {
		t.Fatal(err)
	}
	if ab.MainClass != "A" {
		t.Errorf("[a, b] should use A, got %s", ab.MainClass)
	}

	ba, err := MergeFor(ctx, src, refs("b", "a"), "linux", "x86_64")
	if err != nil {
		t.Fatal(err)
	}
	if ba.MainClass != "B" {
		t.Errorf("[b, a] should use B, got %s", ba.MainClass)
	}
}

func TestMergeClasspathDedup(t *testing.T) {
	src := fakeSource{
		"loader@1.0": {
			Classpath: []meta.ClasspathEntry{{Name: id("org.ow2.asm:asm:9.5")}, {Name: id("org.example:loader:1.0")}},
			Downloads: []meta.DownloadEntry{download("org.ow2.asm:asm:9.5")},
		},
		"vanilla@1.0": {
			Classpath: []meta.ClasspathEntry{{Name: id("org.ow2.asm:asm:9.3")}, {Name: id("com.google.code.gson:gson:2.10")}},
			Downloads: []meta.DownloadEntry{download("org.ow2.asm:asm:9.3")},
		},
	}

	merged, err := MergeFor(context.Background(), src, refs("loader", "vanilla"), "linux", "x86_64")
	if err != nil {
		t.Fatal(err)
	}

	want := []meta.ArtifactID{id("org.ow2.asm:asm:9.5"), id("org.example:loader:1.0"), id("com.google.code.gson:gson:2.10")}
	if len(merged.Classpath) != len(want) {
		t.Fatalf("expected %v, got %v", want, merged.Classpath)
	}
	for i := range want {
		if merged.Classpath[i] != want[i] {
			t.Errorf("classpath[%d] = %s, want %s", i, merged.Classpath[i], want[i])
		}
	}
	if len(merged.Artifacts) != 2 {
		t.Errorf("both asm downloads should be registered, got %d", len(merged.Artifacts))
	}
}

func TestMergeLoaderAndVanilla(t *testing.T) {
	src := fakeSource{
		"org.example.loader@1.0": {MainClass: "LoaderMain"},
		"net.minecraft@1.20": {
			GameJar:   idPtr("net.minecraft:client:1.20"),
			MainClass: "net.minecraft.Main",
			Traits:    []meta.Trait{meta.TraitSupportsQuickPlayWorld},
			Assets:    &meta.Assets{ID: "5"},
		},
	}
	components := []meta.ComponentRef{
		{ID: "org.example.loader", Version: "1.0"},
		{ID: "net.minecraft", Version: "1.20"},
	}

	merged, err := MergeFor(context.Background(), src, components, "linux", "x86_64")
	if err != nil {
		t.Fatal(err)
	}
	if merged.MainClass != "LoaderMain" {
		t.Errorf("main class = %s, want LoaderMain", merged.MainClass)
	}
	if merged.GameJar == nil || *merged.GameJar != id("net.minecraft:client:1.20") {
		t.Errorf("game jar should be inherited from vanilla, got %v", merged.GameJar)
	}
	if merged.Assets == nil || merged.Assets.ID != "5" {
		t.Errorf("unexpected assets %+v", merged.Assets)
	}
	if !merged.HasTrait(meta.TraitSupportsQuickPlayWorld) {
		t.Error("traits should be unioned")
	}
}

func TestMergeFirstDownloadWins(t *testing.T) {
	pinned := download("org.example:lib:1.0")
	pinned.URL = "https://mirror.example.com/lib.jar"
	src := fakeSource{
		"a@1.0": {Downloads: []meta.DownloadEntry{pinned}},
		"b@1.0": {Downloads: []meta.DownloadEntry{download("org.example:lib:1.0")}},
	}

	merged, err := MergeFor(context.Background(), src, refs("a", "b"), "linux", "x86_64")
	if err != nil {
		t.Fatal(err)
	}
	artifact, err := merged.Artifact(id("org.example:lib:1.0"))
	if err != nil {
		t.Fatal(err)
	}
	if artifact.(meta.Download).URL != pinned.URL {
		t.Errorf("earlier component should pin the source, got %s", artifact.(meta.Download).URL)
	}
}

func TestMergeJarmodsBeforeGameJar(t *testing.T) {
	src := fakeSource{
		"moda@1.0": {Jarmods: []meta.ArtifactID{id("org.example:moda:1.0"), id("org.example:shared:2.0")}},
		"modb@1.0": {Jarmods: []meta.ArtifactID{id("org.example:modb:1.0"), id("org.example:shared:1.0")}},
		"game@1.0": {GameJar: idPtr("net.minecraft:client:1.0")},
		"late@1.0": {Jarmods: []meta.ArtifactID{id("org.example:late:1.0")}},
	}

	merged, err := MergeFor(context.Background(), src, refs("moda", "modb", "game", "late"), "linux", "x86_64")
	if err != nil {
		t.Fatal(err)
	}
	want := []meta.ArtifactID{id("org.example:moda:1.0"), id("org.example:shared:2.0"), id("org.example:modb:1.0")}
	if len(merged.Jarmods) != len(want) {
		t.Fatalf("expected jarmods %v, got %v", want, merged.Jarmods)
	}
	for i := range want {
		if merged.Jarmods[i] != want[i] {
			t.Errorf("jarmods[%d] = %s, want %s", i, merged.Jarmods[i], want[i])
		}
	}
}

func TestMergePlatformFilter(t *testing.T) {
	src := fakeSource{
		"lwjgl@1.0": {
			Classpath: []meta.ClasspathEntry{
				{Name: id("org.lwjgl:lwjgl:3.3.1")},
				{Name: id("org.lwjgl:lwjgl:3.3.1:natives-linux"), Platform: &meta.Platform{OS: []string{"linux"}}},
				{Name: id("org.lwjgl:lwjgl:3.3.1:natives-windows"), Platform: &meta.Platform{OS: []string{"windows"}}},
			},
			Natives: []meta.Native{
				{Name: id("org.lwjgl:lwjgl-platform:2.9.4:natives-linux"), Platform: meta.Platform{OS: []string{"linux"}}, Exclusions: []string{"META-INF/"}},
				{Name: id("org.lwjgl:lwjgl-platform:2.9.4:natives-linux-arm64"), Platform: meta.Platform{OS: []string{"linux"}, Arch: "aarch64"}},
			},
		},
	}

	merged, err := MergeFor(context.Background(), src, refs("lwjgl"), "linux", "x86_64")
	if err != nil {
		t.Fatal(err)
	}
	if len(merged.Classpath) != 2 || merged.Classpath[1].Classifier != "natives-linux" {
		t.Errorf("unexpected classpath %v", merged.Classpath)
	}
	if len(merged.Natives) != 1 || merged.Natives[0].Exclusions[0] != "META-INF/" {
		t.Errorf("unexpected natives %+v", merged.Natives)
	}
}

func TestMergeArgumentsConcatenated(t *testing.T) {
	src := fakeSource{
		"a@1.0": {GameArguments: []meta.Argument{{Value: "--a"}}},
		"b@1.0": {GameArguments: []meta.Argument{{Value: "--b"}, {Value: "--demo", Feature: meta.FeatureDemo}}},
	}
	merged, err := MergeFor(context.Background(), src, refs("a", "b"), "linux", "x86_64")
	if err != nil {
		t.Fatal(err)
	}
	if len(merged.Arguments) != 3 || merged.Arguments[0].Value != "--a" || merged.Arguments[2].Feature != meta.FeatureDemo {
		t.Errorf("unexpected arguments %+v", merged.Arguments)
	}
}

func TestMergeMetaError(t *testing.T) {
	_, err := MergeFor(context.Background(), fakeSource{}, refs("missing"), "linux", "x86_64")
	if !errors.Is(err, meta.ErrMetaNotFound) {
		t.Fatalf("expected ErrMetaNotFound, got %v", err)
	}
}

func TestRequiredArtifacts(t *testing.T) {
	src := fakeSource{
		"game@1.0": {
			GameJar:   idPtr("net.minecraft:client:1.0"),
			Classpath: []meta.ClasspathEntry{{Name: id("org.example:lib:1.0")}},
			Downloads: []meta.DownloadEntry{download("net.minecraft:client:1.0"), download("org.example:lib:1.0")},
		},
	}
	merged, err := MergeFor(context.Background(), src, refs("game"), "linux", "x86_64")
	if err != nil {
		t.Fatal(err)
	}
	ids, err := merged.RequiredArtifacts()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != id("net.minecraft:client:1.0") {
		t.Errorf("unexpected required artifacts %v", ids)
	}

	merged.Classpath = append(merged.Classpath, id("org.example:undeclared:1.0"))
	if _, err := merged.RequiredArtifacts(); !errors.Is(err, ErrMissingArtifact) {
		t.Errorf("expected ErrMissingArtifact, got %v", err)
	}
}
