package minecraft

import "runtime"

// CurrentOS returns the running operating system in the naming used by
// component metadata (linux, windows, osx, …)
func CurrentOS() string {
	return OSName(runtime.GOOS)
}

// CurrentArch returns the running architecture in the naming used by
// component metadata (x86_64, x86, aarch64, arm32, …)
func CurrentArch() string {
	return ArchName(runtime.GOARCH)
}

// OSName maps a GOOS value to its metadata name
func OSName(goos string) string {
	if goos == "darwin" {
		return "osx"
	}
	return goos
}

// ArchName maps a GOARCH value to its metadata name
func ArchName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	case "arm64":
		return "aarch64"
	case "arm":
		return "arm32"
	}
	// note: we don't know how other platforms are named
	return goarch
}
