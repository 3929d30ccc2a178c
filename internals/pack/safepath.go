package pack

import (
	"fmt"
	"strings"
)

// reserved device names on windows. matched case-insensitive on the part before the first dot
var reservedNames = map[string]bool{
	"aux": true, "con": true, "nul": true, "prn": true,
	"com0": true, "com1": true, "com2": true, "com3": true, "com4": true,
	"com5": true, "com6": true, "com7": true, "com8": true, "com9": true,
	"lpt0": true, "lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true,
	"lpt5": true, "lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

// InvalidFilenameError is returned for archive entries or asset names that could
// write outside of their destination or are otherwise dangerous
type InvalidFilenameError struct {
	Name   string
	Reason string
}

func (e *InvalidFilenameError) Error() string {
	return fmt.Sprintf("%q: illegal file path (%s)", e.Name, e.Reason)
}

// CheckPath validates a slash separated relative path from untrusted input.
// This is not a check for a valid path, only one for a dangerous one.
func CheckPath(name string) error {
	if name == "" {
		return &InvalidFilenameError{name, "empty name"}
	}
	if strings.HasPrefix(name, "/") {
		return &InvalidFilenameError{name, "absolute path"}
	}

	for i, component := range strings.Split(name, "/") {
		switch component {
		case "":
			// "a//b" or a trailing slash
			continue
		case ".":
			// "a/./b" is the same as "a/b", a leading "./" is not allowed
			if i == 0 {
				return &InvalidFilenameError{name, "relative path component"}
			}
			continue
		case "..":
			return &InvalidFilenameError{name, "relative path component"}
		}

		for _, c := range component {
			if c <= 0x1f {
				return &InvalidFilenameError{name, "control character"}
			}
			if c == '$' || c == ':' || c == '\\' {
				return &InvalidFilenameError{name, fmt.Sprintf("illegal character %q", c)}
			}
		}

		stem, _, _ := strings.Cut(component, ".")
		if reservedNames[strings.ToLower(stem)] {
			return &InvalidFilenameError{name, "reserved name"}
		}
	}
	return nil
}
