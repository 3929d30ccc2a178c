package instances

import (
	"fmt"
	"regexp"
)

var variablePattern = regexp.MustCompile(`\$\{([a-zA-Z0-9_.]+)\}`)

// UnknownVariableError is returned if an argument references a property that
// is not known at launch time
type UnknownVariableError struct {
	Name     string
	Argument string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("argument %q references unknown variable ${%s}", e.Argument, e.Name)
}

// expand replaces all ${name} references in arg with their value from props
func expand(arg string, props map[string]string) (string, error) {
	var unknown string
	replaced := variablePattern.ReplaceAllStringFunc(arg, func(match string) string {
		name := variablePattern.FindStringSubmatch(match)[1]
		value, ok := props[name]
		if !ok {
			if unknown == "" {
				unknown = name
			}
			return match
		}
		return value
	})

	if unknown != "" {
		return "", &UnknownVariableError{Name: unknown, Argument: arg}
	}
	return replaced, nil
}

// expandAll expands every argument, failing on the first unknown variable
func expandAll(args []string, props map[string]string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		expanded, err := expand(arg, props)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}
