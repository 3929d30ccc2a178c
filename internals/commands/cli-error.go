package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/helixlauncher/helix/internals/downloadmgr"
	"github.com/helixlauncher/helix/internals/instances"
	"github.com/helixlauncher/helix/internals/meta"
	"github.com/helixlauncher/helix/internals/pack"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	Text        string
	Code        string
	Suggestions []string
	Help        string
	Err         error
}

func (e *CliError) Error() string {
	return e.Text
}

func (e *CliError) Unwrap() error { return e.Err }

func (e *CliError) RichError() string {
	rendered := ErrorBox(e.Text, e.Help)
	if len(e.Suggestions) != 0 {
		suggestionText := "Suggestion:\n"
		if len(e.Suggestions) > 1 {
			suggestionText = "Suggestions:\n"
		}
		suggestionText = Emoji("📎 ") + suggestionText
		for _, s := range e.Suggestions {
			suggestionText += " ⦁ " + s + "\n"
		}
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, styleHelpBox.Render(suggestionText))
	}
	return rendered
}

// FromError turns known launcher errors into a CliError with some help text.
// Unknown errors are returned as they are.
func FromError(err error) error {
	if err == nil {
		return nil
	}

	var cliErr *CliError
	if errors.As(err, &cliErr) {
		return err
	}

	var (
		parseErr       *meta.ParseError
		invalidFile    *downloadmgr.InvalidFileError
		invalidName    *pack.InvalidFilenameError
		unsupported    *instances.UnsupportedFeatureError
		unknownVar     *instances.UnknownVariableError
		downloadStatus *downloadmgr.StatusError
	)

	switch {
	case errors.Is(err, meta.ErrMetaNotFound):
		return &CliError{
			Err:  err,
			Code: "meta_not_found",
			Text: err.Error(),
			Help: "The meta server does not know this component or version.",
			Suggestions: []string{
				"Check the component versions in instance.helix.json",
				"List available versions with `helix versions <component>`",
			},
		}
	case errors.As(err, &parseErr):
		return &CliError{
			Err:         err,
			Code:        "meta_parse",
			Text:        err.Error(),
			Help:        fmt.Sprintf("Could not read the component metadata from %s.", parseErr.Source),
			Suggestions: []string{"Delete the meta cache and try again while online"},
		}
	case errors.As(err, &invalidFile):
		return &CliError{
			Err:         err,
			Code:        "invalid_file",
			Text:        err.Error(),
			Help:        "A downloaded file did not match its expected size or hash.",
			Suggestions: []string{"Try again later, the server might be serving a broken file"},
		}
	case errors.As(err, &downloadStatus):
		return &CliError{
			Err:  err,
			Code: "download_failed",
			Text: err.Error(),
			Help: "A file could not be downloaded.",
		}
	case errors.As(err, &invalidName):
		return &CliError{
			Err:  err,
			Code: "invalid_filename",
			Text: err.Error(),
			Help: "An archive or asset index contains a file name that is not safe to write. Nothing outside the instance was touched.",
		}
	case errors.As(err, &unsupported):
		return &CliError{
			Err:  err,
			Code: "unsupported_feature",
			Text: err.Error(),
			Help: "The Minecraft version of this instance does not support this launch option.",
		}
	case errors.As(err, &unknownVar):
		return &CliError{
			Err:         err,
			Code:        "unknown_variable",
			Text:        err.Error(),
			Help:        "A launch argument uses a variable that helix does not know.",
			Suggestions: []string{"Check the launch.args of your instance.helix.json"},
		}
	case errors.Is(err, instances.ErrNotAnInstance):
		return &CliError{
			Err:         err,
			Code:        "not_an_instance",
			Text:        err.Error(),
			Suggestions: []string{"List your instances with `helix instances`"},
		}
	case errors.Is(err, instances.ErrNoMainClass), errors.Is(err, pack.ErrNoGameJar):
		return &CliError{
			Err:         err,
			Code:        "incomplete_components",
			Text:        err.Error(),
			Help:        "The components of this instance can not be launched on their own.",
			Suggestions: []string{"Add the net.minecraft component to the instance"},
		}
	}

	return err
}
